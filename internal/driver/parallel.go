package driver

import (
	"context"
	"fmt"
	"runtime"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"sift/internal/ast"
	"sift/internal/config"
	"sift/internal/diag"
	"sift/internal/lexer"
	"sift/internal/lint"
	"sift/internal/parser"
	"sift/internal/source"
)

// IOLoadFileError is the diagnostic code for files that failed to read.
const IOLoadFileError = "io/load-file"

// LintPaths lints every file reachable from paths with the given rule
// factories. Files are processed in parallel; each worker writes only
// its own index slot, so results need no locking and keep the sorted
// file order regardless of completion order.
func LintPaths(ctx context.Context, paths []string, factories []lint.Factory, cfg config.Config, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := ListFiles(paths, cfg)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Preload sequentially: FileSet.Add is not safe for concurrent use
	// and registration order fixes the FileID assignment.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	fingerprint := RuleSetFingerprint(factories)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(0)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.NewError(IOLoadFileError, source.Span{}, "failed to load file: "+loadErr.Error()))
				results[i] = FileResult{Path: path, Bag: bag}
				emit(opts.Events, Event{Path: path, Index: i, Total: len(files)})
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			if cached, ok := cacheLookup(opts.Cache, file, fingerprint); ok {
				for _, entry := range cached {
					bag.Add(entry.toDiagnostic(fileID))
				}
				results[i] = FileResult{Path: path, FileID: fileID, Bag: bag, Cached: true}
				emit(opts.Events, Event{Path: path, Index: i, Total: len(files), Cached: true})
				return nil
			}

			lintFile(file, factories, opts, bag)
			results[i] = FileResult{Path: path, FileID: fileID, Bag: bag}

			cacheStore(opts.Cache, file, fingerprint, bag.Items())
			emit(opts.Events, Event{Path: path, Index: i, Total: len(files)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// lintFile parses one file and, when the tree is clean, runs every
// rule over it. Lex and parse errors land in the bag and suppress the
// rules: they must only ever see well-formed trees.
func lintFile(file *source.File, factories []lint.Factory, opts Options, bag *diag.Bag) {
	lx := lexer.New(file, lexer.Options{Reporter: lexer.BagAdapter{Bag: bag}})
	builder := ast.NewBuilder(ast.Hints{})

	maxErrors, err := safecast.Conv[uint](max(opts.MaxDiagnostics, 0))
	if err != nil {
		panic(fmt.Errorf("maxDiagnostics overflow: %w", err))
	}

	res := parser.ParseFile(lx, builder, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})
	if bag.HasErrors() {
		return
	}

	program := lint.NewProgram(programKind(opts.Mode, res.ModuleSyntax), builder, res.File)
	for _, d := range lint.Run(factories, program) {
		bag.Add(d)
	}
}

func emit(events chan<- Event, ev Event) {
	if events != nil {
		events <- ev
	}
}
