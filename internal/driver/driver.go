// Package driver orchestrates linting over files and directories:
// file discovery, parallel per-file runs, the disk cache, and progress
// events for the UI.
package driver

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"sift/internal/config"
	"sift/internal/diag"
	"sift/internal/lint"
	"sift/internal/source"
)

// ProgramMode forces how files are classified before rules run.
type ProgramMode uint8

const (
	// ModeAuto derives module/script from top-level import/export.
	ModeAuto ProgramMode = iota
	ModeScript
	ModeModule
)

// Options configures one lint run.
type Options struct {
	// Jobs caps parallel workers; <=0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics caps parse errors per file; 0 means no limit.
	MaxDiagnostics int
	// Mode overrides module/script detection.
	Mode ProgramMode
	// Cache, when set, skips files whose content and rule set both
	// match a previous run.
	Cache *DiskCache
	// Events, when set, receives one event per completed file. The
	// channel is never closed by the driver.
	Events chan<- Event
}

// FileResult is the outcome of linting one file.
type FileResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	// Cached is set when the diagnostics were replayed from the disk
	// cache instead of a fresh parse and traversal.
	Cached bool
}

// Event reports per-file progress to an observer.
type Event struct {
	Path   string
	Index  int // 0-based position in the run
	Total  int
	Cached bool
}

// ListFiles expands paths into a sorted list of lintable files. A
// directory is walked recursively; explicit file arguments are kept
// regardless of extension so `sift lint odd.name` still works.
func ListFiles(paths []string, cfg config.Config) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && cfg.WantsFile(p) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

// programKind resolves the program variant for a parsed file.
func programKind(mode ProgramMode, moduleSyntax bool) lint.ProgramKind {
	switch mode {
	case ModeScript:
		return lint.ProgramScript
	case ModeModule:
		return lint.ProgramModule
	default:
		if moduleSyntax {
			return lint.ProgramModule
		}
		return lint.ProgramScript
	}
}

// CollectDiagnostics merges every file's bag into one sorted slice.
func CollectDiagnostics(results []FileResult) []diag.Diagnostic {
	merged := diag.NewBag(0)
	for _, res := range results {
		if res.Bag != nil {
			merged.Merge(res.Bag)
		}
	}
	merged.Sort()
	return merged.Items()
}
