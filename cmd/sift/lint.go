package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sift/internal/config"
	"sift/internal/diag"
	"sift/internal/diagfmt"
	"sift/internal/driver"
	"sift/internal/lint"
	"sift/internal/lint/rules"
	"sift/internal/source"
	"sift/internal/ui"
)

var (
	lintFormat     string
	lintConfigPath string
	lintJobs       int
	lintNoCache    bool
	lintProgress   string
	lintSourceType string
	lintRulesOnly  []string
)

func init() {
	lintCmd.Flags().StringVar(&lintFormat, "format", "pretty", "output format (pretty|json)")
	lintCmd.Flags().StringVar(&lintConfigPath, "config", "", "path to sift.toml (default: walk up from cwd)")
	lintCmd.Flags().IntVar(&lintJobs, "jobs", 0, "parallel workers (0 = number of CPUs)")
	lintCmd.Flags().BoolVar(&lintNoCache, "no-cache", false, "disable the on-disk result cache")
	lintCmd.Flags().StringVar(&lintProgress, "progress", "auto", "interactive progress (auto|on|off)")
	lintCmd.Flags().StringVar(&lintSourceType, "source-type", "auto", "treat files as (auto|script|module)")
	lintCmd.Flags().StringSliceVar(&lintRulesOnly, "rule", nil, "run only the named rules (repeatable)")
}

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Lint source files",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		paths := args
		if len(paths) == 0 {
			paths = []string{"."}
		}

		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		if len(lintRulesOnly) > 0 {
			cfg.Rules.Include = lintRulesOnly
			cfg.Rules.Exclude = nil
		}

		registry, err := lint.NewRegistry(rules.All())
		if err != nil {
			return err
		}
		factories, err := cfg.ResolveRules(registry)
		if err != nil {
			return err
		}

		mode, err := readSourceType(lintSourceType)
		if err != nil {
			return err
		}

		opts := driver.Options{
			Jobs: lintJobs,
			Mode: mode,
		}
		if maxDiags, err := cmd.Flags().GetInt("max-diagnostics"); err == nil {
			opts.MaxDiagnostics = maxDiags
		}
		if !lintNoCache {
			// A cache that fails to open just means slower lints.
			if cache, err := driver.OpenDiskCache("sift"); err == nil {
				opts.Cache = cache
			}
		}

		fileSet, results, err := runLint(paths, factories, cfg, opts)
		if err != nil {
			return err
		}

		bag := diag.NewBag(0)
		for _, d := range driver.CollectDiagnostics(results) {
			bag.Add(d)
		}

		if err := renderDiagnostics(cmd, bag, fileSet); err != nil {
			return err
		}
		if bag.Len() > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func resolveConfig() (config.Config, error) {
	if lintConfigPath != "" {
		return config.Load(lintConfigPath)
	}
	cfg, _, err := config.Discover(".")
	return cfg, err
}

func readSourceType(value string) (driver.ProgramMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return driver.ModeAuto, nil
	case "script":
		return driver.ModeScript, nil
	case "module":
		return driver.ModeModule, nil
	default:
		return driver.ModeAuto, fmt.Errorf("invalid --source-type %q (expected auto|script|module)", value)
	}
}

// runLint starts the parallel lint, with the interactive progress view
// attached when stdout is a terminal and --progress allows it.
func runLint(paths []string, factories []lint.Factory, cfg config.Config, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	showProgress, err := readProgressMode(lintProgress)
	if err != nil {
		return nil, nil, err
	}
	if !showProgress {
		return driver.LintPaths(context.Background(), paths, factories, cfg, opts)
	}

	files, err := driver.ListFiles(paths, cfg)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan driver.Event, len(files)+1)
	opts.Events = events
	program := tea.NewProgram(ui.NewProgressModel("linting", files, events))

	var (
		fileSet *source.FileSet
		results []driver.FileResult
		lintErr error
	)
	go func() {
		fileSet, results, lintErr = driver.LintPaths(context.Background(), paths, factories, cfg, opts)
		// Closing the channel tells the model to quit.
		close(events)
	}()

	if _, err := program.Run(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, lintErr
}

func readProgressMode(value string) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return isTerminal(os.Stdout), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --progress value %q (expected auto|on|off)", value)
	}
}

func renderDiagnostics(cmd *cobra.Command, bag *diag.Bag, fileSet *source.FileSet) error {
	maxDiags, _ := cmd.Flags().GetInt("max-diagnostics")
	quiet, _ := cmd.Flags().GetBool("quiet")

	switch strings.ToLower(lintFormat) {
	case "json":
		return diagfmt.JSON(cmd.OutOrStdout(), bag, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			Max:              maxDiags,
		})
	case "pretty":
		colorFlag, _ := cmd.Flags().GetString("color")
		mode, err := readColorMode(colorFlag)
		if err != nil {
			return err
		}
		diagfmt.Pretty(cmd.OutOrStdout(), bag, fileSet, diagfmt.PrettyOpts{
			Color:      shouldColor(mode),
			PathMode:   diagfmt.PathModeRelative,
			ShowSource: !quiet,
			Max:        maxDiags,
		})
		if !quiet && bag.Len() > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "found %d problems\n", bag.Len())
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", lintFormat)
	}
}
