package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sift/internal/lint"
	"sift/internal/lint/rules"
)

var rulesDocs bool

func init() {
	rulesCmd.Flags().BoolVar(&rulesDocs, "docs", false, "print full documentation for each rule")
}

var rulesCmd = &cobra.Command{
	Use:   "rules [code]",
	Short: "List available lint rules",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		registry, err := lint.NewRegistry(rules.All())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			factory, ok := registry.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown rule code %q", args[0])
			}
			rule := factory()
			fmt.Fprintf(out, "# %s\n\n%s", rule.Code(), rule.Docs().Render())
			return nil
		}

		for _, code := range registry.Codes() {
			if rulesDocs {
				factory, _ := registry.Get(code)
				fmt.Fprintf(out, "# %s\n\n%s\n", code, factory().Docs().Render())
			} else {
				fmt.Fprintln(out, code)
			}
		}
		return nil
	},
}
