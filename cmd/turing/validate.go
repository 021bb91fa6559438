package main

import (
	"fmt"

	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file|-]",
	Short: "Check a transition table",
	Long: `Compiles a transition table and reports lines that are neither rules nor
parameter lines, rules that can never fire, and moves that do not move the head.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := resolveProgram(cmd.Context(), cmd, args)
		if err != nil {
			return err
		}

		engine := cli.NewEngine(cfg, logger)
		m, issues := engine.Validate(cmd.Context(), p.Description)

		out := cmd.OutOrStdout()
		for _, d := range m.Diagnostics {
			fmt.Fprintf(out, "line %d: %s\n", d.Line, d)
		}
		for _, issue := range issues {
			if issue.Transition >= 0 {
				fmt.Fprintf(out, "rule %d: %s\n", issue.Transition+1, issue.Message)
			} else {
				fmt.Fprintln(out, issue.Message)
			}
		}

		fmt.Fprintf(out, "%d rules, %d states, start %s, empty symbol %s\n",
			len(m.Transitions), len(m.States()), m.Params.Start, m.Params.EmptySymbol)

		if len(m.Diagnostics) > 0 {
			return fmt.Errorf("%d invalid lines", len(m.Diagnostics))
		}
		fmt.Fprintln(out, "Machine is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addSourceFlags(validateCmd)
}
