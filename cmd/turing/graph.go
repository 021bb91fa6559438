package main

import (
	"fmt"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file|-]",
	Short: "Export the transition table as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart (graph LR) with one node per state and one edge
per rule. With --overlay the machine is run on the tape first and the
visited and final states are highlighted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := resolveProgram(cmd.Context(), cmd, args)
		if err != nil {
			return err
		}
		overlay, _ := cmd.Flags().GetBool("overlay")

		engine := cli.NewEngine(cfg, logger)
		m := engine.Compile(cmd.Context(), p.Description)

		var o *graph.GraphOverlay
		if overlay {
			res, err := engine.Run(cmd.Context(), m, domain.SplitTape(p.Tape), turing.Traced(true))
			if res == nil {
				return err
			}
			o = graph.OverlayFromResult(res)
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(m, o))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addSourceFlags(graphCmd)
	graphCmd.Flags().Bool("overlay", false, "Highlight the states visited when running on --tape")
}
