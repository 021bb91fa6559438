package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/pkg/registry"
	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List the example machines",
	Long:  `Lists the built-in samples, or the machines of --library. Run one with 'turing run --example <id>'.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("library")
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		defer w.Flush()

		if dir == "" {
			for _, s := range registry.Default().Samples() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Program.ID, s.Title, s.Program.Tape)
			}
			return nil
		}

		lib, err := cli.OpenLibrary(dir)
		if err != nil {
			return err
		}
		ids, err := lib.ListPrograms(cmd.Context())
		if err != nil {
			return err
		}
		for _, id := range ids {
			p, err := lib.GetProgram(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\n", id, p.Tape)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(examplesCmd)
	examplesCmd.Flags().String("library", "", "Directory of machine documents")
}
