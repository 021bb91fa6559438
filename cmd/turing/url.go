package main

import (
	"fmt"

	"github.com/aretw0/turing/pkg/adapters/query"
	"github.com/spf13/cobra"
)

var urlCmd = &cobra.Command{
	Use:   "url [file|-]",
	Short: "Print a shareable link for a program",
	Long: `Encodes the tape and description as the tape and tm_description query
parameters of --base. 'turing run --url' reads such a link back.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := resolveProgram(cmd.Context(), cmd, args)
		if err != nil {
			return err
		}
		base, _ := cmd.Flags().GetString("base")

		link, err := query.Link(base, p)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), link)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(urlCmd)
	addSourceFlags(urlCmd)
	urlCmd.Flags().String("base", "http://localhost:8080/run", "Link to append the query parameters to")
}
