package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Manage saved programs",
	Long:  `Saves, shows, lists and deletes programs in the store selected by the config file (memory, file or redis).`,
}

var programSaveCmd = &cobra.Command{
	Use:   "save <id> [file|-]",
	Short: "Save a program under an ID",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := resolveProgram(cmd.Context(), cmd, args[1:])
		if err != nil {
			return err
		}

		store, closeStore, err := cli.NewStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		p.ID = args[0]
		if err := store.Save(cmd.Context(), args[0], &p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved program '%s'.\n", args[0])
		return nil
	},
}

var programGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print a saved program as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := cli.NewStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		p, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	},
}

var programListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved program IDs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := cli.NewStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		ids, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

var programDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := cli.NewStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Deleted program '%s'.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(programCmd)
	programCmd.AddCommand(programSaveCmd, programGetCmd, programListCmd, programDeleteCmd)
	addSourceFlags(programSaveCmd)
}
