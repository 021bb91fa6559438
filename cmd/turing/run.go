package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file|-]",
	Short: "Run a machine until it halts",
	Long: `Runs a machine on a tape and prints the final state and tape.

With --trace the state and tape are printed before every step. The head
position is shown in brackets. A run stopped by max_steps or Ctrl+C prints
its partial result and exits with an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		p, opts, err := resolveProgram(sigCtx, cmd, args)
		if err != nil {
			return err
		}
		opts.Trace, _ = cmd.Flags().GetBool("trace")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Elapsed, _ = cmd.Flags().GetBool("elapsed")
		opts.Pretty, _ = cmd.Flags().GetBool("pretty")
		watch, _ := cmd.Flags().GetBool("watch")

		engine := cli.NewEngine(cfg, logger)

		if watch {
			if opts.File == "" || opts.File == "-" {
				return errWatchNeedsFile
			}
			return cli.RunWatch(sigCtx, engine, opts, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
		}

		_, err = cli.Run(sigCtx, engine, p, opts, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addSourceFlags(runCmd)

	runCmd.Flags().Bool("trace", false, "Print the state and tape before every step")
	runCmd.Flags().Bool("json", false, "Write NDJSON events instead of text")
	runCmd.Flags().Bool("elapsed", false, "Print the wall-clock time of the run")
	runCmd.Flags().Bool("pretty", false, "Render the result with colors when writing to a terminal")
	runCmd.Flags().BoolP("watch", "w", false, "Rerun the description file every time it changes")
}
