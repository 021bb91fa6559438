package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg    = config.Default()
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "turing",
	Short: "Turing is a single-tape Turing machine interpreter",
	Long: `Turing runs machines described as transition tables, one rule per line:

  from 1 read a write b goto 2 move r

The machine stops when no rule matches its state and the symbol under the head.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		format, _ := cmd.Flags().GetString("log-format")

		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = cli.CreateLogger(debug, format)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML or JSON config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every step to stderr")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
}
