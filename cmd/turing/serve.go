package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/turing/internal/cli"
	httpAdapter "github.com/aretw0/turing/pkg/adapters/http"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Exposes the interpreter as a JSON API over HTTP. Programs saved through
/programs go to the store selected in the config file. Prometheus metrics are
served on /metrics and the OpenAPI document on /openapi.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := cfg.HTTP.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}
		libraryDir, _ := cmd.Flags().GetString("library")

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics := observability.NewMetrics(reg)

		engine := cli.NewEngine(cfg, logger, metrics.Hooks())

		store, closeStore, err := cli.NewStore(sigCtx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		library, err := cli.OpenLibrary(libraryDir)
		if err != nil {
			return err
		}

		handler, err := httpAdapter.NewHandler(engine,
			httpAdapter.WithStore(store),
			httpAdapter.WithLibrary(library),
			httpAdapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
			httpAdapter.WithLogger(logger),
		)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("Starting Turing Server", "address", srv.Addr, "store", cfg.Store)
			fmt.Fprintf(cmd.OutOrStdout(), "Starting Turing Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-sigCtx.Done():
			fmt.Fprintf(cmd.OutOrStdout(), "\nStart shutdown... Signal: %v\n", sigCtx.Signal())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				srv.Close()
				return fmt.Errorf("graceful shutdown did not complete in %v: %w", 5*time.Second, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Turing Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on (overrides http.port)")
	serveCmd.Flags().String("library", "", "Directory of machine documents served under /library")
}
