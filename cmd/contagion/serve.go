package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/contagion"
	httpAdapter "github.com/aretw0/contagion/internal/adapters/http"
	"github.com/aretw0/contagion/internal/cli"
	"github.com/aretw0/contagion/internal/logging"
	"github.com/aretw0/contagion/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a simulation over HTTP",
	Long: `Builds the scenario's simulation and exposes it as a JSON API: external
visualizers drive the step loop via POST /step and render GET /frame.png
or subscribe to the SSE stream at /events. Prometheus metrics are served
at /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario(cmd, args)
		if err != nil {
			return err
		}
		port, _ := cmd.Flags().GetString("port")
		level, _ := cmd.Flags().GetString("log-level")
		logger := logging.New(logging.ParseLevel(level))

		registry := prometheus.NewRegistry()
		collector := observability.NewCollector(registry)

		sim, err := cli.BuildSimulation(sc,
			contagion.WithLogger(logger),
			contagion.WithHooks(collector.Hooks()))
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: httpAdapter.NewHandler(sim, registry, logger),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("contagion server listening", "addr", srv.Addr, "scenario", sc.Name)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				return srv.Close()
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
