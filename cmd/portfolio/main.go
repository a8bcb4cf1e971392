package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"alexjohnson.dev/internal/config"
	"alexjohnson.dev/internal/content"
	"alexjohnson.dev/internal/export"
	"alexjohnson.dev/internal/handlers"
	"alexjohnson.dev/internal/telemetry"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

var (
	rootCmd = &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio site server and static exporter",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	exportCmd = &cobra.Command{
		Use:   "export <output-dir>",
		Short: "Render every page into a directory of static files",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	// Flags
	addr    string
	envFile string
	workers int
)

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "Address to listen on (host:port). Falls back to PORTFOLIO_ADDR")
	exportCmd.Flags().IntVar(&workers, "workers", 0, "Pages rendered concurrently. Falls back to PORTFOLIO_EXPORT_WORKERS")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file loaded before reading the environment")
	rootCmd.AddCommand(serveCmd, exportCmd, versionCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	config.SetupLog(cfg.Log)
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.ServerAddr = addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.ServiceName, cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			slog.Error("shutdown tracing", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: telemetry.Handler(handlers.SetupRoutes(cfg, content.Default()), "http.server"),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.ServerAddr, "version", version)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("shutting down server")
	}

	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	n := cfg.ExportWorkers
	if workers > 0 {
		n = workers
	}

	registry := content.Default()
	exporter := export.New(handlers.SetupRoutes(cfg, registry), n)
	if err := exporter.Run(cmd.Context(), args[0], export.Pages(registry)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported site to %s\n", args[0])
	return nil
}
