package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/azure-identities/identities-api/internal/hostenv"
	"github.com/azure-identities/identities-api/internal/server"
	"github.com/azure-identities/identities-api/internal/version"
)

var logLevel = new(slog.LevelVar)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "identities-api",
		Short:   "Azure Identities API server",
		Version: version.Detailed(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logLevel.Set(cfg.LogLevel)

			cmd.SilenceUsage = true
			slog.Info("identities-api", "build", version.Get())

			s, err := server.New(cfg.Server)
			if err != nil {
				return err
			}

			defer slog.Info("Bye!")
			return s.Start(cmd.Context())
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().StringP("environment", "e", hostenv.Production, "Hosting environment (Development, Staging, Production)")
	cmd.Flags().StringP("bind", "b", server.DefaultAddr, "Address to bind the http server")
	cmd.Flags().String("https-bind", server.DefaultHTTPSAddr, "Address to bind the https server")
	cmd.Flags().String("cert", "", "Path to the tls certificate file")
	cmd.Flags().String("key", "", "Path to the tls key file")
	cmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringP("config", "c", "", "Config file (default ./config.{yaml,json})")
	return cmd
}

func main() {
	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      logLevel,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		NoColor:    !isatty.IsTerminal(os.Stdout.Fd()),
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("identities-api", "error", err)
		stop()
		os.Exit(1)
	}
}
