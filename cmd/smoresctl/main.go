package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/smores-api/internal/app"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/config"
)

var Version = "dev"

var envName string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "smoresctl",
		Short:         "Administration commands for the SMORES camp management API",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&envName, "env", "e", "", "configuration environment (defaults to SMORES_ENV)")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(createEmployeeCmd())
	rootCmd.AddCommand(purgeTokensCmd())
	rootCmd.AddCommand(serveCmd())

	return rootCmd
}

// loadApp reads the configuration and connects to the database
func loadApp(ctx context.Context) (*app.App, error) {
	if envName != "" {
		if err := os.Setenv(config.EnvPrefix+"_ENV", envName); err != nil {
			return nil, err
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	appLogger, err := app.NewLogger(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return app.New(ctx, cfg, appLogger)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
