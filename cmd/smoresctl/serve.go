package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func purgeTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge-tokens",
		Short: "Delete expired login sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a, err := loadApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			removed, err := a.PurgeTokens(ctx)
			if err != nil {
				return fmt.Errorf("purge tokens: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired sessions\n", removed)
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	var (
		migrate bool
		seed    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a, err := loadApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if migrate {
				if err := a.Migrate(ctx); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}
			if seed {
				if err := a.Seed(ctx); err != nil {
					return fmt.Errorf("seed: %w", err)
				}
			}

			return a.Serve(ctx)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", true, "run migrations before serving")
	cmd.Flags().BoolVar(&seed, "seed", true, "seed settings and the bootstrap employee before serving")

	return cmd
}
