package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a, err := loadApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Migrate(ctx); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the settings row and the bootstrap employee",
		Long: `Write the rows a new installation needs.

The Stripe key setting is created from payment.stripeApiKey when missing.
When security.bootstrapEmail and security.bootstrapPassword are set, an
employee with those credentials is created unless one already exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a, err := loadApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Seed(ctx); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "seed complete")
			return nil
		},
	}
}
