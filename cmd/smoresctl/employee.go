package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/config"
)

// passwordEnv lets scripts pass the password without it showing in ps
var passwordEnv = config.EnvPrefix + "_EMPLOYEE_PASSWORD"

func createEmployeeCmd() *cobra.Command {
	var in migration.EmployeeInput

	cmd := &cobra.Command{
		Use:   "create-employee",
		Short: "Create an employee who can log in to the API",
		Example: `  smoresctl create-employee --email director@camp.org --first-name Pat --last-name Lee --password s3cret
  SMORES_EMPLOYEE_PASSWORD=s3cret smoresctl create-employee --email director@camp.org --first-name Pat --last-name Lee`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Password == "" {
				in.Password = os.Getenv(passwordEnv)
			}
			if err := validateEmployeeInput(in); err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			a, err := loadApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			id, err := a.Seeder().CreateEmployee(ctx, in)
			if errors.Is(err, migration.ErrEmployeeExists) {
				return fmt.Errorf("an employee with email %s already exists", in.Email)
			}
			if err != nil {
				return fmt.Errorf("create employee: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created employee %d (%s)\n", id, strings.ToLower(in.Email))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Email, "email", "", "login email (required)")
	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "first name (required)")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "last name (required)")
	cmd.Flags().StringVar(&in.Password, "password", "", "password, or set "+passwordEnv)
	cmd.Flags().StringVar(&in.JobTitle, "job-title", "", "job title")

	return cmd
}

func validateEmployeeInput(in migration.EmployeeInput) error {
	var missing []string
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "--email")
	}
	if strings.TrimSpace(in.FirstName) == "" {
		missing = append(missing, "--first-name")
	}
	if strings.TrimSpace(in.LastName) == "" {
		missing = append(missing, "--last-name")
	}
	if in.Password == "" {
		missing = append(missing, "--password")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required flags: %s", strings.Join(missing, ", "))
	}
	return nil
}
