// Package migrate implements the "migrate" CLI command used to bring
// the database schema up to date without starting the server.
package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reelhub/reelhub/internal/infrastructure/config"
	"github.com/reelhub/reelhub/internal/infrastructure/database"
	"github.com/reelhub/reelhub/internal/infrastructure/migration"
	"github.com/reelhub/reelhub/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database schema migration",
		Long:  `Apply the schema migration so the database matches the current models.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.Run(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migration completed", "environment", env)
	return nil
}
