package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"custodian/internal/infrastructure/config"
	"custodian/internal/infrastructure/database"
	"custodian/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Create or update the database schema for all Custodian tables.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the schema",
		Long:  `Bring the database schema up to date for every persisted table.`,
		RunE:  runUp,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := database.AutoMigrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.NewLogger().Infow("database schema migrated", "database", cfg.Database.Database)
	return nil
}
