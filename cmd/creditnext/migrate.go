package main

import (
	"database/sql"
	"fmt"

	"creditnext/internal/database"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate [up|down|status]",
		Short: "Run the postgres schema migrations",
		Long: `Applies the SQL migrations under db/migrations to the configured postgres
database. sqlite databases are migrated automatically by "serve".`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"up", "down", "status"},
		RunE:      runMigrate,
	}

	cmd.Flags().Int("steps", 1, "number of migrations to roll back with down")
	cmd.Flags().String("path", "", "migrations directory (default: DB_MIGRATIONS_PATH)")
	cmd.Flags().Bool("wait", false, "wait for the database to accept connections first")

	_ = viper.BindPFlag("database.migrations_path", cmd.Flags().Lookup("path"))

	return cmd
}

func runMigrate(cmd *cobra.Command, args []string) error {
	action := "up"
	if len(args) == 1 {
		action = args[0]
	}
	steps, _ := cmd.Flags().GetInt("steps")
	wait, _ := cmd.Flags().GetBool("wait")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Database.Driver != "postgres" {
		return fmt.Errorf("migrate needs DB_DRIVER=postgres, got %q", cfg.Database.Driver)
	}

	sqlDB, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer sqlDB.Close()

	runner := database.NewMigrationRunner(sqlDB, cfg.Database.MigrationsPath, log())
	if wait {
		if err := runner.WaitForDatabase(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch action {
	case "up":
		if err := runner.Up(); err != nil {
			return err
		}
	case "down":
		if err := runner.Down(steps); err != nil {
			return err
		}
	case "status":
	default:
		return fmt.Errorf("unknown migrate action %q", action)
	}

	version, dirty, err := runner.Status()
	if err != nil {
		return err
	}
	log().Info("Migration status", zap.String("action", action), zap.Uint("version", version), zap.Bool("dirty", dirty))
	fmt.Fprintf(out, "schema version %d (dirty: %t)\n", version, dirty)
	return nil
}
