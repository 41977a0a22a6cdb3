package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/internal/profilestore"
	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// storeMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT open the store or create tables,
// allowing migrations to run on a fresh database.
func storeMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend %q: must be sqlite, mysql, postgresql or none", backendStr)
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetStoreDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreConnect = connStr

	return nil
}

// storeMigrateSetupWrapper wraps storeMigrateSetup to provide PreRunE for the migrate command.
func storeMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeMigrateSetup()
}

// storeCmd focused on profile store management.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the developer profile store",
	Long: `Manage persisted developer profiles and assignment runs.

When a store backend is configured, every analyze run saves developer
profiles and every assign run records its assignments, so profiles can
be reused across invocations without refetching commit history.

Supported backends: SQLite (default path under the home directory),
MySQL, PostgreSQL, or None (disabled).

Subcommands:
  list    - List stored developer profiles
  migrate - Run database schema migrations

Examples:
  # List persisted profiles
  epicassign store list --store-backend sqlite

  # Bring the schema up to date
  epicassign store migrate --store-backend sqlite`,
}

// storeListCmd lists the stored developer profiles.
var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored developer profiles",
	Long: `Print the username of every developer profile in the store.

Use this to check which developers a flag-less 'assign' run would draw
profiles for.

Examples:
  # List persisted profiles
  epicassign store list --store-backend sqlite`,
	PreRunE:  sharedSetupWrapper,
	PostRunE: sharedTeardownWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		usernames, err := store.ListProfiles()
		if err != nil {
			contract.LogFatal("Failed to list profiles", err)
		}
		if len(usernames) == 0 {
			fmt.Println("No profiles stored.")
			return
		}
		for _, username := range usernames {
			fmt.Println(username)
		}
	},
}

// storeMigrateCmd runs database migrations for the profile store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the profile store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  epicassign store migrate --store-backend sqlite

  # Rollback to the initial state
  epicassign store migrate --store-backend sqlite --target-version 0`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := profilestore.Migrate(cfg.StoreBackend, cfg.StoreConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
