package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phrazzld/jobboard-api/internal/config"
	"github.com/phrazzld/jobboard-api/internal/platform/postgres"
)

func newMigrateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status|reset]",
		Short:     "Apply or inspect database schema migrations",
		ValidArgs: []string{postgres.MigrateUp, postgres.MigrateDown, postgres.MigrateStatus, postgres.MigrateReset},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := flags.load()
			if err != nil {
				return err
			}
			if cfg.Store.Backend != config.BackendPostgres {
				return fmt.Errorf("migrate requires the %s backend, configured %q", config.BackendPostgres, cfg.Store.Backend)
			}

			db, err := postgres.Open(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer closeDB(db, log)

			return postgres.Migrate(cmd.Context(), db, args[0], log)
		},
	}
}
