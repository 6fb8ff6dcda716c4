package main

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/phrazzld/jobboard-api/internal/config"
	"github.com/phrazzld/jobboard-api/internal/domain"
)

func newAdminCmd(flags *rootFlags) *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative operations against the configured store",
	}

	var email, password string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Register an account with the admin role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := flags.load()
			if err != nil {
				return err
			}
			if cfg.Store.Backend != config.BackendPostgres {
				return fmt.Errorf("admin create requires the %s backend, configured %q", config.BackendPostgres, cfg.Store.Backend)
			}

			app, err := newApplication(cmd.Context(), cfg, log, prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer app.cleanup()

			user, err := app.accounts.Register(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if _, err := app.accounts.SetRole(cmd.Context(), user.ID, domain.RoleAdmin); err != nil {
				return err
			}
			log.Info("admin account created", slog.Int64("user_id", int64(user.ID)))
			fmt.Fprintf(cmd.OutOrStdout(), "created admin %d\n", user.ID)
			return nil
		},
	}
	createCmd.Flags().StringVar(&email, "email", "", "email of the new admin")
	createCmd.Flags().StringVar(&password, "password", "", "password of the new admin")
	_ = createCmd.MarkFlagRequired("email")
	_ = createCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(createCmd)
	return adminCmd
}
