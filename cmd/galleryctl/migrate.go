package main

import (
	"fmt"

	"github.com/andreyxaxa/Photo-Gallery/config"
	"github.com/andreyxaxa/Photo-Gallery/migrations"
	"github.com/andreyxaxa/Photo-Gallery/pkg/postgres"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewDatabase()
		if err != nil {
			return err
		}

		err = postgres.Migrate(cfg.PG.URL, migrations.FS, migrations.Dir)
		if err != nil {
			return fmt.Errorf("galleryctl - migrate: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")

		return nil
	},
}
