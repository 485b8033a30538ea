package main

import (
	"fmt"

	"github.com/Sebastian1234123/sistema-farmacia/internal/store"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := store.Open(cmd.Context(), cfg.DB)
		if err != nil {
			return fmt.Errorf("couldn't connect to mysql: %w", err)
		}
		defer db.Close()
		return store.MigrateWithContext(cmd.Context(), db.DB)
	},
}
