package main

import (
	"fmt"

	"recall/config"
	"recall/db"
	"recall/models"
	"recall/services"

	"github.com/spf13/cobra"
)

var createTable bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo callbacks into an empty SQL call history table",
	Long: `Insert a handful of demo callbacks so the dashboard has something to show.

Only works with CALL_SOURCE=sql. A table that already has rows is left alone.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	if cfg == nil || cfg.CallSource != config.SourceSQL || db.DB == nil {
		return fmt.Errorf("seed requires CALL_SOURCE=sql")
	}

	if createTable {
		if err := db.DB.Table(cfg.CallTable).AutoMigrate(&models.CallHistoryRow{}); err != nil {
			return fmt.Errorf("failed to create %s: %w", cfg.CallTable, err)
		}
	}

	n, err := services.SeedDemoCalls(db.DB, cfg.CallTable)
	if err != nil {
		return err
	}

	if n == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s already has rows, nothing seeded\n", cfg.CallTable)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d demo calls into %s\n", n, cfg.CallTable)
	return nil
}
