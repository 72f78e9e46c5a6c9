package main

import (
	"fmt"
	"os"

	"recall/config"
	"recall/db"
	"recall/logging"
	"recall/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose bool

	logger *zap.Logger
	cfg    *config.Config
	// source is set up by the root pre-run unless a test has already provided one
	source services.CallSource
)

var rootCmd = &cobra.Command{
	Use:   "recallctl",
	Short: "Inspect the Recall call history from the terminal",
	Long: `recallctl reads the same call history table as the dashboard and runs it
through the same mapping, filtering and calendar link logic.

The source is chosen with CALL_SOURCE (rest or sql), exactly like the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if source != nil {
			return nil
		}

		cfg = config.Load()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		var err error
		logger, err = logging.New(cfg.Environment, level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		services.DisplayLocation = cfg.Location()
		services.CalendarBaseURL = cfg.CalendarBaseURL

		if cfg.CallSource == config.SourceSQL {
			if err := db.Initialize(db.Options{
				Path:        cfg.DBPath,
				TursoURL:    cfg.TursoDatabaseURL,
				TursoToken:  cfg.TursoAuthToken,
				Environment: cfg.Environment,
			}); err != nil {
				return err
			}
		}

		source, err = services.NewCallSource(cfg, db.DB)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		if db.DB != nil {
			_ = db.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	callsListCmd.Flags().StringVarP(&statusFlag, "status", "s", "all", "Filter by status: all, pending, completed")
	callsExportCmd.Flags().StringVarP(&statusFlag, "status", "s", "all", "Filter by status: all, pending, completed")
	callsExportCmd.Flags().StringVarP(&outputPath, "output", "o", "callbacks.xlsx", "Workbook path")
	seedCmd.Flags().BoolVar(&createTable, "create-table", true, "Create the call history table if it does not exist")

	callsCmd.AddCommand(callsListCmd, callsLinkCmd, callsExportCmd)
	rootCmd.AddCommand(callsCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
