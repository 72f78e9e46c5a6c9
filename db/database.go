package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Options selects the database the SQL call source reads from
type Options struct {
	Path        string // local SQLite file
	TursoURL    string // libsql:// or https:// Turso database, takes precedence over Path
	TursoToken  string
	Environment string
}

// Initialize opens the database connection. A Turso URL is reached through the libSQL client,
// otherwise the local SQLite file is opened with WAL mode for concurrent readers.
func Initialize(opts Options) error {
	logLevel := logger.Info
	if opts.Environment == "production" {
		logLevel = logger.Warn
	}
	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var err error
	if opts.TursoURL != "" {
		DB, err = openTurso(opts.TursoURL, opts.TursoToken, gormConfig)
		if err != nil {
			return err
		}
		zap.L().Info("Database connection established (Turso/libSQL)")
		return nil
	}

	dsn := opts.Path + "?_journal_mode=WAL"
	DB, err = gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	zap.L().Info("Database connection established (WAL mode enabled)", zap.String("path", opts.Path))
	return nil
}

func openTurso(url, token string, gormConfig *gorm.Config) (*gorm.DB, error) {
	dsn := url
	if token != "" {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "authToken=" + token
	}

	sqlDB, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open turso connection: %w", err)
	}

	gdb, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "libsql", Conn: sqlDB}), gormConfig)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to turso database: %w", err)
	}
	return gdb, nil
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	err := DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	zap.L().Info("Database migrations completed")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
