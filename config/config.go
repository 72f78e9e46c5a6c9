package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // DISPLAY_TIMEZONE must resolve on slim images

	"github.com/joho/godotenv"
)

// Call source drivers
const (
	SourceREST = "rest"
	SourceSQL  = "sql"
)

// Config holds the settings read from the environment at startup
type Config struct {
	ServerPort     string
	Environment    string
	AppURL         string
	AllowedOrigins []string
	LogLevel       string
	// Record source
	CallSource      string // "rest" (Supabase/PostgREST) or "sql" (SQLite/Turso)
	CallTable       string
	SupabaseURL     string
	SupabaseAnonKey string
	SourceTimeout   time.Duration
	// SQL source
	DBPath           string
	TursoDatabaseURL string
	TursoAuthToken   string
	SeedDemoData     bool
	// Presentation
	CalendarBaseURL string
	DisplayTimezone string
}

// Load reads .env when present, then the environment, filling in defaults
func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		AppURL:           getEnv("APP_URL", "http://localhost:8080"),
		AllowedOrigins:   strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CallSource:       strings.ToLower(getEnv("CALL_SOURCE", SourceREST)),
		CallTable:        getEnv("CALL_TABLE", "call_history"),
		SupabaseURL:      strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseAnonKey:  getEnv("SUPABASE_ANON_KEY", ""),
		SourceTimeout:    getEnvDuration("SOURCE_TIMEOUT", 10*time.Second),
		DBPath:           getEnv("DB_PATH", "db/app.db"),
		TursoDatabaseURL: getEnv("TURSO_DATABASE_URL", ""),
		TursoAuthToken:   getEnv("TURSO_AUTH_TOKEN", ""),
		SeedDemoData:     getEnvBool("SEED_DEMO_DATA", false),
		CalendarBaseURL:  getEnv("CALENDAR_BASE_URL", "https://www.google.com/calendar/render"),
		DisplayTimezone:  getEnv("DISPLAY_TIMEZONE", "UTC"),
	}
}

// Validate checks that the selected call source has what it needs.
// Missing Supabase settings are fatal only in production; in development the dashboard
// simply renders an empty list when the source cannot be reached.
func (c *Config) Validate() error {
	switch c.CallSource {
	case SourceREST:
		if c.SupabaseURL == "" && c.Environment == "production" {
			return fmt.Errorf("SUPABASE_URL is required when CALL_SOURCE=rest")
		}
	case SourceSQL:
		if c.DBPath == "" && c.TursoDatabaseURL == "" {
			return fmt.Errorf("DB_PATH or TURSO_DATABASE_URL is required when CALL_SOURCE=sql")
		}
	default:
		return fmt.Errorf("unknown CALL_SOURCE %q (expected %q or %q)", c.CallSource, SourceREST, SourceSQL)
	}

	if _, err := time.LoadLocation(c.DisplayTimezone); err != nil {
		return fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", c.DisplayTimezone, err)
	}

	return nil
}

// Location returns the display time zone, falling back to UTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("[WARNING] Invalid duration for %s (%q), using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
