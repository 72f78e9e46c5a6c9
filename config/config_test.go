package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CALL_SOURCE", "")
	t.Setenv("CALL_TABLE", "")
	t.Setenv("SOURCE_TIMEOUT", "")
	t.Setenv("CALENDAR_BASE_URL", "")

	cfg := Load()
	assert.Equal(t, SourceREST, cfg.CallSource)
	assert.Equal(t, "call_history", cfg.CallTable)
	assert.Equal(t, 10*time.Second, cfg.SourceTimeout)
	assert.Equal(t, "https://www.google.com/calendar/render", cfg.CalendarBaseURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CALL_SOURCE", "SQL")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co/")
	t.Setenv("SOURCE_TIMEOUT", "3s")
	t.Setenv("SEED_DEMO_DATA", "yes")

	cfg := Load()
	assert.Equal(t, SourceSQL, cfg.CallSource)
	assert.Equal(t, "https://example.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, 3*time.Second, cfg.SourceTimeout)
	assert.True(t, cfg.SeedDemoData)
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "not-a-duration")
	assert.Equal(t, time.Minute, getEnvDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "250ms")
	assert.Equal(t, 250*time.Millisecond, getEnvDuration("TEST_DURATION", time.Minute))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "REST in development without URL",
			cfg:  Config{CallSource: SourceREST, Environment: "development", DisplayTimezone: "UTC"},
		},
		{
			name:    "REST in production without URL",
			cfg:     Config{CallSource: SourceREST, Environment: "production", DisplayTimezone: "UTC"},
			wantErr: "SUPABASE_URL",
		},
		{
			name: "SQL with local path",
			cfg:  Config{CallSource: SourceSQL, DBPath: "db/app.db", DisplayTimezone: "UTC"},
		},
		{
			name:    "SQL without any database",
			cfg:     Config{CallSource: SourceSQL, DisplayTimezone: "UTC"},
			wantErr: "DB_PATH",
		},
		{
			name:    "Unknown source",
			cfg:     Config{CallSource: "ftp", DisplayTimezone: "UTC"},
			wantErr: "unknown CALL_SOURCE",
		},
		{
			name:    "Bad timezone",
			cfg:     Config{CallSource: SourceSQL, DBPath: "x.db", DisplayTimezone: "Mars/Olympus"},
			wantErr: "DISPLAY_TIMEZONE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLocationFallback(t *testing.T) {
	cfg := &Config{DisplayTimezone: "Nowhere/Invalid"}
	assert.Equal(t, time.UTC, cfg.Location())

	cfg.DisplayTimezone = "America/New_York"
	assert.Equal(t, "America/New_York", cfg.Location().String())
}
