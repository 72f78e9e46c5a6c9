package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"recall/config"
	"recall/models"

	"gorm.io/gorm"
)

// CallSource reads every row of the call history table. Implementations send no filter,
// ordering or pagination; rows come back in whatever order the backend returns them.
type CallSource interface {
	FetchCalls(ctx context.Context) ([]models.CallHistoryRow, error)
}

// Calls is the global call source instance
var Calls CallSource

// NewCallSource builds the call source selected by CALL_SOURCE
func NewCallSource(cfg *config.Config, database *gorm.DB) (CallSource, error) {
	switch cfg.CallSource {
	case config.SourceREST:
		return NewRESTCallSource(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.CallTable, cfg.SourceTimeout), nil
	case config.SourceSQL:
		if database == nil {
			return nil, fmt.Errorf("sql call source requires an initialized database")
		}
		return NewSQLCallSource(database, cfg.CallTable), nil
	default:
		return nil, fmt.Errorf("unknown call source %q", cfg.CallSource)
	}
}

// RESTCallSource reads the table through a hosted PostgREST endpoint (Supabase)
type RESTCallSource struct {
	baseURL string
	apiKey  string
	table   string
	client  *http.Client
}

// NewRESTCallSource creates a REST call source for baseURL (e.g. https://xyz.supabase.co)
func NewRESTCallSource(baseURL, apiKey, table string, timeout time.Duration) *RESTCallSource {
	return &RESTCallSource{
		baseURL: baseURL,
		apiKey:  apiKey,
		table:   table,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchCalls issues GET /rest/v1/{table}?select=*
func (s *RESTCallSource) FetchCalls(ctx context.Context) ([]models.CallHistoryRow, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("call source URL is not configured")
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s?select=*", s.baseURL, url.PathEscape(s.table))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build call history request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("apikey", s.apiKey)
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query call history: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("call history query returned %d: %s", resp.StatusCode, string(body))
	}

	var rows []models.CallHistoryRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode call history response: %w", err)
	}

	return rows, nil
}

// SQLCallSource reads the table through gorm (local SQLite or Turso)
type SQLCallSource struct {
	db    *gorm.DB
	table string
}

// NewSQLCallSource creates a SQL call source over the given table
func NewSQLCallSource(database *gorm.DB, table string) *SQLCallSource {
	if table == "" {
		table = models.CallHistoryTable
	}
	return &SQLCallSource{db: database, table: table}
}

// FetchCalls runs SELECT * FROM {table}
func (s *SQLCallSource) FetchCalls(ctx context.Context) ([]models.CallHistoryRow, error) {
	var rows []models.CallHistoryRow
	if err := s.db.WithContext(ctx).Table(s.table).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query call history: %w", err)
	}
	return rows, nil
}
