package handlers

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"recall/models"
	"recall/services"

	"github.com/labstack/echo/v4"
)

// stubSource is a CallSource returning canned rows or an error
type stubSource struct {
	rows    []models.CallHistoryRow
	err     error
	fetches int
}

func (s *stubSource) FetchCalls(ctx context.Context) ([]models.CallHistoryRow, error) {
	s.fetches++
	return s.rows, s.err
}

var errSourceDown = errors.New("connection refused")

// useSource swaps the global call source for the duration of a test
func useSource(t *testing.T, source services.CallSource) {
	previous := services.Calls
	services.Calls = source
	t.Cleanup(func() { services.Calls = previous })
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

func sampleRows() []models.CallHistoryRow {
	return []models.CallHistoryRow{
		{ID: 1, Name: stringToPtr("John Smith"), PhoneNumber: stringToPtr("+1 (555) 123-4567"), Notes: stringToPtr("Wants a quote for the premium package"), MeetingDate: stringToPtr("2025-10-05T14:00:00Z")},
		{ID: 2, Name: stringToPtr("Sarah Johnson"), PhoneNumber: stringToPtr("+1 (555) 987-6543"), Notes: stringToPtr("Follow-up on service inquiry"), MeetingDate: stringToPtr("2025-10-05T16:30:00")},
		{ID: 3, Name: stringToPtr("No Date"), PhoneNumber: stringToPtr("+1 (555) 000-0000")},
	}
}

func stringToPtr(s string) *string {
	return &s
}
