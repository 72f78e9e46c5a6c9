package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"recall/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallsAPIHandler(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		source    *stubSource
		wantSel   models.Selector
		wantCalls int
		wantTotal int
	}{
		{"All calls", "", &stubSource{rows: sampleRows()}, models.SelectorAll, 3, 3},
		{"Pending", "?status=pending", &stubSource{rows: sampleRows()}, models.SelectorPending, 3, 3},
		{"Completed", "?status=completed", &stubSource{rows: sampleRows()}, models.SelectorCompleted, 0, 3},
		{"Unknown status falls back to all", "?status=missed", &stubSource{rows: sampleRows()}, models.SelectorAll, 3, 3},
		{"Failing source", "", &stubSource{err: errSourceDown}, models.SelectorAll, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useSource(t, tt.source)
			_, c, rec := setupEcho(http.MethodGet, "/api/calls"+tt.query, nil)

			require.NoError(t, CallsAPIHandler(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var resp CallsResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantSel, resp.Selector)
			assert.Len(t, resp.Calls, tt.wantCalls)
			assert.Equal(t, tt.wantTotal, resp.Stats.Total)
			assert.Equal(t, "18 min", resp.Stats.AvgDuration)
		})
	}
}

func TestCallsAPIHandlerEmptyListIsArray(t *testing.T) {
	useSource(t, &stubSource{})
	_, c, rec := setupEcho(http.MethodGet, "/api/calls", nil)

	require.NoError(t, CallsAPIHandler(c))
	assert.Contains(t, rec.Body.String(), `"calls":[]`)
}

func TestCallsAPIHandlerFieldNames(t *testing.T) {
	useSource(t, &stubSource{rows: sampleRows()[:1]})
	_, c, rec := setupEcho(http.MethodGet, "/api/calls", nil)

	require.NoError(t, CallsAPIHandler(c))
	body := rec.Body.String()
	assert.Contains(t, body, `"callerName":"John Smith"`)
	assert.Contains(t, body, `"status":"pending"`)
	assert.NotContains(t, body, `"duration"`)
}
