package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardCallsHTMX(t *testing.T) {
	t.Run("Lists every call under all", func(t *testing.T) {
		useSource(t, &stubSource{rows: sampleRows()})
		_, c, rec := setupEcho(http.MethodGet, "/dashboard/calls?tab=all", nil)

		require.NoError(t, DashboardCallsHTMX(c))
		body := rec.Body.String()
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, body, "John Smith")
		assert.Contains(t, body, "Sarah Johnson")
		assert.Contains(t, body, `data-stat="Total Callbacks">3<`)
		assert.Contains(t, body, `data-stat="Pending">3<`)
		assert.Contains(t, body, `data-stat="Completed">0<`)
		assert.Equal(t, 3, strings.Count(body, "data-call-id="))
	})

	t.Run("Completed tab is empty but counters still cover everything", func(t *testing.T) {
		useSource(t, &stubSource{rows: sampleRows()})
		_, c, rec := setupEcho(http.MethodGet, "/dashboard/calls?tab=completed", nil)

		require.NoError(t, DashboardCallsHTMX(c))
		body := rec.Body.String()
		assert.Contains(t, body, `data-empty-for="completed">No calls found`)
		assert.Contains(t, body, `data-stat="Total Callbacks">3<`)
		assert.Contains(t, body, `aria-current="page">Completed<`)
		// Pending rows ship hidden so the other tabs need no request
		assert.Equal(t, 3, strings.Count(body, `data-status="pending" hidden>`))
	})

	t.Run("Row without a date has the calendar action disabled", func(t *testing.T) {
		useSource(t, &stubSource{rows: sampleRows()})
		_, c, rec := setupEcho(http.MethodGet, "/dashboard/calls", nil)

		require.NoError(t, DashboardCallsHTMX(c))
		body := rec.Body.String()
		assert.Contains(t, body, `href="https://www.google.com/calendar/render?action=TEMPLATE&amp;text=Callback%3A%20John%20Smith&amp;dates=20251005T140000Z/20251005T143000Z`)
		assert.Contains(t, body, "Callback%3A%20Sarah%20Johnson")
		assert.NotContains(t, body, "Callback%3A%20No%20Date")
		assert.Contains(t, body, `href="/dashboard/calls/1/calendar.ics"`)
		assert.NotContains(t, body, `href="/dashboard/calls/3/calendar.ics"`)
		assert.Contains(t, body, "No date specified")
	})
}

func TestDashboardCallsHTMXFetchesOncePerView(t *testing.T) {
	source := &stubSource{rows: sampleRows()}
	useSource(t, source)

	_, c, rec := setupEcho(http.MethodGet, "/dashboard/calls?tab=all", nil)
	require.NoError(t, DashboardCallsHTMX(c))
	assert.Equal(t, 1, source.fetches)

	body := rec.Body.String()
	// Tabs toggle in the browser rather than asking the server again
	assert.NotContains(t, body, "hx-get")
	assert.Equal(t, 3, strings.Count(body, "data-tab="))
	for _, tab := range []string{"all", "pending", "completed"} {
		assert.Contains(t, body, `data-tab="`+tab+`"`)
	}

	// Add to Calendar goes straight to the calendar service with the rendered row's data
	assert.Contains(t, body, "Callback%3A%20John%20Smith")
	assert.NotContains(t, body, "/dashboard/calls/1/calendar\"")
	assert.Equal(t, 1, source.fetches)
}

func TestDashboardCallsHTMXEmptyAndFailingLookTheSame(t *testing.T) {
	useSource(t, &stubSource{})
	_, c, rec := setupEcho(http.MethodGet, "/dashboard/calls?tab=all", nil)
	require.NoError(t, DashboardCallsHTMX(c))
	empty := rec.Body.String()

	assert.Contains(t, empty, "No calls found")
	assert.Contains(t, empty, `data-stat="Total Callbacks">0<`)
	assert.Contains(t, empty, `data-stat="Pending">0<`)
	assert.Contains(t, empty, `data-stat="Completed">0<`)

	useSource(t, &stubSource{err: errSourceDown})
	_, c, rec = setupEcho(http.MethodGet, "/dashboard/calls?tab=all", nil)
	require.NoError(t, DashboardCallsHTMX(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, empty, rec.Body.String())
}

func TestDashboardCallsHTMXWithoutSource(t *testing.T) {
	useSource(t, nil)
	_, c, rec := setupEcho(http.MethodGet, "/dashboard/calls", nil)

	require.NoError(t, DashboardCallsHTMX(c))
	assert.Contains(t, rec.Body.String(), "No calls found")
}
