package partials

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"recall/models"
	"recall/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, render func(*bytes.Buffer) error) string {
	var buf bytes.Buffer
	require.NoError(t, render(&buf))
	return buf.String()
}

func TestCallsFragmentEmpty(t *testing.T) {
	snap := services.NewDashboardSnapshot([]models.CallLog{}, models.SelectorAll)
	html := renderString(t, func(b *bytes.Buffer) error {
		return CallsFragment(snap).Render(context.Background(), b)
	})

	assert.Contains(t, html, `id="dashboard-calls"`)
	assert.Equal(t, 3, strings.Count(html, "No calls found"))
	assert.Contains(t, html, `data-empty-for="all">No calls found`)
	assert.Contains(t, html, `data-empty-for="pending" hidden>`)
	assert.Contains(t, html, `data-empty-for="completed" hidden>`)
	assert.Equal(t, 4, strings.Count(html, `data-stat=`))
	assert.Contains(t, html, `data-stat="Total Callbacks">0<`)
	assert.Contains(t, html, `data-stat="Pending">0<`)
	assert.Contains(t, html, `data-stat="Completed">0<`)
	assert.Contains(t, html, `data-stat="Avg Duration">18 min<`)
}

func TestCallsFragmentRows(t *testing.T) {
	calls := services.MapCallRows([]models.CallHistoryRow{
		{ID: 1, Name: ptr("John <Smith>"), PhoneNumber: ptr("+1 555 123 4567"), Notes: ptr("<i>Premium</i> package"), MeetingDate: ptr("2025-10-05T14:00:00")},
		{ID: 2, Name: ptr("Undated"), MeetingDate: ptr("whenever")},
	})
	snap := services.NewDashboardSnapshot(calls, models.SelectorPending)

	html := renderString(t, func(b *bytes.Buffer) error {
		return CallsFragment(snap).Render(context.Background(), b)
	})

	assert.Contains(t, html, `data-empty-for="completed" hidden>No calls found`)
	assert.NotContains(t, html, `data-empty-for="pending"`)
	assert.Contains(t, html, "John &lt;Smith&gt;")
	assert.Contains(t, html, "Premium package")
	assert.NotContains(t, html, "<i>")
	assert.Contains(t, html, "Oct 5, 2:00 PM")
	assert.Contains(t, html, "No date specified")
	assert.Contains(t, html, `href="https://www.google.com/calendar/render?action=TEMPLATE&amp;text=Callback%3A%20John%20%3CSmith%3E&amp;dates=20251005T140000Z/20251005T143000Z`)
	assert.Contains(t, html, `target="_blank"`)
	assert.Contains(t, html, `href="/dashboard/calls/1/calendar.ics"`)
	assert.NotContains(t, html, `href="/dashboard/calls/2/calendar.ics"`)
	assert.Contains(t, html, "disabled")
	assert.Contains(t, html, `data-stat="Pending">2<`)
	assert.Contains(t, html, `aria-current="page">Pending<`)
}

func TestCallRowCompletedHasNoCalendarAction(t *testing.T) {
	duration := "15 min"
	call := models.CallLog{ID: 3, CallerName: "Mike Wilson", Status: models.CallStatusCompleted, ScheduledTime: "2025-10-04T10:00:00", Duration: &duration}

	html := renderString(t, func(b *bytes.Buffer) error {
		return CallRow(call, true).Render(context.Background(), b)
	})

	assert.NotContains(t, html, "Add to Calendar")
	assert.Contains(t, html, "15 min")
	assert.Contains(t, html, "bg-green-100")
	assert.Contains(t, html, "View Details")
}

func TestCallsFragmentRendersEveryTab(t *testing.T) {
	calls := []models.CallLog{
		{ID: 1, CallerName: "Pending Caller", Status: models.CallStatusPending, ScheduledTime: "2025-10-05T14:00:00Z"},
		{ID: 2, CallerName: "Done Caller", Status: models.CallStatusCompleted, ScheduledTime: "2025-10-04T10:00:00Z"},
	}
	snap := services.NewDashboardSnapshot(calls, models.SelectorCompleted)

	html := renderString(t, func(b *bytes.Buffer) error {
		return CallsFragment(snap).Render(context.Background(), b)
	})

	// Both rows are present; only the one under the selected tab is shown
	assert.Contains(t, html, `data-selected="completed"`)
	assert.Contains(t, html, `data-call-id="1" data-status="pending" hidden>`)
	assert.Contains(t, html, `data-call-id="2" data-status="completed">`)
	assert.Equal(t, 3, strings.Count(html, "data-tab="))
	assert.NotContains(t, html, "hx-get")
	assert.Contains(t, html, `href="/dashboard/export.xlsx?tab=completed"`)
}

func ptr(s string) *string {
	return &s
}
