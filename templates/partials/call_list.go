package partials

import (
	"context"
	"fmt"
	"io"

	"recall/models"
	"recall/services"
	"recall/templates/components"

	"github.com/a-h/templ"
)

// CallsFragmentID is the element htmx swaps when the list loads or a tab changes
const CallsFragmentID = "dashboard-calls"

const (
	iconPhone    = `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M3 5a2 2 0 012-2h3.28a1 1 0 01.948.684l1.498 4.493a1 1 0 01-.502 1.21l-2.257 1.13a11.042 11.042 0 005.516 5.516l1.13-2.257a1 1 0 011.21-.502l4.493 1.498a1 1 0 01.684.949V19a2 2 0 01-2 2h-1C9.716 21 3 14.284 3 6V5z"></path>`
	iconClock    = `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M12 8v4l3 3m6-3a9 9 0 11-18 0 9 9 0 0118 0z"></path>`
	iconCheck    = `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M9 12l2 2 4-4m6 2a9 9 0 11-18 0 9 9 0 0118 0z"></path>`
	iconBolt     = `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M13 10V3L4 14h7v7l9-11h-7z"></path>`
	iconCalendar = `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M8 7V3m8 4V3m-9 8h10M5 21h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v12a2 2 0 002 2z"></path>`
)

func svg(class, paths string) string {
	return `<svg class="` + class + `" fill="none" stroke="currentColor" viewBox="0 0 24 24">` + paths + `</svg>`
}

// CallsFragment renders the stats cards and every call in the snapshot. Rows outside
// the selected tab are emitted hidden; switching tabs is done in the browser from
// data-status, so one fetch serves every tab.
func CallsFragment(snap services.DashboardSnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewWriter(ctx, out)
		w.Raw(`<div`)
		w.Attr("id", CallsFragmentID)
		w.Attr("data-selected", string(snap.Selector))
		w.Raw(`>`)
		w.Component(StatsCards(snap.Stats))
		w.Raw(`<div class="bg-white rounded-lg shadow-sm"><div class="p-6 border-b border-gray-200"><div class="flex flex-wrap justify-between items-center gap-4">`)
		w.Raw(`<h2 class="text-xl font-semibold text-gray-900">Recent Callbacks</h2><div class="flex gap-2">`)
		for _, s := range models.Selectors {
			writeTab(w, s, s == snap.Selector)
		}
		w.Raw(`<a class="px-4 py-2 border border-gray-300 text-gray-700 rounded-lg hover:bg-gray-50 transition-colors" data-export`)
		w.URLAttr("href", "/dashboard/export.xlsx?tab="+string(snap.Selector))
		w.Raw(`>Export</a></div></div></div>`)

		w.Raw(`<div class="divide-y divide-gray-200">`)
		for _, s := range models.Selectors {
			if len(services.FilterCalls(snap.All, s)) > 0 {
				continue
			}
			w.Raw(`<div class="p-12 text-center text-gray-500"`)
			w.Attr("data-empty-for", string(s))
			if s != snap.Selector {
				w.Raw(` hidden`)
			}
			w.Raw(`>No calls found</div>`)
		}
		for _, call := range snap.All {
			w.Component(CallRow(call, services.MatchesSelector(call, snap.Selector)))
		}
		w.Raw(`</div></div></div>`)
		return w.Err()
	})
}

// writeTab renders a filter tab. The href is the no-JavaScript fallback; app.js
// intercepts the click and toggles rows in place.
func writeTab(w *components.Writer, s models.Selector, active bool) {
	w.Raw(`<a`)
	w.Attr("class", tabClass)
	w.URLAttr("href", "/dashboard?tab="+string(s))
	w.Attr("data-tab", string(s))
	if active {
		w.Attr("aria-current", "page")
	}
	w.Raw(`>`)
	w.Text(tabLabel(s))
	w.Raw(`</a>`)
}

// StatsCards renders the four counters above the list
func StatsCards(stats models.DashboardStats) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewWriter(ctx, out)
		w.Raw(`<div class="grid grid-cols-1 md:grid-cols-4 gap-6 mb-8">`)
		writeStatCard(w, "Total Callbacks", fmt.Sprint(stats.Total), "text-gray-900", "bg-blue-900/10", svg("w-6 h-6 text-blue-900", iconPhone))
		writeStatCard(w, "Pending", fmt.Sprint(stats.Pending), "text-yellow-600", "bg-yellow-100", svg("w-6 h-6 text-yellow-600", iconClock))
		writeStatCard(w, "Completed", fmt.Sprint(stats.Completed), "text-green-600", "bg-green-100", svg("w-6 h-6 text-green-600", iconCheck))
		writeStatCard(w, "Avg Duration", stats.AvgDuration, "text-gray-900", "bg-purple-100", svg("w-6 h-6 text-purple-600", iconBolt))
		w.Raw(`</div>`)
		return w.Err()
	})
}

func writeStatCard(w *components.Writer, label, value, valueClass, iconBg, icon string) {
	w.Raw(`<div class="bg-white rounded-lg p-6 shadow-sm"><div class="flex items-center justify-between"><div><p class="text-sm text-gray-600">`)
	w.Text(label)
	w.Raw(`</p><p`)
	w.Attr("class", "text-2xl font-bold mt-1 "+valueClass)
	w.Attr("data-stat", label)
	w.Raw(`>`)
	w.Text(value)
	w.Raw(`</p></div><div`)
	w.Attr("class", "w-12 h-12 rounded-lg flex items-center justify-center "+iconBg)
	w.Raw(`>` + icon + `</div></div></div>`)
}

// CallRow renders one callback, hidden when it is outside the selected tab
func CallRow(call models.CallLog, visible bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewWriter(ctx, out)
		w.Raw(`<div class="p-6 hover:bg-gray-50 transition-colors"`)
		w.Attr("data-call-id", fmt.Sprint(call.ID))
		w.Attr("data-status", string(call.Status))
		if !visible {
			w.Raw(` hidden`)
		}
		w.Raw(`><div class="flex items-start justify-between"><div class="flex-1"><div class="flex items-center gap-3 mb-2"><h3 class="text-lg font-semibold text-gray-900">`)
		w.Text(call.CallerName)
		w.Raw(`</h3><span`)
		w.Attr("class", "px-3 py-1 rounded-full text-xs font-medium "+statusBadgeClass(call.Status))
		w.Raw(`>`)
		w.Text(string(call.Status))
		w.Raw(`</span></div><p class="text-gray-600 mb-2">`)
		w.Text(call.CallerPhone)
		w.Raw(`</p><p class="text-gray-700 mb-3">`)
		w.Text(plainNotes(call.Summary))
		w.Raw(`</p><div class="flex items-center gap-4 text-sm text-gray-500"><div class="flex items-center gap-1">`)
		w.Raw(svg("w-4 h-4", iconCalendar))
		w.Text(services.FormatDisplayDate(call.ScheduledTime))
		w.Raw(`</div>`)
		if call.Duration != nil && *call.Duration != "" {
			w.Raw(`<div class="flex items-center gap-1">` + svg("w-4 h-4", iconClock))
			w.Text(*call.Duration)
			w.Raw(`</div>`)
		}
		w.Raw(`</div></div><div class="flex gap-2 ml-4">`)
		if call.Status == models.CallStatusPending {
			writeCalendarAction(w, call)
		}
		w.Raw(`<button type="button" class="px-4 py-2 border border-gray-300 text-gray-700 rounded-lg hover:bg-gray-50 transition-colors">View Details</button>`)
		w.Raw(`</div></div></div>`)
		return w.Err()
	})
}

// writeCalendarAction links straight to the calendar service with the link built from
// the row being rendered, so the click needs no further request to this server.
func writeCalendarAction(w *components.Writer, call models.CallLog) {
	link, err := services.BuildCalendarLink(call)
	if err != nil {
		w.Raw(`<button type="button" disabled class="px-4 py-2 bg-gray-200 text-gray-500 rounded-lg cursor-not-allowed flex items-center gap-2"`)
		w.Attr("title", services.NoDateLabel)
		w.Raw(`>` + svg("w-4 h-4", iconCalendar) + `Add to Calendar</button>`)
		return
	}

	w.Raw(`<a class="px-4 py-2 bg-blue-900 text-white rounded-lg hover:bg-blue-800 transition-colors flex items-center gap-2" target="_blank" rel="noopener noreferrer"`)
	w.URLAttr("href", link)
	w.Raw(`>` + svg("w-4 h-4", iconCalendar) + `Add to Calendar</a>`)
	w.Raw(`<a class="px-3 py-2 border border-gray-300 text-gray-700 rounded-lg hover:bg-gray-50 transition-colors" title="Download .ics"`)
	w.URLAttr("href", fmt.Sprintf("/dashboard/calls/%d/calendar.ics", call.ID))
	w.Raw(`>.ics</a>`)
}
