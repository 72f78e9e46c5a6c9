package pages

import (
	"context"
	"io"

	"recall/templates/components"
	"recall/templates/layouts"
	"recall/templates/partials"

	"github.com/a-h/templ"
)

var dashboardNav = [][2]string{
	{"Dashboard", "/dashboard"},
	{"Settings", "#"},
	{"Analytics", "#"},
}

// Dashboard renders the page shell. The calls fragment is fetched by htmx on load,
// so the page paints with a loading indicator and the list replaces it.
func Dashboard(ctx context.Context, vm DashboardViewModel) templ.Component {
	return layouts.Base(vm.Title, vm.CSRFToken, templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewWriter(ctx, out)
		w.Raw(`<div class="min-h-screen bg-gray-50">`)

		w.Raw(`<nav class="bg-white shadow-sm"><div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"><div class="flex justify-between h-16 items-center">`)
		w.Raw(`<div class="flex items-center gap-8"><a href="/" class="text-2xl font-bold text-blue-900">Recall</a><div class="hidden md:flex gap-6">`)
		for i, item := range dashboardNav {
			w.Raw(`<a`)
			w.URLAttr("href", item[1])
			if i == 0 {
				w.Attr("class", "text-blue-900 font-medium")
			} else {
				w.Attr("class", "text-gray-600 hover:text-blue-900 transition-colors")
			}
			w.Raw(`>`)
			w.Text(item[0])
			w.Raw(`</a>`)
		}
		w.Raw(`</div></div>`)
		w.Raw(`<div class="flex items-center gap-4"><button type="button" class="p-2 text-gray-600 hover:text-blue-900 transition-colors" aria-label="Notifications"><svg class="w-6 h-6" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M15 17h5l-1.405-1.405A2.032 2.032 0 0118 14.158V11a6.002 6.002 0 00-4-5.659V5a2 2 0 10-4 0v.341C7.67 6.165 6 8.388 6 11v3.159c0 .538-.214 1.055-.595 1.436L4 17h5m6 0v1a3 3 0 11-6 0v-1m6 0H9"></path></svg></button>`)
		w.Raw(`<div class="w-10 h-10 bg-blue-900 rounded-full flex items-center justify-center text-white font-semibold">U</div></div>`)
		w.Raw(`</div></div></nav>`)

		w.Raw(`<main class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-8">`)
		w.Raw(`<div class="mb-8"><h1 class="text-3xl font-bold text-gray-900">Callback Dashboard</h1><p class="text-gray-600 mt-1">Every missed call, called back and ready for you.</p></div>`)

		w.Raw(`<div`)
		w.Attr("id", partials.CallsFragmentID)
		w.Attr("hx-get", vm.CallsURL())
		w.Attr("hx-trigger", "load")
		w.Attr("hx-swap", "outerHTML")
		w.Raw(` class="flex items-center justify-center py-24 text-gray-500"><svg class="animate-spin w-6 h-6 mr-3 text-blue-900" fill="none" viewBox="0 0 24 24"><circle class="opacity-25" cx="12" cy="12" r="10" stroke="currentColor" stroke-width="4"></circle><path class="opacity-75" fill="currentColor" d="M4 12a8 8 0 018-8v4a4 4 0 00-4 4H4z"></path></svg>Loading callbacks...</div>`)
		w.Raw(`<noscript><p class="text-center text-gray-500">The callback list needs JavaScript. The JSON feed is at <a class="underline" href="/api/calls">/api/calls</a>.</p></noscript>`)
		w.Raw(`</main></div>`)
		return w.Err()
	}))
}
