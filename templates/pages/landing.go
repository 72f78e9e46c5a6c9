package pages

import (
	"context"
	"io"
	"strconv"

	"recall/templates/components"
	"recall/templates/layouts"

	"github.com/a-h/templ"
)

type feature struct {
	title string
	body  string
	icon  string
}

var landingFeatures = []feature{
	{
		title: "Automated Callbacks",
		body:  "Our AI automatically calls back every missed caller, gathers their details, and books a time that works for both of you.",
		icon:  `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M3 5a2 2 0 012-2h3.28a1 1 0 01.948.684l1.498 4.493a1 1 0 01-.502 1.21l-2.257 1.13a11.042 11.042 0 005.516 5.516l1.13-2.257a1 1 0 011.21-.502l4.493 1.498a1 1 0 01.684.949V19a2 2 0 01-2 2h-1C9.716 21 3 14.284 3 6V5z"></path>`,
	},
	{
		title: "Smart Scheduling",
		body:  "Callbacks land on your calendar with the caller's notes attached, so you know exactly who you are talking to before you dial.",
		icon:  `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M8 7V3m8 4V3m-9 8h10M5 21h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v12a2 2 0 002 2z"></path>`,
	},
	{
		title: "Detailed Analytics",
		body:  "Track every callback from missed call to conversation and see how quickly your team follows up.",
		icon:  `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M9 19v-6a2 2 0 00-2-2H5a2 2 0 00-2 2v6a2 2 0 002 2h2a2 2 0 002-2zm0 0V9a2 2 0 012-2h2a2 2 0 012 2v10m-6 0a2 2 0 002 2h2a2 2 0 002-2m0 0V5a2 2 0 012-2h2a2 2 0 012 2v14a2 2 0 01-2 2h-2a2 2 0 01-2-2z"></path>`,
	},
}

var landingStats = [][2]string{
	{"1k+", "Callbacks Handled"},
	{"98%", "Customer Satisfaction"},
	{"24/7", "Always Available"},
	{"<5s", "Avg Response Time"},
}

var landingSteps = [][2]string{
	{"Missed Call", "A customer calls while you are busy or after hours."},
	{"AI Callback", "Recall calls them back within seconds and captures what they need."},
	{"You Connect", "The callback is on your dashboard and your calendar, ready for you."},
}

// Landing renders the marketing home page
func Landing(ctx context.Context, title, csrfToken string) templ.Component {
	return layouts.Base(title, csrfToken, templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewWriter(ctx, out)
		w.Raw(`<div class="min-h-screen bg-gradient-to-br from-slate-50 via-gray-50 to-slate-100 overflow-hidden relative">`)
		w.Raw(`<div class="float-blob absolute top-20 left-10 w-72 h-72 bg-blue-200 rounded-full mix-blend-multiply filter blur-xl opacity-20"></div>`)
		w.Raw(`<div class="float-blob float-blob-slow absolute top-40 right-10 w-72 h-72 bg-slate-300 rounded-full mix-blend-multiply filter blur-xl opacity-20"></div>`)

		// Navigation
		w.Raw(`<nav class="bg-white shadow-sm relative z-10"><div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"><div class="flex justify-between h-16 items-center">`)
		w.Raw(`<h1 class="text-2xl font-bold text-blue-900">Recall</h1><div class="flex gap-4">`)
		w.Raw(`<a href="/auth" class="px-4 py-2 text-blue-900 hover:text-blue-700 font-medium transition-colors">Sign In</a>`)
		w.Raw(`<a href="/auth?mode=signup" class="inline-block px-6 py-2 bg-blue-900 text-white rounded-lg hover:bg-blue-800 transition-colors">Get Started</a>`)
		w.Raw(`</div></div></div></nav>`)

		// Hero
		w.Raw(`<div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-20 relative z-10"><div class="text-center">`)
		w.Raw(`<h1 class="fade-up text-5xl md:text-6xl font-bold text-gray-900 mb-6">Never Miss a Call Again</h1>`)
		w.Raw(`<p class="fade-up text-xl text-gray-600 mb-8 max-w-2xl mx-auto">AI-powered callback system that automatically calls back your customers when you&#39;re unavailable. Schedule, manage, and track all your callbacks in one place.</p>`)
		w.Raw(`<a href="/auth?mode=signup" class="fade-up inline-block px-8 py-4 bg-blue-700 text-white text-lg font-semibold rounded-lg hover:bg-blue-800 transition-colors shadow-lg">Start Free Trial</a>`)
		w.Raw(`</div>`)

		// Features
		w.Raw(`<div class="mt-24 grid md:grid-cols-3 gap-8">`)
		for _, f := range landingFeatures {
			w.Raw(`<div class="bg-white p-8 rounded-xl shadow-md hover:shadow-2xl transition-shadow duration-500"><div class="w-12 h-12 bg-blue-900/10 rounded-lg flex items-center justify-center mb-4"><svg class="w-6 h-6 text-blue-900" fill="none" stroke="currentColor" viewBox="0 0 24 24">`)
			w.Raw(f.icon)
			w.Raw(`</svg></div><h3 class="text-xl font-semibold text-gray-900 mb-2">`)
			w.Text(f.title)
			w.Raw(`</h3><p class="text-gray-600">`)
			w.Text(f.body)
			w.Raw(`</p></div>`)
		}
		w.Raw(`</div>`)

		// Stats strip
		w.Raw(`<div class="mt-24 bg-blue-900 rounded-2xl p-12 grid grid-cols-2 md:grid-cols-4 gap-8 text-center">`)
		for _, s := range landingStats {
			w.Raw(`<div><div class="text-4xl font-bold text-white">`)
			w.Text(s[0])
			w.Raw(`</div><div class="text-blue-200 mt-2">`)
			w.Text(s[1])
			w.Raw(`</div></div>`)
		}
		w.Raw(`</div>`)

		// How it works
		w.Raw(`<div class="mt-24"><h2 class="text-3xl font-bold text-gray-900 text-center mb-12">How It Works</h2><div class="grid md:grid-cols-3 gap-8">`)
		for i, step := range landingSteps {
			w.Raw(`<div class="text-center"><div class="w-16 h-16 bg-blue-900 text-white text-2xl font-bold rounded-full flex items-center justify-center mx-auto mb-4">`)
			w.Text(strconv.Itoa(i + 1))
			w.Raw(`</div><h3 class="text-xl font-semibold text-gray-900 mb-2">`)
			w.Text(step[0])
			w.Raw(`</h3><p class="text-gray-600">`)
			w.Text(step[1])
			w.Raw(`</p></div>`)
		}
		w.Raw(`</div></div>`)

		// Call to action
		w.Raw(`<div class="mt-24 text-center bg-white rounded-2xl shadow-md p-12"><h2 class="text-3xl font-bold text-gray-900 mb-4">Ready to Transform Your Business?</h2>`)
		w.Raw(`<p class="text-xl text-gray-600 mb-8">Join thousands of businesses already using Recall</p>`)
		w.Raw(`<a href="/auth?mode=signup" class="inline-block px-8 py-4 bg-blue-900 text-white text-lg font-semibold rounded-lg hover:bg-blue-800 transition-colors">Get Started Today</a></div>`)
		w.Raw(`</div>`)

		w.Raw(`<footer class="bg-white border-t border-gray-200 py-8 relative z-10"><p class="text-center text-gray-500">&copy; 2025 Recall. Never miss a customer again.</p></footer>`)
		w.Raw(`</div>`)
		return w.Err()
	}))
}
