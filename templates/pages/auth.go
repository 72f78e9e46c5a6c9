package pages

import (
	"context"
	"io"

	"recall/templates/components"
	"recall/templates/layouts"

	"github.com/a-h/templ"
)

const (
	authTabActive   = "flex-1 py-2 text-center rounded-md bg-blue-600 text-white font-medium transition-colors"
	authTabInactive = "flex-1 py-2 text-center rounded-md text-slate-400 hover:text-white font-medium transition-colors"
	authInput       = "w-full px-4 py-3 bg-slate-900/60 border border-slate-700 rounded-lg text-white placeholder-slate-500 focus:outline-none focus:ring-2 focus:ring-blue-500"
	authOAuthButton = "flex items-center justify-center gap-2 px-4 py-3 bg-slate-900/60 border border-slate-700 rounded-lg text-slate-300 hover:bg-slate-700 transition-colors"
)

// Auth renders the sign-in and sign-up page. The form is presentational: Continue
// goes straight to the dashboard and nothing is posted.
func Auth(ctx context.Context, title, csrfToken string, signUp bool) templ.Component {
	return layouts.Base(title, csrfToken, templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewWriter(ctx, out)
		w.Raw(`<div class="min-h-screen bg-gradient-to-br from-slate-900 via-slate-800 to-slate-900 flex items-center justify-center px-4 py-12">`)
		w.Raw(`<div class="w-full max-w-md">`)

		w.Raw(`<div class="text-center mb-8"><a href="/" class="text-3xl font-bold text-white">Recall</a><p class="text-slate-400 mt-2">`)
		if signUp {
			w.Text("Create your account and never miss a call again")
		} else {
			w.Text("Welcome back. Sign in to see your callbacks")
		}
		w.Raw(`</p></div>`)

		w.Raw(`<div class="bg-slate-800/80 backdrop-blur border border-slate-700 rounded-2xl shadow-2xl p-8">`)

		// Mode tabs
		w.Raw(`<div class="flex gap-2 p-1 mb-6 bg-slate-900/60 rounded-lg">`)
		writeAuthTab(w, "/auth", "Sign In", !signUp)
		writeAuthTab(w, "/auth?mode=signup", "Sign Up", signUp)
		w.Raw(`</div>`)

		w.Raw(`<div class="space-y-4">`)
		if signUp {
			writeAuthField(w, "business_name", "Business Name", "text", "Acme Plumbing")
			writeAuthField(w, "phone", "Phone", "tel", "+1 (555) 000-0000")
		}
		writeAuthField(w, "email", "Email", "email", "you@example.com")
		writeAuthField(w, "password", "Password", "password", "••••••••")

		if !signUp {
			w.Raw(`<div class="flex items-center justify-between text-sm"><label class="flex items-center gap-2 text-slate-400"><input type="checkbox" name="remember" class="rounded border-slate-600 bg-slate-900">Remember me</label>`)
			w.Raw(`<a href="#" class="text-blue-400 hover:text-blue-300">Forgot password?</a></div>`)
		}

		w.Raw(`<a href="/dashboard" class="block w-full py-3 text-center bg-blue-600 text-white font-semibold rounded-lg hover:bg-blue-700 transition-colors">Continue</a>`)
		w.Raw(`</div>`)

		w.Raw(`<div class="flex items-center gap-3 my-6"><div class="flex-1 h-px bg-slate-700"></div><span class="text-sm text-slate-500">or continue with</span><div class="flex-1 h-px bg-slate-700"></div></div>`)
		w.Raw(`<div class="grid grid-cols-2 gap-3">`)
		w.Raw(`<button type="button"`)
		w.Attr("class", authOAuthButton)
		w.Raw(`>Google</button><button type="button"`)
		w.Attr("class", authOAuthButton)
		w.Raw(`>GitHub</button></div>`)
		w.Raw(`</div>`)

		w.Raw(`<p class="text-center text-slate-400 mt-6">`)
		if signUp {
			w.Raw(`Already have an account? <a href="/auth" class="text-blue-400 hover:text-blue-300 font-medium">Sign in</a>`)
		} else {
			w.Raw(`Don&#39;t have an account? <a href="/auth?mode=signup" class="text-blue-400 hover:text-blue-300 font-medium">Sign up</a>`)
		}
		w.Raw(`</p></div></div>`)
		return w.Err()
	}))
}

func writeAuthTab(w *components.Writer, href, label string, active bool) {
	w.Raw(`<a`)
	w.URLAttr("href", href)
	if active {
		w.Attr("class", authTabActive)
		w.Attr("aria-current", "page")
	} else {
		w.Attr("class", authTabInactive)
	}
	w.Raw(`>`)
	w.Text(label)
	w.Raw(`</a>`)
}

func writeAuthField(w *components.Writer, name, label, kind, placeholder string) {
	w.Raw(`<div><label class="block text-sm font-medium text-slate-300 mb-1"`)
	w.Attr("for", name)
	w.Raw(`>`)
	w.Text(label)
	w.Raw(`</label><input`)
	w.Attr("id", name)
	w.Attr("name", name)
	w.Attr("type", kind)
	w.Attr("placeholder", placeholder)
	w.Attr("class", authInput)
	w.Raw(`></div>`)
}
