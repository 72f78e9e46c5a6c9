package layouts

import (
	"context"
	"io"

	"recall/middleware"
	"recall/templates/components"

	"github.com/a-h/templ"
)

const description = "Never miss a call again. Automated callback system for businesses."

// Base wraps a page body in the shared document shell
func Base(title, csrfToken string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		nonce := middleware.GetNonce(ctx)

		w := components.NewWriter(ctx, out)
		w.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		w.Text(title)
		w.Raw(`</title><meta name="description"`)
		w.Attr("content", description)
		w.Raw(`><meta name="csrf-token"`)
		w.Attr("content", csrfToken)
		w.Raw(`><link rel="icon" type="image/svg+xml"`)
		w.Attr("href", middleware.AssetURL(ctx, middleware.AssetFavicon))
		w.Raw(`><link rel="preconnect" href="https://fonts.googleapis.com"><link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>`)
		w.Raw(`<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Space+Grotesk:wght@400;500;600;700&amp;display=swap">`)
		w.Raw(`<link rel="stylesheet"`)
		w.Attr("href", middleware.AssetURL(ctx, middleware.AssetCSS))
		w.Raw(`><script src="https://cdn.tailwindcss.com"`)
		w.Attr("nonce", nonce)
		w.Raw(`></script><script src="https://unpkg.com/htmx.org@2.0.4"`)
		w.Attr("nonce", nonce)
		w.Raw(`></script><script defer`)
		w.Attr("src", middleware.AssetURL(ctx, middleware.AssetAppJS))
		w.Attr("nonce", nonce)
		w.Raw(`></script></head><body class="antialiased">`)
		w.Component(body)
		w.Raw(`</body></html>`)
		return w.Err()
	})
}
