package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer writes markup for a component and keeps the first error it hits,
// so components can emit a long run of fragments and check once at the end
type Writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

// NewWriter wraps w for a component render
func NewWriter(ctx context.Context, w io.Writer) *Writer {
	return &Writer{ctx: ctx, w: w}
}

// Raw writes trusted markup as-is
func (w *Writer) Raw(markup string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, markup)
}

// Text writes HTML-escaped text
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with the value escaped
func (w *Writer) Attr(name, value string) {
	w.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// URLAttr writes a URL attribute, dropping values templ considers unsafe (javascript: etc.)
func (w *Writer) URLAttr(name, url string) {
	w.Attr(name, string(templ.URL(url)))
}

// Component renders a child component into the same output
func (w *Writer) Component(c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(w.ctx, w.w)
}

// Err returns the first error encountered
func (w *Writer) Err() error {
	return w.err
}

// Markup is a component that writes a fixed string of trusted HTML
func Markup(html string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}
