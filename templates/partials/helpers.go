package partials

import (
	"strings"

	"recall/models"

	"github.com/microcosm-cc/bluemonday"
)

// notesPolicy strips every tag from caller notes; the text is escaped again on output
var notesPolicy = bluemonday.StrictPolicy()

// statusBadgeClass returns the Tailwind classes for a status pill
func statusBadgeClass(status models.CallStatus) string {
	switch status {
	case models.CallStatusPending:
		return "bg-yellow-100 text-yellow-800"
	case models.CallStatusCompleted:
		return "bg-green-100 text-green-800"
	case models.CallStatusMissed:
		return "bg-red-100 text-red-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}

// tabClass styles a filter tab; the active look follows aria-current so the
// browser-side toggle only has to move that attribute
const tabClass = "px-4 py-2 rounded-lg font-medium transition-colors bg-gray-100 text-gray-600 hover:bg-gray-200 " +
	"aria-[current=page]:bg-blue-900 aria-[current=page]:text-white"

// plainNotes removes any markup that made it into the notes column and tidies whitespace
func plainNotes(notes string) string {
	text := notesPolicy.Sanitize(notes)
	// bluemonday re-escapes entities; undo that so the writer does not double-escape
	text = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&#34;", `"`, "&#39;", "'").Replace(text)
	return strings.Join(strings.Fields(text), " ")
}

// tabLabel is the button text for a selector
func tabLabel(s models.Selector) string {
	switch s {
	case models.SelectorPending:
		return "Pending"
	case models.SelectorCompleted:
		return "Completed"
	default:
		return "All"
	}
}
