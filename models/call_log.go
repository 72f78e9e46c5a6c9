package models

// CallStatus is the lifecycle state shown on a callback
type CallStatus string

// Call status constants
const (
	CallStatusPending   CallStatus = "pending"
	CallStatusCompleted CallStatus = "completed"
	CallStatusMissed    CallStatus = "missed"
)

// Selector is the dashboard tab used to filter callbacks
type Selector string

// Selector constants
const (
	SelectorAll       Selector = "all"
	SelectorPending   Selector = "pending"
	SelectorCompleted Selector = "completed"
)

// Selectors lists the dashboard tabs in display order
var Selectors = []Selector{SelectorAll, SelectorPending, SelectorCompleted}

// CallLog is the normalized view of one callback record
type CallLog struct {
	ID            int64      `json:"id"`
	CallerName    string     `json:"callerName"`
	CallerPhone   string     `json:"callerPhone"`
	ScheduledTime string     `json:"scheduledTime"`
	Status        CallStatus `json:"status"`
	Summary       string     `json:"summary"`
	Duration      *string    `json:"duration,omitempty"`
}

// DashboardStats holds the counters shown above the callback list
type DashboardStats struct {
	Total       int    `json:"total"`
	Pending     int    `json:"pending"`
	Completed   int    `json:"completed"`
	AvgDuration string `json:"avgDuration"`
}
