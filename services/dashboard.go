package services

import (
	"context"

	"recall/models"

	"go.uber.org/zap"
)

// DashboardSnapshot is everything the dashboard renders from one fetch
type DashboardSnapshot struct {
	Selector models.Selector
	All      []models.CallLog // every mapped call, source order
	Visible  []models.CallLog // All filtered by Selector
	Stats    models.DashboardStats
}

// LoadCalls fetches and maps every call. A failed fetch is logged and treated as
// an empty table; callers never see the error.
func LoadCalls(ctx context.Context, source CallSource) []models.CallLog {
	if source == nil {
		zap.L().Warn("call source not configured, showing no calls")
		return []models.CallLog{}
	}

	rows, err := source.FetchCalls(ctx)
	if err != nil {
		zap.L().Warn("failed to fetch call history", zap.Error(err))
		return []models.CallLog{}
	}

	return MapCallRows(rows)
}

// LoadDashboard fetches the calls once and derives the view for the selected tab
func LoadDashboard(ctx context.Context, source CallSource, selector models.Selector) DashboardSnapshot {
	calls := LoadCalls(ctx, source)
	return NewDashboardSnapshot(calls, selector)
}

// NewDashboardSnapshot derives the filtered list and counters from an already mapped set
func NewDashboardSnapshot(calls []models.CallLog, selector models.Selector) DashboardSnapshot {
	return DashboardSnapshot{
		Selector: selector,
		All:      calls,
		Visible:  FilterCalls(calls, selector),
		Stats:    ComputeStats(calls),
	}
}
