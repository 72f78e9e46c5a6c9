package handlers

import (
	"recall/services"
	"recall/templates/partials"

	"github.com/labstack/echo/v4"
)

// DashboardCallsHTMX returns the stats and the full call list as an HTMX partial, with
// ?tab= selecting the tab shown first. The dashboard loads it once per view and tabs
// switch in the browser. A failed fetch renders as an empty table.
func DashboardCallsHTMX(c echo.Context) error {
	ctx := c.Request().Context()
	selector := services.ParseSelector(c.QueryParam("tab"))

	snap := services.LoadDashboard(ctx, services.Calls, selector)

	component := partials.CallsFragment(snap)
	return component.Render(ctx, c.Response().Writer)
}
