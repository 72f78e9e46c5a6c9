package handlers

import (
	"recall/middleware"
	"recall/services"
	"recall/templates/pages"

	"github.com/labstack/echo/v4"
)

// DashboardHandler renders the dashboard shell. The call list itself is loaded
// by DashboardCallsHTMX once the page is in the browser.
func DashboardHandler(c echo.Context) error {
	vm := pages.DashboardViewModel{
		Title:     "Dashboard | Recall",
		CSRFToken: middleware.GetCSRFToken(c),
		Selector:  services.ParseSelector(c.QueryParam("tab")),
	}

	component := pages.Dashboard(c.Request().Context(), vm)
	return component.Render(c.Request().Context(), c.Response().Writer)
}
