package handlers

import (
	"net/http"

	"recall/middleware"
	"recall/templates/pages"

	"github.com/labstack/echo/v4"
)

// LandingHandler handles the landing page request
func LandingHandler(c echo.Context) error {
	csrfToken := middleware.GetCSRFToken(c)
	component := pages.Landing(c.Request().Context(), "Recall - Never Miss a Call Again", csrfToken)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// HealthHandler reports liveness. It does not touch the call source.
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
