package handlers

import (
	"net/http"

	"recall/models"
	"recall/services"

	"github.com/labstack/echo/v4"
)

// CallsResponse is the JSON shape of GET /api/calls
type CallsResponse struct {
	Selector models.Selector       `json:"selector"`
	Calls    []models.CallLog      `json:"calls"`
	Stats    models.DashboardStats `json:"stats"`
}

// CallsAPIHandler returns the mapped calls filtered by ?status= along with the counters
func CallsAPIHandler(c echo.Context) error {
	selector := services.ParseSelector(c.QueryParam("status"))
	snap := services.LoadDashboard(c.Request().Context(), services.Calls, selector)

	return c.JSON(http.StatusOK, CallsResponse{
		Selector: snap.Selector,
		Calls:    snap.Visible,
		Stats:    snap.Stats,
	})
}
