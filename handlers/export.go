package handlers

import (
	"fmt"
	"net/http"
	"time"

	"recall/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ExportCallsHandler downloads the list for ?tab= as an xlsx workbook
func ExportCallsHandler(c echo.Context) error {
	selector := services.ParseSelector(c.QueryParam("tab"))
	snap := services.LoadDashboard(c.Request().Context(), services.Calls, selector)

	buf, err := services.ExportCallsXLSX(snap.Visible, snap.Stats)
	if err != nil {
		zap.L().Error("failed to export calls", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate export")
	}

	filename := fmt.Sprintf("callbacks_%s_%s.xlsx", selector, time.Now().Format("20060102"))
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+filename)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
