package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"recall/models"
	"recall/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Organizer written into downloaded .ics files
var (
	CalendarOrganizerName  = "Recall"
	CalendarOrganizerEmail = "callbacks@recall.app"
)

// CallbackCalendarRedirectHandler sends the browser to the calendar service with the
// callback pre-filled. The dashboard links to the calendar service directly; this route
// serves bookmarked or shared links and looks the call up in a fresh fetch.
func CallbackCalendarRedirectHandler(c echo.Context) error {
	call, err := lookupCall(c)
	if err != nil {
		return err
	}

	link, err := services.BuildCalendarLink(call)
	if err != nil {
		if errors.Is(err, services.ErrNoScheduledTime) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, services.NoDateLabel)
		}
		return err
	}

	return c.Redirect(http.StatusFound, link)
}

// CallbackICSHandler downloads the callback as an iCalendar event
func CallbackICSHandler(c echo.Context) error {
	call, err := lookupCall(c)
	if err != nil {
		return err
	}

	icsContent, err := services.GenerateCallbackICS(call, CalendarOrganizerName, CalendarOrganizerEmail)
	if err != nil {
		if errors.Is(err, services.ErrNoScheduledTime) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, services.NoDateLabel)
		}
		return err
	}

	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=callback_%d.ics", call.ID))
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", icsContent)
}

// lookupCall resolves :id against a fresh fetch of the table
func lookupCall(c echo.Context) (models.CallLog, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return models.CallLog{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid call ID")
	}

	calls := services.LoadCalls(c.Request().Context(), services.Calls)
	call, ok := services.FindCall(calls, id)
	if !ok {
		zap.L().Debug("call not found", zap.Int64("call_id", id))
		return models.CallLog{}, echo.NewHTTPError(http.StatusNotFound, "Call not found")
	}
	return call, nil
}
