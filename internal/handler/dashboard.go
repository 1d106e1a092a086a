package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "arbejdstid/internal/errors"
	"arbejdstid/internal/flash"
	"arbejdstid/internal/service"
)

// DashboardHandler serves the dashboard: today's hours plus the
// change-request submission form.
type DashboardHandler struct {
	hours    service.HoursService
	schedule service.ScheduleService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(hours service.HoursService, schedule service.ScheduleService) *DashboardHandler {
	return &DashboardHandler{hours: hours, schedule: schedule}
}

// ChangeRequestForm is the dashboard submission form. Date, start and end
// are required; the pause fields are optional.
type ChangeRequestForm struct {
	Date       string `form:"date" validate:"required"`
	Start      string `form:"start" validate:"required"`
	End        string `form:"end" validate:"required"`
	PauseStart string `form:"pause_start" validate:"omitempty"`
	PauseEnd   string `form:"pause_end" validate:"omitempty"`
}

// Show renders the dashboard with today's work records.
func (h *DashboardHandler) Show(c echo.Context) error {
	user := CurrentUser(c)

	records, err := h.hours.WorkHours(c.Request().Context(), "day", user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load work hours")
	}

	today := h.hours.Today()
	return c.Render(http.StatusOK, "dashboard", echo.Map{
		"Title":        "Dashboard",
		"User":         user,
		"Flash":        flash.Pop(c),
		"Records":      records,
		"Total":        service.Total(records),
		"TodayDisplay": today.Format(service.DisplayDateLayout),
		"TodayInput":   today.Format("2006-01-02"),
	})
}

// Submit stores a change request from the dashboard form. A missing required
// field flashes a validation message and writes nothing.
func (h *DashboardHandler) Submit(c echo.Context) error {
	user := CurrentUser(c)

	var form ChangeRequestForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, "danger", "All fields for work hours are required")
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	if err := c.Validate(&form); err != nil {
		flash.Set(c, "danger", "All fields for work hours are required")
		return c.Redirect(http.StatusFound, "/dashboard")
	}

	_, err := h.schedule.Submit(c.Request().Context(), user.ID, service.SubmitInput{
		Date:       form.Date,
		Start:      form.Start,
		End:        form.End,
		PauseStart: form.PauseStart,
		PauseEnd:   form.PauseEnd,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrMissingFields) {
			flash.Set(c, "danger", "All fields for work hours are required")
		} else {
			flash.Set(c, "danger", "Failed to add record")
		}
		return c.Redirect(http.StatusFound, "/dashboard")
	}

	flash.Set(c, "success", "Record added")
	return c.Redirect(http.StatusFound, "/dashboard")
}
