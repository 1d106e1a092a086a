package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "arbejdstid/internal/errors"
	"arbejdstid/internal/flash"
	"arbejdstid/internal/service"
)

// ScheduleHandler serves the per-user change-request log and deletion.
type ScheduleHandler struct {
	schedule service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(schedule service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

// Skema renders the caller's change-request log. The route carries a
// username, but only the caller's own page is ever served; anyone else's is
// a refusal flash and a redirect, with no data fetched.
func (h *ScheduleHandler) Skema(c echo.Context) error {
	user := CurrentUser(c)

	if c.Param("user") != user.Username {
		flash.Set(c, "danger", "You do not have permission to view this page.")
		return c.Redirect(http.StatusFound, "/dashboard")
	}

	changes, err := h.schedule.List(c.Request().Context(), user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load change requests")
	}

	return c.Render(http.StatusOK, "skema", echo.Map{
		"Title":   "Skema",
		"User":    user,
		"Flash":   flash.Pop(c),
		"Changes": changes,
	})
}

// Delete removes a change request by id and returns to the dashboard.
func (h *ScheduleHandler) Delete(c echo.Context) error {
	user := CurrentUser(c)

	id, err := strconv.ParseUint(c.Param("entry_id"), 10, 32)
	if err != nil {
		flash.Set(c, "danger", "Invalid record id")
		return c.Redirect(http.StatusFound, "/dashboard")
	}

	if err := h.schedule.Delete(c.Request().Context(), uint(id), user.ID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotOwner):
			flash.Set(c, "danger", "You do not have permission to delete this record.")
		case errors.Is(err, apperrors.ErrNotFound):
			flash.Set(c, "danger", "Record not found")
		default:
			flash.Set(c, "danger", "Failed to remove record")
		}
		return c.Redirect(http.StatusFound, "/dashboard")
	}

	flash.Set(c, "danger", "Record removed")
	return c.Redirect(http.StatusFound, "/dashboard")
}
