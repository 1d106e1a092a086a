package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"arbejdstid/internal/model"
	"arbejdstid/internal/service"
)

// APIHandler mirrors the aggregation views as JSON for scripted access.
type APIHandler struct {
	hours    service.HoursService
	schedule service.ScheduleService
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(hours service.HoursService, schedule service.ScheduleService) *APIHandler {
	return &APIHandler{hours: hours, schedule: schedule}
}

// HoursResponse is the aggregation payload.
type HoursResponse struct {
	Period  string                  `json:"period"`
	Records []service.DisplayRecord `json:"records"`
	Total   decimal.Decimal         `json:"total"`
}

// Hours godoc
// @Summary Aggregated work hours for the current user
// @Description Returns work records for the given period (day, week or month) with dates in DD-MM-YYYY form. Unknown periods yield an empty list.
// @Tags hours
// @Produce json
// @Param period path string true "Period keyword" Enums(day, week, month)
// @Success 200 {object} HoursResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /hours/{period} [get]
func (h *APIHandler) Hours(c echo.Context) error {
	user := CurrentUser(c)

	records, err := h.hours.WorkHours(c.Request().Context(), c.Param("period"), user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load work hours")
	}

	return c.JSON(http.StatusOK, HoursResponse{
		Period:  c.Param("period"),
		Records: records,
		Total:   service.Total(records),
	})
}

// Changes godoc
// @Summary Change requests of the current user
// @Tags changes
// @Produce json
// @Success 200 {array} model.ChangeRequest
// @Failure 401 {object} errors.ErrorResponse
// @Router /changes [get]
func (h *APIHandler) Changes(c echo.Context) error {
	user := CurrentUser(c)

	changes, err := h.schedule.List(c.Request().Context(), user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load change requests")
	}
	if changes == nil {
		changes = []model.ChangeRequest{}
	}
	return c.JSON(http.StatusOK, changes)
}
