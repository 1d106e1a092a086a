package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"arbejdstid/internal/flash"
	"arbejdstid/internal/service"
)

// HoursHandler serves the aggregated day/week/month work-hours page.
type HoursHandler struct {
	hours service.HoursService
}

// NewHoursHandler creates a new hours handler.
func NewHoursHandler(hours service.HoursService) *HoursHandler {
	return &HoursHandler{hours: hours}
}

// WorkHours renders the three aggregation tables for a user id. The
// aggregator over-fetches by period range; the day and week views are then
// narrowed a second time against today's date, which is the contract the
// page has always had.
func (h *HoursHandler) WorkHours(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	ctx := c.Request().Context()
	daily, err := h.hours.WorkHours(ctx, "day", uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load work hours")
	}
	weekly, err := h.hours.WorkHours(ctx, "week", uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load work hours")
	}
	monthly, err := h.hours.WorkHours(ctx, "month", uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load work hours")
	}

	today := h.hours.Today()
	todayDisplay := today.Format(service.DisplayDateLayout)
	weekStart, weekEnd, _ := service.PeriodRange("week", today)

	dailyToday := make([]service.DisplayRecord, 0, len(daily))
	for _, rec := range daily {
		if rec.Date == todayDisplay {
			dailyToday = append(dailyToday, rec)
		}
	}

	weeklyThisWeek := make([]service.DisplayRecord, 0, len(weekly))
	for _, rec := range weekly {
		date, err := service.ParseDisplayDate(rec.Date)
		if err != nil {
			continue
		}
		if !date.Before(weekStart) && !date.After(weekEnd) {
			weeklyThisWeek = append(weeklyThisWeek, rec)
		}
	}

	return c.Render(http.StatusOK, "work_hours", echo.Map{
		"Title":        "Arbejdstider",
		"User":         CurrentUser(c),
		"Flash":        flash.Pop(c),
		"Daily":        dailyToday,
		"DailyTotal":   service.Total(dailyToday),
		"Weekly":       weeklyThisWeek,
		"WeeklyTotal":  service.Total(weeklyThisWeek),
		"Monthly":      monthly,
		"MonthlyTotal": service.Total(monthly),
	})
}
