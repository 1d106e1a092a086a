package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"arbejdstid/internal/model"
	"arbejdstid/internal/repository"
)

const (
	storedDateLayout  = "2006-01-02"
	DisplayDateLayout = "02-01-2006"
)

// DisplayRecord is a work record prepared for rendering: the date rewritten
// to DD-MM-YYYY, every other field passed through, plus the worked hours for
// that day.
type DisplayRecord struct {
	ID         uint            `json:"id"`
	Date       string          `json:"date"`
	Start      string          `json:"start"`
	End        string          `json:"end"`
	BreakStart string          `json:"break_start,omitempty"`
	BreakEnd   string          `json:"break_end,omitempty"`
	TimeChange string          `json:"time_change,omitempty"`
	UserID     uint            `json:"user_id"`
	Hours      decimal.Decimal `json:"hours"`
}

// HoursService aggregates work records over a coarse period anchored on
// today.
type HoursService interface {
	WorkHours(ctx context.Context, period string, userID uint) ([]DisplayRecord, error)
	Today() time.Time
}

type hoursService struct {
	recordRepo repository.WorkRecordRepository
	now        func() time.Time
}

// NewHoursService creates a new period aggregator.
func NewHoursService(recordRepo repository.WorkRecordRepository) HoursService {
	return &hoursService{recordRepo: recordRepo, now: time.Now}
}

// Today returns the current calendar date, midnight local time.
func (s *hoursService) Today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// PeriodRange resolves a period keyword to an inclusive date range anchored
// on today. Reports ok=false for unknown periods.
//
// Week is ISO, Monday-start. For December the month end is set to the 31st
// directly instead of rolling back from the next month; every other month is
// computed as first-of-next-month minus one day.
func PeriodRange(period string, today time.Time) (start, end time.Time, ok bool) {
	switch period {
	case "day":
		return today, today, true
	case "week":
		offset := (int(today.Weekday()) + 6) % 7 // days since Monday
		start = today.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6), true
	case "month":
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		if start.Month() == time.December {
			end = time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, today.Location())
		} else {
			end = time.Date(today.Year(), start.Month()+1, 1, 0, 0, 0, 0, today.Location()).AddDate(0, 0, -1)
		}
		return start, end, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// WorkHours fetches the user's records whose date falls inside the period's
// inclusive range and reformats each date for display. Unknown periods yield
// an empty result without error. Stored dates are parsed to real calendar
// dates before comparison; a trailing time-of-day component is ignored.
func (s *hoursService) WorkHours(ctx context.Context, period string, userID uint) ([]DisplayRecord, error) {
	start, end, ok := PeriodRange(period, s.Today())
	if !ok {
		return []DisplayRecord{}, nil
	}

	records, err := s.recordRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]DisplayRecord, 0, len(records))
	for _, rec := range records {
		date, err := ParseStoredDate(rec.Date)
		if err != nil {
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}
		result = append(result, toDisplay(rec, date))
	}
	return result, nil
}

// ParseStoredDate parses a stored date string, dropping any time-of-day
// component ("2024-03-05 00:00:00" and "2024-03-05" both parse to March 5).
func ParseStoredDate(stored string) (time.Time, error) {
	datePart, _, _ := strings.Cut(stored, " ")
	return time.ParseInLocation(storedDateLayout, datePart, time.Local)
}

// ParseDisplayDate parses a DD-MM-YYYY display date back to a calendar date.
func ParseDisplayDate(display string) (time.Time, error) {
	return time.ParseInLocation(DisplayDateLayout, display, time.Local)
}

// Total sums the worked hours of the given records.
func Total(records []DisplayRecord) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(rec.Hours)
	}
	return total
}

func toDisplay(rec model.WorkRecord, date time.Time) DisplayRecord {
	return DisplayRecord{
		ID:         rec.ID,
		Date:       date.Format(DisplayDateLayout),
		Start:      rec.Start,
		End:        rec.End,
		BreakStart: rec.BreakStart,
		BreakEnd:   rec.BreakEnd,
		TimeChange: rec.TimeChange,
		UserID:     rec.UserID,
		Hours:      workedHours(rec),
	}
}

// workedHours computes end minus start, less the break when both break
// bounds are present. Unparseable clock values count as zero hours rather
// than failing the whole page.
func workedHours(rec model.WorkRecord) decimal.Decimal {
	worked, ok := clockSpan(rec.Start, rec.End)
	if !ok {
		return decimal.Zero
	}
	if rec.BreakStart != "" && rec.BreakEnd != "" {
		if pause, ok := clockSpan(rec.BreakStart, rec.BreakEnd); ok {
			worked -= pause
		}
	}
	if worked < 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(worked.Minutes())).Div(decimal.NewFromInt(60)).Round(2)
}

func clockSpan(from, to string) (time.Duration, bool) {
	start, err := parseClock(from)
	if err != nil {
		return 0, false
	}
	end, err := parseClock(to)
	if err != nil {
		return 0, false
	}
	return end.Sub(start), true
}

func parseClock(value string) (time.Time, error) {
	t, err := time.Parse("15:04:05", value)
	if err != nil {
		t, err = time.Parse("15:04", value)
	}
	return t, err
}
