package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"arbejdstid/internal/flash"
	"arbejdstid/internal/model"
	"arbejdstid/internal/service"
)

// MockScheduleService is a mock implementation of service.ScheduleService.
type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) Submit(ctx context.Context, userID uint, in service.SubmitInput) (*model.ChangeRequest, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChangeRequest), args.Error(1)
}

func (m *MockScheduleService) List(ctx context.Context, userID uint) ([]model.ChangeRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChangeRequest), args.Error(1)
}

func (m *MockScheduleService) Delete(ctx context.Context, id, callerID uint) error {
	args := m.Called(ctx, id, callerID)
	return args.Error(0)
}

// MockHoursService is a mock implementation of service.HoursService.
type MockHoursService struct {
	mock.Mock
}

func (m *MockHoursService) WorkHours(ctx context.Context, period string, userID uint) ([]service.DisplayRecord, error) {
	args := m.Called(ctx, period, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.DisplayRecord), args.Error(1)
}

func (m *MockHoursService) Today() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func withIdentity(c echo.Context, user *model.User) {
	c.Set(IdentityKey, user)
	c.Set(SessionIDKey, "session-id")
}

// captureRenderer records the template name and data passed to Render so
// handler tests can assert on the page model without executing templates.
type captureRenderer struct {
	name string
	data echo.Map
}

func (r *captureRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	r.name = name
	r.data, _ = data.(echo.Map)
	return nil
}

// queuedFlash decodes the flash cookie set on the recorded response.
func queuedFlash(t *testing.T, rec *httptest.ResponseRecorder) *flash.Message {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name != "flash" || cookie.Value == "" {
			continue
		}
		payload, err := base64.URLEncoding.DecodeString(cookie.Value)
		assert.NoError(t, err)
		var msg flash.Message
		assert.NoError(t, json.Unmarshal(payload, &msg))
		return &msg
	}
	return nil
}

func TestScheduleHandler_SkemaRejectsOtherUsers(t *testing.T) {
	e := newTestEcho()
	mockSchedule := new(MockScheduleService)
	h := NewScheduleHandler(mockSchedule)

	req := httptest.NewRequest(http.MethodGet, "/Skema/someone-else", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/Skema/:user")
	c.SetParamNames("user")
	c.SetParamValues("someone-else")
	withIdentity(c, &model.User{ID: 7, Username: "nina"})

	assert.NoError(t, h.Skema(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
	// No data is fetched for the refused page.
	mockSchedule.AssertNotCalled(t, "List", mock.Anything, mock.Anything)

	msg := queuedFlash(t, rec)
	if assert.NotNil(t, msg) {
		assert.Equal(t, "danger", msg.Category)
		assert.Equal(t, "You do not have permission to view this page.", msg.Text)
	}
}

func TestDashboardHandler_SubmitMissingEnd(t *testing.T) {
	e := newTestEcho()
	mockSchedule := new(MockScheduleService)
	h := NewDashboardHandler(new(MockHoursService), mockSchedule)

	form := url.Values{}
	form.Set("date", "2024-03-15")
	form.Set("start", "08:00")
	// end deliberately absent

	req := httptest.NewRequest(http.MethodPost, "/dashboard", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withIdentity(c, &model.User{ID: 7, Username: "nina"})

	assert.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
	// Validation failed at the boundary: nothing reached the service.
	mockSchedule.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
	assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), "flash=")
}

func TestDashboardHandler_SubmitValid(t *testing.T) {
	e := newTestEcho()
	mockSchedule := new(MockScheduleService)
	expected := service.SubmitInput{Date: "2024-03-15", Start: "08:00", End: "16:00", PauseStart: "12:00", PauseEnd: "12:30"}
	mockSchedule.On("Submit", mock.Anything, uint(7), expected).
		Return(&model.ChangeRequest{ID: 1, UserID: 7}, nil)
	h := NewDashboardHandler(new(MockHoursService), mockSchedule)

	form := url.Values{}
	form.Set("date", "2024-03-15")
	form.Set("start", "08:00")
	form.Set("end", "16:00")
	form.Set("pause_start", "12:00")
	form.Set("pause_end", "12:30")

	req := httptest.NewRequest(http.MethodPost, "/dashboard", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withIdentity(c, &model.User{ID: 7, Username: "nina"})

	assert.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
	mockSchedule.AssertExpectations(t)
}

func TestDashboardHandler_SubmitBackendFailure(t *testing.T) {
	e := newTestEcho()
	mockSchedule := new(MockScheduleService)
	mockSchedule.On("Submit", mock.Anything, uint(7), mock.Anything).
		Return(nil, assert.AnError)
	h := NewDashboardHandler(new(MockHoursService), mockSchedule)

	form := url.Values{}
	form.Set("date", "2024-03-15")
	form.Set("start", "08:00")
	form.Set("end", "16:00")

	req := httptest.NewRequest(http.MethodPost, "/dashboard", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withIdentity(c, &model.User{ID: 7, Username: "nina"})

	assert.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))

	// A storage failure is not a validation problem and must not be
	// reported as one.
	msg := queuedFlash(t, rec)
	if assert.NotNil(t, msg) {
		assert.Equal(t, "danger", msg.Category)
		assert.Equal(t, "Failed to add record", msg.Text)
	}
	mockSchedule.AssertExpectations(t)
}

func TestHoursHandler_WorkHoursNarrowsDayAndWeek(t *testing.T) {
	e := newTestEcho()
	renderer := &captureRenderer{}
	e.Renderer = renderer

	// Friday 2024-03-15; this week runs Monday the 11th through Sunday the 17th.
	today := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	mockHours := new(MockHoursService)
	mockHours.On("Today").Return(today)
	mockHours.On("WorkHours", mock.Anything, "day", uint(7)).Return([]service.DisplayRecord{
		{ID: 1, Date: "15-03-2024"},
		{ID: 2, Date: "14-03-2024"}, // over-fetched, not today
	}, nil)
	mockHours.On("WorkHours", mock.Anything, "week", uint(7)).Return([]service.DisplayRecord{
		{ID: 3, Date: "11-03-2024"},
		{ID: 4, Date: "17-03-2024"},
		{ID: 5, Date: "18-03-2024"}, // next Monday, outside the window
	}, nil)
	mockHours.On("WorkHours", mock.Anything, "month", uint(7)).Return([]service.DisplayRecord{
		{ID: 6, Date: "01-03-2024"},
		{ID: 7, Date: "31-03-2024"},
	}, nil)
	h := NewHoursHandler(mockHours)

	req := httptest.NewRequest(http.MethodGet, "/arbejdstider/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/arbejdstider/:user_id")
	c.SetParamNames("user_id")
	c.SetParamValues("7")
	withIdentity(c, &model.User{ID: 7, Username: "nina"})

	assert.NoError(t, h.WorkHours(c))
	assert.Equal(t, "work_hours", renderer.name)

	daily, ok := renderer.data["Daily"].([]service.DisplayRecord)
	if assert.True(t, ok) && assert.Len(t, daily, 1) {
		assert.Equal(t, uint(1), daily[0].ID)
	}
	weekly, ok := renderer.data["Weekly"].([]service.DisplayRecord)
	if assert.True(t, ok) && assert.Len(t, weekly, 2) {
		assert.Equal(t, uint(3), weekly[0].ID)
		assert.Equal(t, uint(4), weekly[1].ID)
	}
	// The monthly view is served as fetched.
	monthly, ok := renderer.data["Monthly"].([]service.DisplayRecord)
	if assert.True(t, ok) {
		assert.Len(t, monthly, 2)
	}
	mockHours.AssertExpectations(t)
}

func TestScheduleHandler_Delete(t *testing.T) {
	e := newTestEcho()
	mockSchedule := new(MockScheduleService)
	mockSchedule.On("Delete", mock.Anything, uint(42), uint(7)).Return(nil)
	h := NewScheduleHandler(mockSchedule)

	req := httptest.NewRequest(http.MethodPost, "/delete/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/delete/:entry_id")
	c.SetParamNames("entry_id")
	c.SetParamValues("42")
	withIdentity(c, &model.User{ID: 7, Username: "nina"})

	assert.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
	mockSchedule.AssertExpectations(t)
}

func TestScheduleHandler_DeleteInvalidID(t *testing.T) {
	e := newTestEcho()
	mockSchedule := new(MockScheduleService)
	h := NewScheduleHandler(mockSchedule)

	req := httptest.NewRequest(http.MethodPost, "/delete/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/delete/:entry_id")
	c.SetParamNames("entry_id")
	c.SetParamValues("abc")
	withIdentity(c, &model.User{ID: 7, Username: "nina"})

	assert.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	mockSchedule.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
