package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"arbejdstid/internal/auth"
	"arbejdstid/internal/flash"
	"arbejdstid/internal/service"
)

// AuthHandler serves the landing page and the login/logout flow.
type AuthHandler struct {
	authService service.AuthService
	sessionTTL  time.Duration
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, sessionTTL: sessionTTL}
}

// LoginRequest is the login form. The length bounds match the original form
// validation.
type LoginRequest struct {
	Username string `form:"username" validate:"required,min=3,max=20"`
	Password string `form:"password" validate:"required,min=3,max=20"`
}

// Index renders the landing page.
func (h *AuthHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index", echo.Map{
		"Title": "Forside",
		"Flash": flash.Pop(c),
	})
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login", echo.Map{
		"Title": "Log ind",
		"Flash": flash.Pop(c),
	})
}

// Login authenticates the submitted credentials and establishes the session
// cookie. Every failure renders the same generic message.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.loginFailed(c)
	}
	if err := c.Validate(&req); err != nil {
		return h.loginFailed(c)
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.loginFailed(c)
	}

	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.sessionTTL),
	})
	return c.Redirect(http.StatusFound, "/dashboard")
}

func (h *AuthHandler) loginFailed(c echo.Context) error {
	return c.Render(http.StatusOK, "login", echo.Map{
		"Title": "Log ind",
		"Flash": &flash.Message{Category: "danger", Text: "Invalid username or password"},
	})
}

// Logout deletes the session record, expires the cookie and lands on the
// front page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if sessionID := SessionID(c); sessionID != "" {
		if err := h.authService.Logout(c.Request().Context(), sessionID); err != nil {
			c.Logger().Errorf("logout: %v", err)
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	return c.Redirect(http.StatusFound, "/")
}
