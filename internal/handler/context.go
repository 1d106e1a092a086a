package handler

import (
	"github.com/labstack/echo/v4"

	"arbejdstid/internal/model"
)

const (
	// IdentityKey is the context key under which the guard middleware
	// stores the resolved user.
	IdentityKey = "identity"
	// SessionIDKey is the context key for the current session id.
	SessionIDKey = "session_id"
)

// CurrentUser returns the authenticated user for the request, or nil on
// public routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(IdentityKey).(*model.User)
	return user
}

// SessionID returns the current session id, or "" on public routes.
func SessionID(c echo.Context) string {
	id, _ := c.Get(SessionIDKey).(string)
	return id
}
