// Package flash implements one-shot messages carried in a short-lived cookie,
// set on one response and cleared when the next page renders.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const cookieName = "flash"

// Message is a single flash with a display category.
type Message struct {
	Category string `json:"category"` // "success", "danger", "warning"
	Text     string `json:"text"`
}

// Set queues a flash message for the next rendered page.
func Set(c echo.Context, category, text string) {
	payload, err := json.Marshal(Message{Category: category, Text: text})
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    base64.URLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
	})
}

// Pop returns the pending flash message, if any, and clears it.
func Pop(c echo.Context) *Message {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})

	payload, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil
	}
	return &msg
}
