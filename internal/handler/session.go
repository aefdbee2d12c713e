package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	cartSessionHeader = "X-Cart-Session"
	cartSessionCookie = "cart_session"
	cartSessionTTL    = 30 * 24 * time.Hour
)

// cartProfile resolves the cart profile for this request. The header
// wins over the cookie so API clients can pin a profile explicitly; a
// browser without either gets a fresh one minted and set as a cookie.
func cartProfile(c echo.Context) string {
	if v := c.Request().Header.Get(cartSessionHeader); v != "" {
		return v
	}

	if ck, err := c.Cookie(cartSessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}

	profile := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     cartSessionCookie,
		Value:    profile,
		Path:     "/",
		Expires:  time.Now().Add(cartSessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return profile
}
