package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const cartCookieName = "cart_token"

// cartToken returns the caller's cart token, minting a new one and setting
// the cookie when the request carries none. The token is opaque; no account
// is attached to it.
func cartToken(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(cartCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	token := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cartCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(180 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token
}
