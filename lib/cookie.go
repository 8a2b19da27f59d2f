package lib

import (
	"net/http"
	"time"
	"watchmarket_server/config"
)

const SessionCookieName = "session"

// SetCookie sets a secure, HttpOnly cookie for session usage
func SetCookie(key, val string, expiry time.Time, w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     key,
		Value:    val,
		Expires:  expiry,
		Path:     "/",
		Secure:   config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
	})
}

func GetCookieValue(key string, r *http.Request) (string, error) {
	cookie, err := r.Cookie(key)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// ClearCookie removes the cookie from the browser
func ClearCookie(key string, w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		Secure:   config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
	})
}
