package auth

import (
	"errors"
	"net/http"
	"time"
	"watchmarket_server/handling"
	"watchmarket_server/lib"
	"watchmarket_server/structs"

	"github.com/MonkyMars/gecho"
)

// loginFailureMessage maps service errors to what the login form shows
func loginFailureMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, lib.ErrInvalidEmail):
		return "Please enter a valid email address", true
	case errors.Is(err, lib.ErrInvalidPhone):
		return "Please enter a valid phone number", true
	case errors.Is(err, lib.ErrPasswordRequired):
		return "Please enter your password", true
	case errors.Is(err, lib.ErrInvalidCredentials):
		return "Password must be at least 6 characters", true
	}
	return "", false
}

func (ar *AuthRoutesManager) respondWithSession(w http.ResponseWriter, resp *structs.AuthResponse, message string) {
	lib.SetCookie(lib.SessionCookieName, resp.Token, time.Now().Add(ar.authService.TokenExpiry()), w)

	gecho.Success(w,
		gecho.WithMessage(message),
		gecho.WithData(resp),
		gecho.Send(),
	)
}

func (ar *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LoginRequest](r)
	if err != nil {
		handling.HandleBodyError(err, "Please check your login information and try again", ar.logger, w)
		return
	}

	resp, err := ar.authService.Login(r.Context(), body.Identifier, body.Password)
	if err != nil {
		if msg, ok := loginFailureMessage(err); ok {
			ar.logger.Debug("Login rejected", gecho.Field("error", err))
			gecho.BadRequest(w, gecho.WithMessage(msg), gecho.Send())
			return
		}
		handling.HandleError(err, "Unable to complete login. Please try again", ar.logger, w)
		return
	}

	ar.respondWithSession(w, resp, "Login successful")
}

func (ar *AuthRoutesManager) HandleSignup(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.SignupRequest](r)
	if err != nil {
		handling.HandleBodyError(err, "Please check your details and try again", ar.logger, w)
		return
	}

	resp, err := ar.authService.Signup(r.Context(), body)
	if err != nil {
		if msg, ok := loginFailureMessage(err); ok {
			ar.logger.Debug("Signup rejected", gecho.Field("error", err))
			gecho.BadRequest(w, gecho.WithMessage(msg), gecho.Send())
			return
		}
		handling.HandleError(err, "Unable to create account. Please try again", ar.logger, w)
		return
	}

	ar.respondWithSession(w, resp, "Account created successfully")
}

func (ar *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ar.authService.Logout(r.Context())
	lib.ClearCookie(lib.SessionCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out successfully"),
		gecho.Send(),
	)
}
