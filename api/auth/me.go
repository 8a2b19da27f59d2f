package auth

import (
	"errors"
	"net/http"
	"watchmarket_server/api/middleware"
	"watchmarket_server/handling"
	"watchmarket_server/lib"
	"watchmarket_server/services"
	"watchmarket_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleStatus reports the session state without requiring one
func (ar *AuthRoutesManager) HandleStatus(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"isLoggedIn": ar.authService.IsLoggedIn(),
			"isLoading":  ar.authService.IsLoading(),
			"user":       ar.authService.CurrentUser(),
		}),
		gecho.Send(),
	)
}

func (ar *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("You must be logged in"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(user),
		gecho.Send(),
	)
}

func (ar *AuthRoutesManager) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("You must be logged in"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateProfileRequest](r)
	if err != nil {
		handling.HandleBodyError(err, "Please check your profile information and try again", ar.logger, w)
		return
	}

	updated, err := ar.authService.UpdateUserProfile(r.Context(), user.Id, body)
	switch {
	case errors.Is(err, lib.ErrNotLoggedIn):
		gecho.Unauthorized(w, gecho.WithMessage("You must be logged in"), gecho.Send())
		return
	case errors.Is(err, lib.ErrInvalidPhone):
		gecho.BadRequest(w, gecho.WithMessage("Please enter a valid phone number"), gecho.Send())
		return
	case err != nil:
		handling.HandleError(err, "Unable to update profile. Please try again", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Profile updated successfully"),
		gecho.WithData(updated),
		gecho.Send(),
	)
}

func (ar *AuthRoutesManager) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	body, err := lib.DecodeBody[structs.ForgotPasswordRequest](r)
	if err != nil {
		handling.HandleBodyError(err, "Please enter your email address", ar.logger, w)
		return
	}

	if err := ar.emailService.ForgotPassword(body.Email); err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please enter a valid email address"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage(services.ForgotPasswordMessage),
		gecho.Send(),
	)
}
