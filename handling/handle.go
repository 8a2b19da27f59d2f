package handling

import (
	"errors"
	"net/http"
	"watchmarket_server/lib"

	"github.com/MonkyMars/gecho"
)

func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) error {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	return gecho.InternalServerError(w, gecho.WithMessage(msg)).Send()
}

// HandleBodyError answers a failed body decode or validation
func HandleBodyError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) error {
	var ve *lib.ValidationError
	if errors.As(err, &ve) {
		logger.Debug("Request validation failed", gecho.Field("errors", ve.Errors))
		return gecho.BadRequest(w, gecho.WithMessage(msg), gecho.WithData(ve)).Send()
	}

	logger.Debug("Failed to decode request body", gecho.Field("error", err))
	return gecho.BadRequest(w, gecho.WithMessage(msg)).Send()
}
