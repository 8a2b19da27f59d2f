package settings

import (
	"errors"
	"net/http"
	"strconv"
	"watchmarket_server/handling"
	"watchmarket_server/lib"
	"watchmarket_server/services"
	"watchmarket_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type SettingsRoutesManager struct {
	logger       *gecho.Logger
	themeService *services.ThemeService
}

func NewSettingsRoutesManager(logger *gecho.Logger, themeService *services.ThemeService) *SettingsRoutesManager {
	return &SettingsRoutesManager{
		logger:       logger,
		themeService: themeService,
	}
}

func (srm *SettingsRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/theme", srm.GetTheme)
		r.Put("/theme", srm.UpdateTheme)
	})
}

// GetTheme resolves the palette; ?system_dark=true stands in for the device appearance
func (srm *SettingsRoutesManager) GetTheme(w http.ResponseWriter, r *http.Request) {
	systemDark := false
	if raw := r.URL.Query().Get("system_dark"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			gecho.BadRequest(w, gecho.WithMessage("system_dark must be true or false"), gecho.Send())
			return
		}
		systemDark = parsed
	}

	gecho.Success(w,
		gecho.WithData(srm.themeService.Current(systemDark)),
		gecho.Send(),
	)
}

func (srm *SettingsRoutesManager) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.UpdateThemeRequest](r)
	if err != nil {
		handling.HandleBodyError(err, "Theme must be light, dark or system", srm.logger, w)
		return
	}

	state, err := srm.themeService.SetPreference(r.Context(), body.Preference, body.SystemDark)
	if err != nil {
		if errors.Is(err, lib.ErrPersistence) {
			srm.logger.Error("Theme preference not saved", gecho.Field("error", err))
			gecho.ServiceUnavailable(w,
				gecho.WithMessage("Theme applied but could not be saved"),
				gecho.WithData(state),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "Unable to update theme", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Theme updated"),
		gecho.WithData(state),
		gecho.Send(),
	)
}
