package services

import (
	"context"
	"fmt"
	"sync"
	"watchmarket_server/database"
	"watchmarket_server/lib"
	"watchmarket_server/structs"

	"github.com/MonkyMars/gecho"
)

const ThemeKey = "theme"

type ThemeService struct {
	logger *gecho.Logger
	store  database.Store

	mu         sync.RWMutex
	preference structs.ThemePreference
}

func NewThemeService(logger *gecho.Logger, store database.Store) *ThemeService {
	return &ThemeService{
		logger:     logger,
		store:      store,
		preference: structs.ThemeSystem,
	}
}

// Load restores the stored preference, keeping system on a missing or unknown value
func (ts *ThemeService) Load(ctx context.Context) {
	raw, found, err := ts.store.Get(ctx, ThemeKey)
	if err != nil {
		ts.logger.Error("Failed to read theme preference", gecho.Field("error", err))
		return
	}
	if !found {
		return
	}
	pref := structs.ThemePreference(raw)
	if !pref.Valid() {
		ts.logger.Warn("Stored theme preference is unknown", gecho.Field("value", raw))
		return
	}
	ts.mu.Lock()
	ts.preference = pref
	ts.mu.Unlock()
}

// Resolve builds the palette; systemDark is only used for the system preference
func Resolve(pref structs.ThemePreference, systemDark bool) structs.ThemeState {
	dark := pref == structs.ThemeDark || (pref == structs.ThemeSystem && systemDark)
	palette := structs.LightPalette
	if dark {
		palette = structs.DarkPalette
	}
	return structs.ThemeState{Preference: pref, IsDarkMode: dark, Palette: palette}
}

func (ts *ThemeService) Current(systemDark bool) structs.ThemeState {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return Resolve(ts.preference, systemDark)
}

func (ts *ThemeService) SetPreference(ctx context.Context, pref structs.ThemePreference, systemDark bool) (structs.ThemeState, error) {
	if !pref.Valid() {
		return structs.ThemeState{}, fmt.Errorf("unknown theme preference %q", pref)
	}

	ts.mu.Lock()
	ts.preference = pref
	ts.mu.Unlock()

	if err := ts.store.Set(ctx, ThemeKey, string(pref)); err != nil {
		return Resolve(pref, systemDark), fmt.Errorf("%w: %w", lib.ErrPersistence, err)
	}
	return Resolve(pref, systemDark), nil
}
