package structs

type ThemePreference string

const (
	ThemeLight  ThemePreference = "light"
	ThemeDark   ThemePreference = "dark"
	ThemeSystem ThemePreference = "system"
)

func (t ThemePreference) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

type Palette struct {
	Background    string `json:"background"`
	Card          string `json:"card"`
	Text          string `json:"text"`
	SecondaryText string `json:"secondaryText"`
	Border        string `json:"border"`
	Primary       string `json:"primary"`
}

var (
	LightPalette = Palette{
		Background:    "#f8f8f8",
		Card:          "#ffffff",
		Text:          "#333333",
		SecondaryText: "#666666",
		Border:        "#e0e0e0",
		Primary:       "#3498db",
	}
	DarkPalette = Palette{
		Background:    "#121212",
		Card:          "#1e1e1e",
		Text:          "#ffffff",
		SecondaryText: "#aaaaaa",
		Border:        "#333333",
		Primary:       "#3498db",
	}
)

type ThemeState struct {
	Preference ThemePreference `json:"preference"`
	IsDarkMode bool            `json:"isDarkMode"`
	Palette    Palette         `json:"palette"`
}

type UpdateThemeRequest struct {
	Preference ThemePreference `json:"preference" validate:"required,oneof=light dark system"`
	// SystemDark reports the device appearance when preference is system
	SystemDark bool `json:"systemDark"`
}
