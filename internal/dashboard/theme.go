package dashboard

import (
	"net/http"
	"time"
)

// ThemeCookie persists the selected theme in the browser.
const ThemeCookie = "depviz-theme"

// DefaultTheme applies when no valid choice is stored.
const DefaultTheme = "dark"

// Themes is the closed set of selectable themes, in selector order.
var Themes = []string{"dark", "light", "dracula", "nord", "solarized"}

// ValidTheme reports whether name is one of Themes.
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// ResolveTheme returns name when valid and fallback otherwise. An invalid
// fallback resolves to DefaultTheme.
func ResolveTheme(name, fallback string) string {
	if ValidTheme(name) {
		return name
	}
	if ValidTheme(fallback) {
		return fallback
	}
	return DefaultTheme
}

func themeFromRequest(r *http.Request, fallback string) string {
	c, err := r.Cookie(ThemeCookie)
	if err != nil {
		return ResolveTheme("", fallback)
	}
	return ResolveTheme(c.Value, fallback)
}

func setThemeCookie(w http.ResponseWriter, theme string) {
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookie,
		Value:    theme,
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		SameSite: http.SameSiteLaxMode,
	})
}
