package dashboard

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/types"
)

// Theme is the binary light/dark preference persisted across sessions.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used when no preference has been saved yet.
const DefaultTheme = ThemeLight

// ParseTheme validates a stored or user-supplied theme value.
func ParseTheme(value string) (Theme, error) {
	switch Theme(value) {
	case ThemeLight, ThemeDark:
		return Theme(value), nil
	default:
		return "", fmt.Errorf("dashboard: unknown theme %q", value)
	}
}

// Toggle flips between light and dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ChartTheme maps the dashboard theme onto a go-echarts theme so axis and
// legend colors follow the page.
func (t Theme) ChartTheme() string {
	if t == ThemeDark {
		return string(types.ThemeChalk)
	}
	return string(types.ThemeWesteros)
}

// Tokens returns the CSS variable set for the theme.
func (t Theme) Tokens() map[string]string {
	if t == ThemeDark {
		return map[string]string{
			"--bg-primary":   "#1e1e2e",
			"--text-primary": "#ffffff",
			"--axis-color":   "#ffffff",
			"--grid-color":   "rgba(255,255,255,0.1)",
		}
	}
	return map[string]string{
		"--bg-primary":   "#ffffff",
		"--text-primary": "#1a1a1a",
		"--axis-color":   "#1a1a1a",
		"--grid-color":   "rgba(0,0,0,0.08)",
	}
}
