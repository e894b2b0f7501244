package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	// Selection colors
	SelectionBg   string
	SelectionText string
}

const defaultThemeName = "Slate"

var themes = []Theme{
	{
		Name:          "Slate",
		Text:          "#e2e8f0",
		Muted:         "#94a3b8",
		Faint:         "#475569",
		Accent:        "#7dd3fc",
		Success:       "#86efac",
		Warning:       "#fde047",
		Danger:        "#fca5a5",
		SelectionBg:   "#334155",
		SelectionText: "#f8fafc",
	},
	{
		Name:          "Paper",
		Text:          "#1f2328",
		Muted:         "#57606a",
		Faint:         "#a8b1bb",
		Accent:        "#0969da",
		Success:       "#1a7f37",
		Warning:       "#9a6700",
		Danger:        "#cf222e",
		SelectionBg:   "#d0d7de",
		SelectionText: "#1f2328",
	},
	{
		Name:          "Dracula",
		Text:          "#f8f8f2",
		Muted:         "#9ca3af",
		Faint:         "#6272a4",
		Accent:        "#bd93f9",
		Success:       "#50fa7b",
		Warning:       "#f1fa8c",
		Danger:        "#ff5555",
		SelectionBg:   "#44475a",
		SelectionText: "#f8f8f2",
	},
}

// GetTheme returns the named theme, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one, cycling.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	Logo        lipgloss.Style
	Selected    lipgloss.Style
}
