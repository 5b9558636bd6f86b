package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Text          string
	Muted         string
	Accent        string
	Success       string
	Warning       string
	Danger        string
	SelectionBg   string
	SelectionText string
	Border        string
}

var themes = []Theme{
	{
		Name:          "Bayanihan",
		Text:          "#e8e8e3",
		Muted:         "#8a8f98",
		Accent:        "#4fb477",
		Success:       "#50fa7b",
		Warning:       "#f1fa8c",
		Danger:        "#ff5555",
		SelectionBg:   "#2d4739",
		SelectionText: "#e8e8e3",
		Border:        "#44475a",
	},
	{
		Name:          "Slate",
		Text:          "#d8dee9",
		Muted:         "#6c7a89",
		Accent:        "#81a1c1",
		Success:       "#a3be8c",
		Warning:       "#ebcb8b",
		Danger:        "#bf616a",
		SelectionBg:   "#3b4252",
		SelectionText: "#eceff4",
		Border:        "#4c566a",
	},
}

// GetTheme returns the theme with the given name, defaulting to the first
// theme when the name is unknown.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the named one, wrapping.
func NextTheme(name string) string {
	for i, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Logo       lipgloss.Style
	Tab        lipgloss.Style
	TabActive  lipgloss.Style
	Text       lipgloss.Style
	Muted      lipgloss.Style
	Accent     lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Danger     lipgloss.Style
	Selected   lipgloss.Style
	AdminBadge lipgloss.Style
	FieldLabel lipgloss.Style
	Panel      lipgloss.Style
}

// Styles builds the lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true).
			Padding(0, 1),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		AdminBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		FieldLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Width(10),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
	}
}
