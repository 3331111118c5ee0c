package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the color scheme of the chat interface
type Theme struct {
	Name        string
	Description string

	Border lipgloss.Color

	Primary   lipgloss.Color // bot replies
	Secondary lipgloss.Color // user messages
	Accent    lipgloss.Color // typing and voice activity
	Error     lipgloss.Color

	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

var (
	TokyoNightTheme = Theme{
		Name:        "tokyonight",
		Description: "Tokyo Night, blue accents on a dark background",
		Border:      lipgloss.Color("#414868"),
		Primary:     lipgloss.Color("#7aa2f7"),
		Secondary:   lipgloss.Color("#9ece6a"),
		Accent:      lipgloss.Color("#bb9af7"),
		Error:       lipgloss.Color("#f7768e"),
		Text:        lipgloss.Color("#c0caf5"),
		TextDim:     lipgloss.Color("#565f89"),
		TextMute:    lipgloss.Color("#3b4261"),
	}

	NordTheme = Theme{
		Name:        "nord",
		Description: "Nord, cool arctic tones",
		Border:      lipgloss.Color("#4c566a"),
		Primary:     lipgloss.Color("#88c0d0"),
		Secondary:   lipgloss.Color("#a3be8c"),
		Accent:      lipgloss.Color("#b48ead"),
		Error:       lipgloss.Color("#bf616a"),
		Text:        lipgloss.Color("#eceff4"),
		TextDim:     lipgloss.Color("#7b88a1"),
		TextMute:    lipgloss.Color("#4c566a"),
	}

	GruvboxTheme = Theme{
		Name:        "gruvbox",
		Description: "Gruvbox, warm retro palette",
		Border:      lipgloss.Color("#504945"),
		Primary:     lipgloss.Color("#83a598"),
		Secondary:   lipgloss.Color("#b8bb26"),
		Accent:      lipgloss.Color("#d3869b"),
		Error:       lipgloss.Color("#fb4934"),
		Text:        lipgloss.Color("#ebdbb2"),
		TextDim:     lipgloss.Color("#928374"),
		TextMute:    lipgloss.Color("#665c54"),
	}

	PlainTheme = Theme{
		Name:        "plain",
		Description: "ANSI colors for basic terminals",
		Border:      lipgloss.Color("8"),
		Primary:     lipgloss.Color("4"),
		Secondary:   lipgloss.Color("2"),
		Accent:      lipgloss.Color("5"),
		Error:       lipgloss.Color("1"),
		Text:        lipgloss.Color("7"),
		TextDim:     lipgloss.Color("8"),
		TextMute:    lipgloss.Color("8"),
	}
)

var themes = []Theme{TokyoNightTheme, NordTheme, GruvboxTheme, PlainTheme}

// ThemeByName looks a theme up by name
func ThemeByName(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ThemeNames lists the available theme names
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
