// Package tui provides the terminal chat interface for askweb.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/askweb/internal/errors"
)

// Styles is the set of lipgloss styles derived from a Theme
type Styles struct {
	Header     lipgloss.Style
	Title      lipgloss.Style
	Hint       lipgloss.Style
	Messages   lipgloss.Style
	UserLabel  lipgloss.Style
	UserBubble lipgloss.Style
	BotLabel   lipgloss.Style
	BotBubble  lipgloss.Style
	Typing     lipgloss.Style
	InputPanel lipgloss.Style
	InputLabel lipgloss.Style
	Disabled   lipgloss.Style
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusDesc lipgloss.Style
	Voice      lipgloss.Style
	Error      lipgloss.Style
	Picker     lipgloss.Style
}

// NewStyles builds the styles for theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 2),
		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Hint: lipgloss.NewStyle().
			Foreground(theme.TextMute).
			Italic(true),
		Messages: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		UserLabel: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			MarginLeft(4),
		UserBubble: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary).
			Foreground(theme.Text).
			Padding(0, 1).
			MarginLeft(4),
		BotLabel: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		BotBubble: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Foreground(theme.Text).
			Padding(0, 1).
			MarginRight(4),
		Typing: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Italic(true),
		InputPanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		InputLabel: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Disabled: lipgloss.NewStyle().
			Foreground(theme.TextDim),
		StatusBar: lipgloss.NewStyle().
			Foreground(theme.TextMute),
		StatusKey: lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Bold(true),
		StatusDesc: lipgloss.NewStyle().
			Foreground(theme.TextMute),
		Voice: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),
		Picker: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),
	}
}

// FormatError returns a styled error line with whatever context the error carries
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	errStyle := lipgloss.NewStyle().Foreground(TokyoNightTheme.Error)
	dimStyle := lipgloss.NewStyle().Foreground(TokyoNightTheme.TextDim)

	var sb strings.Builder
	sb.WriteString(errStyle.Render(fmt.Sprintf("✗ %v", err)))

	if status := errors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	switch {
	case errors.IsNetworkError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Check that the backend is running and --url points at it"))
	case errors.IsParseError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: The backend did not answer with JSON"))
	}

	return sb.String()
}
