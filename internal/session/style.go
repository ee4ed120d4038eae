package session

import (
	"github.com/charmbracelet/lipgloss"

	"contactbook/internal/dispatch"
)

var (
	promptColor  = lipgloss.Color("#8BC34A")
	failureColor = lipgloss.Color("#e53935")
)

// Styles colours the prompt and failure replies. The zero value prints plain text.
type Styles struct {
	enabled      bool
	promptStyle  lipgloss.Style
	failureStyle lipgloss.Style
}

// ColorStyles returns the terminal styles used for interactive sessions.
func ColorStyles() Styles {
	return Styles{
		enabled:      true,
		promptStyle:  lipgloss.NewStyle().Foreground(promptColor).Bold(true),
		failureStyle: lipgloss.NewStyle().Foreground(failureColor),
	}
}

func (s Styles) prompt(p string) string {
	if !s.enabled {
		return p
	}
	return s.promptStyle.Render(p)
}

func (s Styles) reply(r string) string {
	if !s.enabled || !dispatch.IsFailure(r) {
		return r
	}
	return s.failureStyle.Render(r)
}
