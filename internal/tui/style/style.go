// Package style defines lipgloss styles for the TUI.
package style

import "github.com/charmbracelet/lipgloss"

// UI styles using lipgloss.
// These are package-level for convenience; lipgloss styles are value types
// and safe for concurrent use.
//
// Variable names omit the "Style" suffix since they're accessed via the
// style package (e.g., style.Title).
var (
	// Title is used for section headers.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	// Subtitle is used for secondary text such as the character count.
	Subtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// Error is used for error messages.
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	// Viewport frames the generated text.
	Viewport = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	// Help is used for keyboard shortcut hints.
	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Key is used for highlighting keyboard keys.
	Key = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	// UserMessage is a refine instruction typed by the user.
	UserMessage = lipgloss.NewStyle().
			Foreground(lipgloss.Color("141"))

	// AIMessage is an assistant reply.
	AIMessage = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// Muted is used for de-emphasized text (e.g., timestamps).
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
)
