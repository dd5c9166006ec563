package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Category lipgloss.Style
	Selected lipgloss.Style
	Know     lipgloss.Style
	Practice lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Box      lipgloss.Style
}

// DefaultTheme is the default theme.
var DefaultTheme = Theme{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Category: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#a78bfa")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c3aed")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	Know: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")),
	Practice: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b82f6")).
		Italic(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(1, 2),
}

// Config holds TUI configuration.
type Config struct {
	Theme  Theme
	Keymap KeyMap
	Width  int
	Height int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Theme:  DefaultTheme,
		Keymap: DefaultKeyMap(),
		Width:  80,
		Height: 24,
	}
}

// WithTheme sets the theme.
func WithTheme(theme Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithKeyMap overrides the key bindings.
func WithKeyMap(km KeyMap) Option {
	return func(c *Config) {
		c.Keymap = km
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
