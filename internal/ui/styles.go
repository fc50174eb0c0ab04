// Package ui renders command output: lipgloss styles, key-value blocks,
// tables, and the interactive entry picker.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorSuccess   = lipgloss.Color("#00D26A") // green  — success
	ColorWarning   = lipgloss.Color("#FFB800") // yellow — warning
	ColorError     = lipgloss.Color("#FF4444") // red    — error
	ColorAddress   = lipgloss.Color("#00B4D8") // cyan   — addresses, hashes, selectors
	ColorValue     = lipgloss.Color("#FFFFFF") // white bold — decoded values
	ColorMeta      = lipgloss.Color("#555555") // dim gray   — types, metadata
	ColorBorder    = lipgloss.Color("#1E3A5F") // dark blue  — UI chrome
	ColorKind      = lipgloss.Color("#9B5DE5") // purple     — entry kinds (function/event)
	ColorHighlight = lipgloss.Color("#F15BB5") // pink       — selected rows
)

// Base styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleAddress = lipgloss.NewStyle().Foreground(ColorAddress)
	StyleValue   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleKind    = lipgloss.NewStyle().Foreground(ColorKind).Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Underline(true)

	StyleSelected = lipgloss.NewStyle().
			Background(ColorHighlight).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorKind).
			Bold(true).
			MarginBottom(1)
)

// Success formats a success message.
func Success(msg string) string { return StyleSuccess.Render("✓ " + msg) }

// Warn formats a warning message.
func Warn(msg string) string { return StyleWarning.Render("⚠ " + msg) }

// Err formats an error message.
func Err(msg string) string { return StyleError.Render("✗ " + msg) }

// Addr formats an address, hash, or selector.
func Addr(a string) string { return StyleAddress.Render(a) }

// Val formats a value.
func Val(v string) string { return StyleValue.Render(v) }

// Meta formats metadata text.
func Meta(m string) string { return StyleMeta.Render(m) }

// Kind formats an ABI entry kind.
func Kind(k string) string { return StyleKind.Render(k) }

// TruncateHex shortens a long hex string for display: 0x1234…5678.
func TruncateHex(s string) string {
	if len(s) <= 14 {
		return s
	}
	return s[:8] + "…" + s[len(s)-4:]
}
