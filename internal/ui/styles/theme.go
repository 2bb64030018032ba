// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App    lipgloss.Style
	Header lipgloss.Style

	// ==========================================================================
	// TURN STYLES
	// ==========================================================================

	UserLabel lipgloss.Style
	BotLabel  lipgloss.Style
	UserText  lipgloss.Style
	BotText   lipgloss.Style
	BoldText  lipgloss.Style
	Bullet    lipgloss.Style
	Timestamp lipgloss.Style

	// ==========================================================================
	// OPTION LIST STYLES
	// ==========================================================================

	OptionNumber lipgloss.Style
	OptionText   lipgloss.Style
	OptionDimmed lipgloss.Style

	// ==========================================================================
	// METADATA PANEL STYLES
	// ==========================================================================

	BadgeHigh     lipgloss.Style
	BadgeMedium   lipgloss.Style
	BadgeLow      lipgloss.Style
	Reasoning     lipgloss.Style
	ErrorNote     lipgloss.Style
	MetadataHint  lipgloss.Style
	MetadataLabel lipgloss.Style

	// ==========================================================================
	// CHART PANEL STYLES
	// ==========================================================================

	ChartBox     lipgloss.Style
	ChartSummary lipgloss.Style
	ChartHint    lipgloss.Style

	// ==========================================================================
	// INPUT AND STATUS STYLES
	// ==========================================================================

	InputPrompt lipgloss.Style
	Typing      lipgloss.Style
	StatusBar   lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	ConfirmBox  lipgloss.Style
}

// NewTheme builds the theme for the detected terminal.
func NewTheme() *Theme {
	t := &Theme{
		IsDark:       lipgloss.HasDarkBackground(),
		ColorProfile: termenv.ColorProfile(),
	}

	t.App = lipgloss.NewStyle()
	t.Header = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true).
		Padding(0, 1)

	t.UserLabel = lipgloss.NewStyle().Foreground(UserLabel).Bold(true)
	t.BotLabel = lipgloss.NewStyle().Foreground(BotLabel).Bold(true)
	t.UserText = lipgloss.NewStyle().Foreground(UserText)
	t.BotText = lipgloss.NewStyle().Foreground(BotText)
	t.BoldText = lipgloss.NewStyle().Foreground(BotText).Bold(true)
	t.Bullet = lipgloss.NewStyle().Foreground(Teal)
	t.Timestamp = lipgloss.NewStyle().Foreground(TextMuted)

	t.OptionNumber = lipgloss.NewStyle().Foreground(Teal).Bold(true)
	t.OptionText = lipgloss.NewStyle().Foreground(TextSecondary)
	t.OptionDimmed = lipgloss.NewStyle().Foreground(TextMuted)

	t.BadgeHigh = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Emerald).
		Padding(0, 1).
		Bold(true)
	t.BadgeMedium = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Amber).
		Padding(0, 1).
		Bold(true)
	t.BadgeLow = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Rose).
		Padding(0, 1).
		Bold(true)
	t.Reasoning = lipgloss.NewStyle().Foreground(TextSecondary).Italic(true)
	t.ErrorNote = lipgloss.NewStyle().Foreground(Rose)
	t.MetadataHint = lipgloss.NewStyle().Foreground(TextMuted)
	t.MetadataLabel = lipgloss.NewStyle().Foreground(TextSecondary).Bold(true)

	t.ChartBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ChartBorder).
		Padding(0, 1)
	t.ChartSummary = lipgloss.NewStyle().Foreground(Teal)
	t.ChartHint = lipgloss.NewStyle().Foreground(TextMuted)

	t.InputPrompt = lipgloss.NewStyle().Foreground(Teal).Bold(true)
	t.Typing = lipgloss.NewStyle().Foreground(TextMuted)
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)
	t.HelpKey = lipgloss.NewStyle().Foreground(Teal).Bold(true)
	t.HelpDesc = lipgloss.NewStyle().Foreground(TextMuted)
	t.ConfirmBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Amber).
		Padding(1, 2)

	return t
}

// ConfidenceBadge returns the badge style for a confidence label. The label
// is free-form; casing only affects styling, so "High" and "high" get the
// same badge. Unknown labels render with the medium badge.
func (t *Theme) ConfidenceBadge(confidence string) lipgloss.Style {
	switch strings.ToLower(confidence) {
	case "high":
		return t.BadgeHigh
	case "low":
		return t.BadgeLow
	default:
		return t.BadgeMedium
	}
}

// ApplyBackgroundMode forces the light or dark palette variant for the
// adaptive colors. "auto" (or anything else) keeps terminal detection.
func ApplyBackgroundMode(mode string) {
	switch strings.ToLower(mode) {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
}
