// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestConfidenceBadge(t *testing.T) {
	// Pin the color profile so rendering is deterministic in CI.
	lipgloss.SetColorProfile(termenv.Ascii)

	theme := NewTheme()

	tests := []struct {
		confidence string
		want       lipgloss.Style
	}{
		{"high", theme.BadgeHigh},
		{"medium", theme.BadgeMedium},
		{"low", theme.BadgeLow},
		{"", theme.BadgeMedium},
		{"unsure", theme.BadgeMedium},
		// The backend sends capitalized labels; casing must not change
		// the badge.
		{"High", theme.BadgeHigh},
		{"Low", theme.BadgeLow},
		{"MEDIUM", theme.BadgeMedium},
	}

	for _, tc := range tests {
		got := theme.ConfidenceBadge(tc.confidence)
		if got.Render("x") != tc.want.Render("x") {
			t.Errorf("ConfidenceBadge(%q) rendered differently than expected", tc.confidence)
		}
	}
}

func TestConfidenceBadgeCapitalizedColors(t *testing.T) {
	// Render with real colors so a casing miss would show up as the wrong
	// background, not just a different style value.
	lipgloss.SetColorProfile(termenv.TrueColor)
	lipgloss.SetHasDarkBackground(true)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(termenv.Ascii)
	})

	theme := NewTheme()

	if got, want := theme.ConfidenceBadge("High").Render("x"), theme.BadgeHigh.Render("x"); got != want {
		t.Errorf("ConfidenceBadge(\"High\") = %q, want the high badge %q", got, want)
	}
	if got, want := theme.ConfidenceBadge("Low").Render("x"), theme.BadgeLow.Render("x"); got != want {
		t.Errorf("ConfidenceBadge(\"Low\") = %q, want the low badge %q", got, want)
	}
	if got, medium := theme.ConfidenceBadge("High").Render("x"), theme.BadgeMedium.Render("x"); got == medium {
		t.Error("ConfidenceBadge(\"High\") fell through to the medium badge")
	}
}

func TestApplyBackgroundMode(t *testing.T) {
	orig := lipgloss.HasDarkBackground()
	t.Cleanup(func() {
		lipgloss.SetHasDarkBackground(orig)
	})

	ApplyBackgroundMode("light")
	if lipgloss.HasDarkBackground() {
		t.Error("ApplyBackgroundMode(light) left a dark background")
	}

	ApplyBackgroundMode("dark")
	if !lipgloss.HasDarkBackground() {
		t.Error("ApplyBackgroundMode(dark) did not set a dark background")
	}

	// Unknown modes leave the detected value alone.
	ApplyBackgroundMode("auto")
	if !lipgloss.HasDarkBackground() {
		t.Error("ApplyBackgroundMode(auto) changed the background")
	}
}

func TestNewThemeStylesRender(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	theme := NewTheme()

	// Styles must at least pass text through untouched in ASCII mode.
	if got := theme.UserLabel.Render("You"); got != "You" {
		t.Errorf("UserLabel.Render = %q", got)
	}
	if got := theme.BotText.Render("answer"); got != "answer" {
		t.Errorf("BotText.Render = %q", got)
	}
}
