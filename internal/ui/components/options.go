// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/kbot-tui/internal/ui/styles"
)

// =============================================================================
// PRESET OPTION LIST
// =============================================================================

// OptionList renders the numbered preset queries attached to a bot turn.
// Pressing the matching digit submits the option; the list dims while a
// request is in flight.
type OptionList struct {
	Options []string
	Dimmed  bool

	theme *styles.Theme
}

// NewOptionList creates an option list component.
func NewOptionList(options []string, theme *styles.Theme) *OptionList {
	return &OptionList{
		Options: options,
		theme:   theme,
	}
}

// View renders the numbered option lines.
func (o *OptionList) View() string {
	if len(o.Options) == 0 {
		return ""
	}

	var lines []string
	for i, opt := range o.Options {
		num := toStr(i+1) + ". "
		if o.Dimmed {
			lines = append(lines, o.theme.OptionDimmed.Render(num+opt))
		} else {
			lines = append(lines, o.theme.OptionNumber.Render(num)+o.theme.OptionText.Render(opt))
		}
	}

	return strings.Join(lines, "\n")
}

// Pick returns the option for a 1-based index, or "" if out of range.
func (o *OptionList) Pick(n int) string {
	if n < 1 || n > len(o.Options) {
		return ""
	}
	return o.Options[n-1]
}
