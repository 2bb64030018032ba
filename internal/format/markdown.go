// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package format turns raw reply text into display-ready structure.
package format

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN STRATEGY
// =============================================================================

// MarkdownRenderer is the rich formatting strategy: it hands the (escape
// normalized) reply text to glamour for full GitHub-flavored markdown
// rendering, including tables and code fences the hand-rolled parser does
// not attempt.
type MarkdownRenderer struct {
	tr    *glamour.TermRenderer
	width int
}

// NewMarkdownRenderer creates a markdown renderer wrapped to the given width.
func NewMarkdownRenderer(width int) (*MarkdownRenderer, error) {
	if width <= 0 {
		width = 80
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	return &MarkdownRenderer{tr: tr, width: width}, nil
}

// Width returns the wrap width the renderer was built with.
func (r *MarkdownRenderer) Width() int {
	return r.width
}

// Render formats a raw reply string as terminal markdown. Escape
// normalization matches the block formatter, so "\n" sequences become real
// line breaks under either strategy.
func (r *MarkdownRenderer) Render(raw string) (string, error) {
	out, err := r.tr.Render(NormalizeEscapes(raw))
	if err != nil {
		return "", err
	}
	// glamour pads with leading/trailing newlines; the turn renderer manages
	// its own vertical spacing.
	return strings.Trim(out, "\n"), nil
}
