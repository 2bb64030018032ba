// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/kbot-tui/internal/format"
	"github.com/jeranaias/kbot-tui/internal/ui/styles"
)

// =============================================================================
// FORMATTED TEXT BLOCKS
// =============================================================================

// RenderBlocks renders parsed text blocks with bold emphasis and bullet
// markers, word-wrapped to width.
func RenderBlocks(blocks []format.Block, theme *styles.Theme, width int) string {
	if len(blocks) == 0 {
		return ""
	}
	if width < 20 {
		width = 20
	}

	var lines []string
	for _, b := range blocks {
		switch b.Kind {
		case format.BlockBlank:
			lines = append(lines, "")
		case format.BlockBullet:
			marker := theme.Bullet.Render("- ")
			body := renderSpans(b.Spans, theme)
			// Wrapping bullets on plain text keeps ANSI sequences intact
			// only for single-line items; long items wrap unstyled.
			if len(b.PlainText()) > width-2 {
				wrapped := wordWrap(b.PlainText(), width-2)
				parts := strings.Split(wrapped, "\n")
				lines = append(lines, marker+parts[0])
				for _, p := range parts[1:] {
					lines = append(lines, "  "+p)
				}
			} else {
				lines = append(lines, marker+body)
			}
		default:
			if len(b.PlainText()) > width {
				lines = append(lines, wordWrap(b.PlainText(), width))
			} else {
				lines = append(lines, renderSpans(b.Spans, theme))
			}
		}
	}

	return strings.Join(lines, "\n")
}

// renderSpans renders a line's spans, bolding the emphasized ones.
func renderSpans(spans []format.Span, theme *styles.Theme) string {
	var sb strings.Builder
	for _, s := range spans {
		if s.Bold {
			sb.WriteString(theme.BoldText.Render(s.Text))
		} else {
			sb.WriteString(theme.BotText.Render(s.Text))
		}
	}
	return sb.String()
}
