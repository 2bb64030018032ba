// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package format turns raw reply text into display-ready structure.
package format

import (
	"regexp"
	"strings"
)

// =============================================================================
// DISPLAY BLOCKS
// =============================================================================

// BlockKind classifies a single display block.
type BlockKind int

const (
	// BlockParagraph is a regular line of text.
	BlockParagraph BlockKind = iota
	// BlockBullet is a bulleted list item ("* " or "- " in the source).
	BlockBullet
	// BlockBlank is an empty line, rendered as fixed vertical spacing.
	BlockBlank
)

// Span is a run of text within a block, either plain or bold.
type Span struct {
	Text string
	Bold bool
}

// Block is one line of formatted output.
type Block struct {
	Kind  BlockKind
	Spans []Span
}

// PlainText returns the block's text with all styling dropped.
func (b Block) PlainText() string {
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// =============================================================================
// FORMATTER
// =============================================================================

// boldRe matches a doubled-asterisk emphasis run. Non-greedy and requiring
// at least one inner character, so unbalanced or empty markers fall through
// and render literally.
var boldRe = regexp.MustCompile(`\*\*(.+?)\*\*`)

// NormalizeEscapes replaces literal two-character "\n" escape sequences with
// real line breaks. Payloads that pass through multiple JSON encoders arrive
// double-escaped; rendering must treat both forms identically.
func NormalizeEscapes(raw string) string {
	return strings.ReplaceAll(raw, `\n`, "\n")
}

// Format converts a raw reply string into an ordered sequence of display
// blocks. One block per source line; blank lines are preserved, not
// collapsed. Deterministic: the same input always yields the same blocks.
func Format(raw string) []Block {
	if raw == "" {
		return nil
	}

	lines := strings.Split(NormalizeEscapes(raw), "\n")
	blocks := make([]Block, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			blocks = append(blocks, Block{Kind: BlockBlank})
		case strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "- "):
			blocks = append(blocks, Block{
				Kind:  BlockBullet,
				Spans: parseSpans(trimmed[2:]),
			})
		default:
			blocks = append(blocks, Block{
				Kind:  BlockParagraph,
				Spans: parseSpans(line),
			})
		}
	}

	return blocks
}

// parseSpans splits a line into plain and bold spans. The "**" delimiters are
// removed from the output; text outside matched pairs (including unbalanced
// markers) is passed through as plain spans so no characters are ever lost.
func parseSpans(line string) []Span {
	if line == "" {
		return nil
	}

	matches := boldRe.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return []Span{{Text: line}}
	}

	var spans []Span
	last := 0
	for _, m := range matches {
		// m[0]:m[1] is the full "**...**" run, m[2]:m[3] the inner text.
		if m[0] > last {
			spans = append(spans, Span{Text: line[last:m[0]]})
		}
		spans = append(spans, Span{Text: line[m[2]:m[3]], Bold: true})
		last = m[1]
	}
	if last < len(line) {
		spans = append(spans, Span{Text: line[last:]})
	}

	return spans
}
