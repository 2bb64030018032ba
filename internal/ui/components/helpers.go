// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/kbot-tui/internal/util"
)

// =============================================================================
// SHARED HELPER FUNCTIONS
// =============================================================================

// toStr converts an integer to a string without using fmt package.
func toStr(n int) string {
	if n == 0 {
		return "0"
	}

	if n == -9223372036854775808 { // math.MinInt64
		return "-9223372036854775808"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}

	if negative {
		return "-" + string(digits)
	}
	return string(digits)
}

// wordWrap wraps text at word boundaries to fit within maxWidth display
// columns. Width is measured in terminal columns, so double-width (CJK)
// characters count as 2. Words wider than maxWidth are left on their own
// line unbroken.
func wordWrap(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	line := words[0]
	width := util.StringWidth(line)
	for _, word := range words[1:] {
		w := util.StringWidth(word)
		if width+1+w <= maxWidth {
			line += " " + word
			width += 1 + w
		} else {
			lines = append(lines, line)
			line = word
			width = w
		}
	}
	lines = append(lines, line)

	return strings.Join(lines, "\n")
}
