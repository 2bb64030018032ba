// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/kbot-tui/internal/chart"
	"github.com/jeranaias/kbot-tui/internal/ui/styles"
)

// =============================================================================
// CHART PANEL
// =============================================================================

// ChartPanel renders the inline placeholder for a chart payload. Charts are
// drawn by the external viewer; the panel shows what arrived and how to
// open it.
type ChartPanel struct {
	Payload *chart.Payload

	// OpenedPath is set after the chart was handed to the viewer.
	OpenedPath string

	theme *styles.Theme
}

// NewChartPanel creates a chart panel for a payload.
func NewChartPanel(p *chart.Payload, theme *styles.Theme) *ChartPanel {
	return &ChartPanel{
		Payload: p,
		theme:   theme,
	}
}

// View renders the bordered chart box. Returns "" when there is no payload.
func (c *ChartPanel) View() string {
	if c.Payload == nil {
		return ""
	}

	var lines []string

	title := c.Payload.Title()
	if title != "" {
		lines = append(lines, c.theme.ChartSummary.Render(title))
	}
	lines = append(lines, c.theme.ChartSummary.Render("[chart] "+c.Payload.Summary()))

	if c.OpenedPath != "" {
		lines = append(lines, c.theme.ChartHint.Render("opened: "+c.OpenedPath))
	} else {
		lines = append(lines, c.theme.ChartHint.Render("press o to open in browser"))
	}

	return c.theme.ChartBox.Render(strings.Join(lines, "\n"))
}
