// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/kbot-tui/internal/model"
	"github.com/jeranaias/kbot-tui/internal/ui/styles"
)

// =============================================================================
// METADATA PANEL
// =============================================================================

// MetadataPanel shows the confidence badge and the collapsible decision
// path attached to a bot turn.
type MetadataPanel struct {
	Turn     *model.Turn
	Expanded bool

	theme *styles.Theme
}

// NewMetadataPanel creates a metadata panel for a turn.
func NewMetadataPanel(turn *model.Turn, theme *styles.Theme) *MetadataPanel {
	return &MetadataPanel{
		Turn:  turn,
		theme: theme,
	}
}

// View renders the panel. Returns "" when the turn carries no metadata.
func (p *MetadataPanel) View() string {
	if p.Turn == nil || !p.Turn.HasMetadata() {
		return ""
	}

	var lines []string

	if p.Turn.Confidence != "" {
		badge := p.theme.ConfidenceBadge(p.Turn.Confidence).Render(strings.ToUpper(p.Turn.Confidence))
		lines = append(lines, p.theme.MetadataLabel.Render("Confidence ")+badge)
	}

	hasPath := p.Turn.Reasoning != "" || p.Turn.ErrorNote != ""
	if hasPath {
		if p.Expanded {
			lines = append(lines, p.theme.MetadataLabel.Render("Decision Path"))
			if p.Turn.Reasoning != "" {
				lines = append(lines, p.theme.Reasoning.Render(p.Turn.Reasoning))
			}
			if p.Turn.ErrorNote != "" {
				lines = append(lines, p.theme.ErrorNote.Render("Error: "+p.Turn.ErrorNote))
			}
			lines = append(lines, p.theme.MetadataHint.Render("press d to hide decision path"))
		} else {
			lines = append(lines, p.theme.MetadataHint.Render("press d to show decision path"))
		}
	}

	return strings.Join(lines, "\n")
}
