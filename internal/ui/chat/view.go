// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/jeranaias/kbot-tui/internal/format"
	"github.com/jeranaias/kbot-tui/internal/model"
	"github.com/jeranaias/kbot-tui/internal/ui/components"
	"github.com/jeranaias/kbot-tui/internal/util"
)

// chromeLines is the vertical space taken by the header, typing line,
// input line, and footer around the transcript viewport.
const chromeLines = 4

// =============================================================================
// VIEW
// =============================================================================

// View renders the full chat interface.
func (m Model) View() string {
	if !m.ready {
		return "Starting kbot..."
	}

	var b strings.Builder

	b.WriteString(m.theme.Header.Render("KBot - KPCL Data Assistant"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.confirmReset {
		b.WriteString(m.theme.ConfirmBox.Render("Clear the chat history? (y/n)"))
		b.WriteString("\n")
	} else if m.typing.IsActive() {
		b.WriteString(m.typing.View())
		b.WriteString("\n")
	} else if m.status != "" {
		// Export paths and error text can outrun the terminal.
		b.WriteString(m.theme.Typing.Render(util.TruncateWidth(m.status, m.width-2)))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderFooter draws the key hints line, or the full help when toggled.
func (m Model) renderFooter() string {
	if m.showHelp {
		var groups []string
		for _, group := range m.keys.FullHelp() {
			var parts []string
			for _, binding := range group {
				parts = append(parts,
					m.theme.HelpKey.Render(binding.Help().Key)+" "+
						m.theme.HelpDesc.Render(binding.Help().Desc))
			}
			groups = append(groups, strings.Join(parts, "  "))
		}
		return m.theme.StatusBar.Render(strings.Join(groups, "\n"))
	}

	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		parts = append(parts,
			m.theme.HelpKey.Render(binding.Help().Key)+" "+
				m.theme.HelpDesc.Render(binding.Help().Desc))
	}
	return m.theme.StatusBar.Render(strings.Join(parts, "  "))
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// renderTranscript renders every turn in order. Each turn draws its pieces
// in a fixed order: label, text, options, chart, metadata.
func (m *Model) renderTranscript() string {
	width := m.viewport.Width - 2
	if width < 20 {
		width = 20
	}

	var sections []string
	for _, turn := range m.session.Turns {
		sections = append(sections, m.renderTurn(turn, width))
	}

	return strings.Join(sections, "\n\n")
}

func (m *Model) renderTurn(turn *model.Turn, width int) string {
	var lines []string

	// Label line, with the clock unless timestamps are configured off.
	var label string
	if turn.Role == model.RoleUser {
		label = m.theme.UserLabel.Render(turn.Role.DisplayName())
	} else {
		label = m.theme.BotLabel.Render(turn.Role.DisplayName())
	}
	if m.showTimestamps {
		label += " " + m.theme.Timestamp.Render(turn.FormattedTime())
	}
	lines = append(lines, label)

	// Body text.
	if turn.Role == model.RoleUser {
		lines = append(lines, m.theme.UserText.Render(turn.Text))
	} else {
		lines = append(lines, m.renderBotText(turn.Text, width))
	}

	// Preset options.
	if len(turn.Options) > 0 {
		list := components.NewOptionList(turn.Options, m.theme)
		list.Dimmed = m.session.Waiting
		lines = append(lines, list.View())
	}

	// Chart placeholder.
	if turn.HasChart() {
		panel := components.NewChartPanel(turn.Chart, m.theme)
		panel.OpenedPath = m.opened[turn.ID]
		lines = append(lines, panel.View())
	}

	// Confidence and decision path.
	if turn.HasMetadata() {
		panel := components.NewMetadataPanel(turn, m.theme)
		panel.Expanded = m.expanded[turn.ID]
		if v := panel.View(); v != "" {
			lines = append(lines, v)
		}
	}

	return strings.Join(lines, "\n")
}

// renderBotText renders a bot reply through the configured strategy: the
// glamour markdown renderer when enabled, the bold/bullet formatter
// otherwise.
func (m *Model) renderBotText(text string, width int) string {
	if m.markdown && m.md != nil {
		if out, err := m.md.Render(text); err == nil {
			return out
		}
	}
	return components.RenderBlocks(format.Format(text), m.theme, width)
}
