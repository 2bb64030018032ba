// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/kbot-tui/internal/config"
	"github.com/jeranaias/kbot-tui/internal/model"
	"github.com/jeranaias/kbot-tui/internal/util"
)

// =============================================================================
// TRANSCRIPT EXPORT
// =============================================================================

// exportCmd writes the session transcript to ~/.kbot/exports as plain text.
func (m *Model) exportCmd() tea.Cmd {
	session := m.session

	return func() tea.Msg {
		dir, err := config.ConfigDir()
		if err != nil {
			return ExportDoneMsg{Err: err}
		}
		dir = filepath.Join(dir, "exports")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return ExportDoneMsg{Err: err}
		}

		stamp := time.Now().Format("20060102-150405")
		path := filepath.Join(dir, "kbot-transcript-"+stamp+".txt")

		data := []byte(Transcript(session))
		if err := util.AtomicWriteFile(path, data, 0600); err != nil {
			return ExportDoneMsg{Err: err}
		}

		return ExportDoneMsg{Path: path}
	}
}

// Transcript renders a session as a plain-text log.
func Transcript(s *model.Session) string {
	var b strings.Builder

	b.WriteString("KBot transcript - ")
	b.WriteString(s.Start.Format("2006-01-02 15:04"))
	b.WriteString("\n\n")

	for _, turn := range s.Turns {
		b.WriteString("[")
		b.WriteString(turn.FormattedTime())
		b.WriteString("] ")
		b.WriteString(turn.Role.DisplayName())
		b.WriteString(": ")
		b.WriteString(turn.Text)
		b.WriteString("\n")

		for i, opt := range turn.Options {
			b.WriteString("  ")
			b.WriteString(string(rune('1' + i)))
			b.WriteString(". ")
			b.WriteString(opt)
			b.WriteString("\n")
		}

		if turn.HasChart() {
			b.WriteString("  [chart] ")
			b.WriteString(turn.Chart.Summary())
			b.WriteString("\n")
		}
		if turn.Confidence != "" {
			b.WriteString("  confidence: ")
			b.WriteString(turn.Confidence)
			b.WriteString("\n")
		}
		if turn.Reasoning != "" {
			b.WriteString("  reasoning: ")
			b.WriteString(turn.Reasoning)
			b.WriteString("\n")
		}
		if turn.ErrorNote != "" {
			b.WriteString("  error: ")
			b.WriteString(turn.ErrorNote)
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	return b.String()
}
