// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/kbot-tui/internal/api"
	"github.com/jeranaias/kbot-tui/internal/chart"
	"github.com/jeranaias/kbot-tui/internal/model"
)

// =============================================================================
// UPDATE LOOP
// =============================================================================

// Update handles all Bubble Tea messages for the chat interface.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ReplyMsg:
		return m.handleReply(msg)

	case ChartOpenedMsg:
		if msg.Err != nil {
			m.status = "chart: " + msg.Err.Error()
		} else {
			m.opened[msg.TurnID] = msg.Path
			m.status = ""
		}
		m.refreshViewport(false)
		return m, nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m.status = "export failed: " + msg.Err.Error()
		} else {
			m.status = "transcript saved to " + msg.Path
		}
		return m, nil
	}

	// Remaining messages drive the animations and the input cursor.
	var cmd tea.Cmd
	m.typing, cmd = m.typing.Update(msg)
	cmds = append(cmds, cmd)

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// The reset confirmation swallows all keys until answered.
	if m.confirmReset {
		switch msg.String() {
		case "y", "Y", "enter":
			m.confirmReset = false
			m.reset()
		case "n", "N", "esc", "ctrl+c":
			m.confirmReset = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reset):
		m.confirmReset = true
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd()

	case key.Matches(msg, m.keys.Submit):
		return m.submit(m.input.Value())

	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	case key.Matches(msg, m.keys.Home):
		m.viewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.End):
		m.viewport.GotoBottom()
		return m, nil
	}

	// Letter and digit shortcuts act only on an empty input line, so they
	// never interfere with typing a query.
	if m.input.Value() == "" {
		switch {
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.OpenChart):
			if turn := m.latestChartTurn(); turn != nil {
				return m, m.openChartCmd(turn)
			}
			return m, nil

		case key.Matches(msg, m.keys.Reasoning):
			if turn := m.latestMetadataTurn(); turn != nil {
				m.expanded[turn.ID] = !m.expanded[turn.ID]
				m.refreshViewport(false)
			}
			return m, nil
		}

		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if opt := m.presetOption(int(s[0] - '0')); opt != "" {
				return m.submit(opt)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// SUBMIT AND REPLY
// =============================================================================

// submit validates and sends a query. Blank queries are ignored, and only
// one request may be in flight at a time.
func (m Model) submit(text string) (Model, tea.Cmd) {
	query := strings.TrimSpace(text)
	if query == "" {
		return m, nil
	}
	if m.session.Waiting {
		return m, nil
	}

	m.session.AppendUserTurn(query)
	m.input.Reset()
	m.status = ""

	// Creating the command marks the session waiting, so the refresh below
	// already renders the preset options dimmed.
	send := m.sendCmd(query)
	tick := m.typing.Start()
	m.refreshViewport(true)

	return m, tea.Batch(send, tick)
}

func (m Model) handleReply(msg ReplyMsg) (Model, tea.Cmd) {
	// Replies from before a reset are dropped entirely.
	if !m.session.EndRequest(msg.Epoch) {
		return m, nil
	}
	m.typing.Stop()

	turn := buildBotTurn(msg.Reply, msg.Err)
	m.session.Append(turn)
	m.refreshViewport(true)
	return m, nil
}

// buildBotTurn converts a backend reply (or request error) into a bot turn.
// A transport failure yields the bare fallback turn: no chart, no metadata.
func buildBotTurn(reply *api.Reply, err error) *model.Turn {
	if err != nil {
		return model.NewBotTurn(api.FallbackMessage)
	}

	text := reply.Answer
	if text == "" {
		text = api.FallbackMessage
	}

	turn := model.NewBotTurn(text)
	turn.Confidence = reply.Confidence
	turn.Reasoning = reply.Reasoning
	turn.ErrorNote = reply.Error

	payload, chartErr := chart.FromReply(reply.GraphJSON, reply.GraphBase64)
	if chartErr != nil {
		// A broken chart never blocks the answer text.
		if turn.ErrorNote == "" {
			turn.ErrorNote = "chart could not be decoded"
		}
	} else {
		turn.Chart = payload
	}

	return turn
}

// =============================================================================
// STATE HELPERS
// =============================================================================

// reset clears the session back to the welcome turn. Any in-flight reply
// becomes stale through the epoch bump.
func (m *Model) reset() {
	m.session.Reset()
	m.typing.Stop()
	m.input.Reset()
	m.status = ""
	m.expanded = make(map[string]bool)
	m.opened = make(map[string]string)
	m.refreshViewport(true)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	vpHeight := height - chromeLines
	if vpHeight < 3 {
		vpHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}

	m.input.Width = width - 4
	m.refreshViewport(true)
}

// refreshViewport re-renders the transcript into the viewport.
func (m *Model) refreshViewport(gotoBottom bool) {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	if gotoBottom {
		m.viewport.GotoBottom()
	}
}

// latestChartTurn returns the most recent bot turn carrying a chart.
func (m *Model) latestChartTurn() *model.Turn {
	for i := len(m.session.Turns) - 1; i >= 0; i-- {
		if m.session.Turns[i].HasChart() {
			return m.session.Turns[i]
		}
	}
	return nil
}

// latestMetadataTurn returns the most recent bot turn with a decision path.
func (m *Model) latestMetadataTurn() *model.Turn {
	for i := len(m.session.Turns) - 1; i >= 0; i-- {
		t := m.session.Turns[i]
		if t.Role == model.RoleBot && (t.Reasoning != "" || t.ErrorNote != "") {
			return t
		}
	}
	return nil
}

// presetOption resolves a 1-based digit shortcut against the welcome turn's
// options. Returns "" while a request is pending.
func (m *Model) presetOption(n int) string {
	if m.session.Waiting {
		return ""
	}
	for _, t := range m.session.Turns {
		if len(t.Options) > 0 {
			if n >= 1 && n <= len(t.Options) {
				return t.Options[n-1]
			}
			return ""
		}
	}
	return ""
}
