// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/kbot-tui/internal/api"
	"github.com/jeranaias/kbot-tui/internal/chart"
	"github.com/jeranaias/kbot-tui/internal/config"
	"github.com/jeranaias/kbot-tui/internal/format"
	"github.com/jeranaias/kbot-tui/internal/model"
	"github.com/jeranaias/kbot-tui/internal/ui/components"
	"github.com/jeranaias/kbot-tui/internal/ui/styles"
)

// Backend sends chat queries to the analytics backend.
// *api.Client satisfies this; tests substitute a stub.
type Backend interface {
	Chat(ctx context.Context, query string, userID string) (*api.Reply, error)
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat interface.
type Model struct {
	// Collaborators
	session *model.Session
	backend Backend
	viewer  chart.Viewer
	theme   *styles.Theme
	keys    KeyMap

	// Components
	input    textinput.Model
	viewport viewport.Model
	typing   components.TypingIndicator

	// Rendering strategy for bot replies
	markdown bool
	md       *format.MarkdownRenderer

	// Clock labels on turn headers
	showTimestamps bool

	// Request timeout
	timeout time.Duration

	// Layout
	width  int
	height int
	ready  bool

	// UI state
	confirmReset bool
	showHelp     bool
	expanded     map[string]bool // turn ID -> decision path expanded
	opened       map[string]string
	status       string
}

// New creates the chat model from configuration.
func New(cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	theme := styles.NewTheme()

	ti := textinput.New()
	ti.Placeholder = "Ask about the compressor data..."
	ti.Prompt = "> "
	ti.PromptStyle = theme.InputPrompt
	ti.CharLimit = 2000
	ti.Focus()

	session := model.NewSession()
	if cfg.Backend.UserID != "" {
		session.UserID = cfg.Backend.UserID
	}

	timeout := time.Duration(cfg.Backend.TimeoutSecs) * time.Second

	m := Model{
		session: session,
		backend: api.NewClientWithConfig(&api.ClientConfig{
			BaseURL: cfg.Backend.URL,
			Timeout: timeout,
		}),
		viewer:         chart.NewBrowserViewer(),
		theme:          theme,
		keys:           DefaultKeyMap(),
		input:          ti,
		typing:         components.NewTypingIndicator(theme),
		markdown:       cfg.UI.Markdown,
		showTimestamps: cfg.UI.ShowTimestamps,
		timeout:        timeout,
		expanded:       make(map[string]bool),
		opened:         make(map[string]string),
	}

	if m.markdown {
		if md, err := format.NewMarkdownRenderer(80); err == nil {
			m.md = md
		} else {
			m.markdown = false
		}
	}

	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Session exposes the session for transcript export and tests.
func (m Model) Session() *model.Session {
	return m.session
}

// =============================================================================
// BACKEND COMMAND
// =============================================================================

// sendCmd issues the chat request as an async command. The epoch captured
// here tags the eventual reply.
func (m *Model) sendCmd(query string) tea.Cmd {
	epoch := m.session.BeginRequest()
	backend := m.backend
	userID := m.session.UserID
	timeout := m.timeout

	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		reply, err := backend.Chat(ctx, query, userID)
		return ReplyMsg{Epoch: epoch, Reply: reply, Err: err}
	}
}

// openChartCmd hands a turn's chart to the external viewer.
func (m *Model) openChartCmd(turn *model.Turn) tea.Cmd {
	viewer := m.viewer
	payload := turn.Chart
	id := turn.ID

	return func() tea.Msg {
		path, err := viewer.View(payload)
		return ChartOpenedMsg{TurnID: id, Path: path, Err: err}
	}
}
