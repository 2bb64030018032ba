// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxTurns is the maximum number of turns to keep in session history.
// When exceeded, old turns are pruned to prevent unbounded memory growth.
const MaxTurns = 1000

// WelcomeText is the greeting shown when a session starts or is reset.
const WelcomeText = "Welcome to Kirloskar Pneumatic Company Limited! How can I assist you today?\n\n" +
	"Please choose from the following options or type your own question:"

// PresetOptions are the suggested analytics queries attached to the
// welcome turn.
var PresetOptions = []string{
	"Plot a horizontal bar chart of the top 10 'Dealer Name' by average 'RunHrs'",
	"Plot a line chart showing the total number of complaints logged per year",
	"How many unique Compressor 'Model' types do we have?",
	"Which 'Dealer Name' has the highest number of logged complaints?",
	"How many rows mention the word 'leak' or 'vibration' in the 'Nature of complaint' column?",
	"What is the most frequently mentioned item in the 'Spares / Part Replaced' column?",
}

// =============================================================================
// SESSION TYPE
// =============================================================================

// Session holds a complete chat session with history and request state.
type Session struct {
	// Identity. UserID is a stable per-session identifier sent with every
	// backend request so server-side memory can track the conversation.
	ID     string    `json:"id"`
	UserID string    `json:"user_id"`
	Turns  []*Turn   `json:"turns"`
	Start  time.Time `json:"start"`

	// Waiting is true while a backend request is in flight.
	Waiting bool `json:"-"`

	// epoch counts resets. Replies from requests issued before the latest
	// reset carry a stale epoch and are discarded.
	epoch int
}

// NewSession creates a session seeded with the welcome turn.
func NewSession() *Session {
	s := &Session{
		ID:     uuid.NewString(),
		UserID: "tui-" + uuid.NewString(),
		Start:  time.Now(),
		Turns:  make([]*Turn, 0, 16),
	}
	s.appendWelcome()
	return s
}

// appendWelcome adds the greeting turn with the preset query options.
func (s *Session) appendWelcome() {
	welcome := NewBotTurn(WelcomeText)
	welcome.Options = append([]string(nil), PresetOptions...)
	s.Turns = append(s.Turns, welcome)
}

// =============================================================================
// TURN MANAGEMENT
// =============================================================================

// Append adds a turn to the session.
func (s *Session) Append(t *Turn) {
	s.Turns = append(s.Turns, t)
	s.pruneOldTurns()
}

// AppendUserTurn creates and adds a user turn.
func (s *Session) AppendUserTurn(text string) *Turn {
	t := NewUserTurn(text)
	s.Append(t)
	return t
}

// AppendBotTurn creates and adds a bot turn.
func (s *Session) AppendBotTurn(text string) *Turn {
	t := NewBotTurn(text)
	s.Append(t)
	return t
}

// LastTurn returns the most recent turn, or nil if empty.
func (s *Session) LastTurn() *Turn {
	if len(s.Turns) == 0 {
		return nil
	}
	return s.Turns[len(s.Turns)-1]
}

// LastUserTurn returns the most recent user turn.
func (s *Session) LastUserTurn() *Turn {
	for i := len(s.Turns) - 1; i >= 0; i-- {
		if s.Turns[i].Role == RoleUser {
			return s.Turns[i]
		}
	}
	return nil
}

// TurnCount returns the number of turns.
func (s *Session) TurnCount() int {
	return len(s.Turns)
}

// =============================================================================
// RESET AND REQUEST STATE
// =============================================================================

// Reset clears the history back to a fresh welcome turn. Any in-flight
// request is invalidated: its reply will arrive with a stale epoch.
func (s *Session) Reset() {
	s.Turns = s.Turns[:0]
	s.appendWelcome()
	s.Waiting = false
	s.epoch++
}

// Epoch returns the current reset epoch.
func (s *Session) Epoch() int {
	return s.epoch
}

// BeginRequest marks a request as in flight and returns the epoch it
// belongs to.
func (s *Session) BeginRequest() int {
	s.Waiting = true
	return s.epoch
}

// EndRequest clears the waiting flag if the finished request belongs to the
// current epoch. Returns true if the reply should be applied, false if it is
// stale and must be discarded.
func (s *Session) EndRequest(epoch int) bool {
	if epoch != s.epoch {
		return false
	}
	s.Waiting = false
	return true
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// pruneOldTurns removes old turns when history exceeds MaxTurns. The welcome
// turn is always kept at the front.
func (s *Session) pruneOldTurns() {
	if len(s.Turns) <= MaxTurns {
		return
	}

	welcome := s.Turns[0]
	rest := s.Turns[len(s.Turns)-(MaxTurns-1):]

	s.Turns = make([]*Turn, 0, MaxTurns)
	s.Turns = append(s.Turns, welcome)
	s.Turns = append(s.Turns, rest...)
}
