// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/jeranaias/kbot-tui/internal/chart"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleBot:
		return "KBot"
	default:
		return string(r)
	}
}

// =============================================================================
// TURN TYPE
// =============================================================================

// Turn represents a single turn in a chat session: one user query or one
// bot reply, with whatever optional attachments the reply carried.
type Turn struct {
	// Identity
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content
	Text string `json:"text"`

	// Options are suggested queries attached to a bot turn. Only the
	// welcome turn carries them.
	Options []string `json:"options,omitempty"`

	// Chart is the decoded chart payload, if the reply included one.
	Chart *chart.Payload `json:"-"`

	// Metadata attached to bot replies.
	Confidence string `json:"confidence,omitempty"`
	Reasoning  string `json:"reasoning,omitempty"`

	// ErrorNote is a non-fatal error the backend attached to the reply.
	ErrorNote string `json:"error_note,omitempty"`
}

// NewTurn creates a new turn with a generated ID.
func NewTurn(role Role, text string) *Turn {
	return &Turn{
		ID:        generateID(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewUserTurn creates a new user turn.
func NewUserTurn(text string) *Turn {
	return NewTurn(RoleUser, text)
}

// NewBotTurn creates a new bot turn.
func NewBotTurn(text string) *Turn {
	return NewTurn(RoleBot, text)
}

// =============================================================================
// TURN METHODS
// =============================================================================

// FormattedTime returns the turn's timestamp as a short clock label,
// e.g. "3:04 PM".
func (t *Turn) FormattedTime() string {
	return t.Timestamp.Format("3:04 PM")
}

// HasChart returns true if the turn carries a chart payload.
func (t *Turn) HasChart() bool {
	return t.Chart != nil
}

// HasMetadata returns true if the turn carries confidence, reasoning, or an
// error note worth showing in the metadata panel.
func (t *Turn) HasMetadata() bool {
	return t.Confidence != "" || t.Reasoning != "" || t.ErrorNote != ""
}

// IsEmpty returns true if the turn has no text.
func (t *Turn) IsEmpty() bool {
	return len(t.Text) == 0
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateID creates a unique turn ID.
func generateID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "turn_" + hex.EncodeToString(bytes)
}
