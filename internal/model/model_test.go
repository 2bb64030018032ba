// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
	"time"
)

// =============================================================================
// TURN TESTS
// =============================================================================

func TestRoleDisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleBot, "KBot"},
		{Role("other"), "other"},
	}

	for _, tc := range tests {
		if got := tc.role.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}

func TestNewTurnGeneratesUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		turn := NewUserTurn("q")
		if turn.ID == "" {
			t.Fatal("expected non-empty ID")
		}
		if !strings.HasPrefix(turn.ID, "turn_") {
			t.Fatalf("unexpected ID format: %q", turn.ID)
		}
		if seen[turn.ID] {
			t.Fatalf("duplicate ID: %q", turn.ID)
		}
		seen[turn.ID] = true
	}
}

func TestFormattedTime(t *testing.T) {
	turn := NewBotTurn("hi")
	turn.Timestamp = time.Date(2025, 6, 1, 15, 4, 0, 0, time.UTC)
	if got := turn.FormattedTime(); got != "3:04 PM" {
		t.Errorf("FormattedTime() = %q, want %q", got, "3:04 PM")
	}

	turn.Timestamp = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	if got := turn.FormattedTime(); got != "9:30 AM" {
		t.Errorf("FormattedTime() = %q, want %q", got, "9:30 AM")
	}
}

func TestTurnHasMetadata(t *testing.T) {
	turn := NewBotTurn("answer")
	if turn.HasMetadata() {
		t.Error("bare turn should have no metadata")
	}

	turn.Confidence = "high"
	if !turn.HasMetadata() {
		t.Error("expected metadata with confidence set")
	}

	turn = NewBotTurn("answer")
	turn.ErrorNote = "partial result"
	if !turn.HasMetadata() {
		t.Error("expected metadata with error note set")
	}
}

// =============================================================================
// SESSION TESTS
// =============================================================================

func TestNewSessionSeedsWelcome(t *testing.T) {
	s := NewSession()

	if s.TurnCount() != 1 {
		t.Fatalf("TurnCount() = %d, want 1", s.TurnCount())
	}

	welcome := s.Turns[0]
	if welcome.Role != RoleBot {
		t.Errorf("welcome role = %q, want bot", welcome.Role)
	}
	if !strings.Contains(welcome.Text, "Kirloskar Pneumatic") {
		t.Errorf("unexpected welcome text: %q", welcome.Text)
	}
	if len(welcome.Options) != 6 {
		t.Errorf("welcome options = %d, want 6", len(welcome.Options))
	}
	if s.UserID == "" || s.ID == "" {
		t.Error("expected generated session and user IDs")
	}
}

func TestSessionAppendAndLast(t *testing.T) {
	s := NewSession()
	s.AppendUserTurn("first")
	s.AppendBotTurn("reply")
	s.AppendUserTurn("second")

	if got := s.LastTurn().Text; got != "second" {
		t.Errorf("LastTurn().Text = %q, want %q", got, "second")
	}
	if got := s.LastUserTurn().Text; got != "second" {
		t.Errorf("LastUserTurn().Text = %q, want %q", got, "second")
	}
	if s.TurnCount() != 4 {
		t.Errorf("TurnCount() = %d, want 4", s.TurnCount())
	}
}

func TestSessionResetRestoresWelcome(t *testing.T) {
	s := NewSession()
	s.AppendUserTurn("q")
	s.AppendBotTurn("a")
	s.Waiting = true

	s.Reset()

	if s.TurnCount() != 1 {
		t.Fatalf("TurnCount() after reset = %d, want 1", s.TurnCount())
	}
	if s.Turns[0].Role != RoleBot || len(s.Turns[0].Options) != 6 {
		t.Error("reset did not restore the welcome turn")
	}
	if s.Waiting {
		t.Error("reset should clear the waiting flag")
	}
}

func TestSessionEpochDiscardsStaleReplies(t *testing.T) {
	s := NewSession()

	epoch := s.BeginRequest()
	if !s.Waiting {
		t.Fatal("BeginRequest should set waiting")
	}

	// Reset while the request is in flight.
	s.Reset()

	if s.EndRequest(epoch) {
		t.Error("reply from before the reset should be discarded")
	}

	// A fresh request on the new epoch still completes.
	epoch = s.BeginRequest()
	if !s.EndRequest(epoch) {
		t.Error("reply on the current epoch should be applied")
	}
	if s.Waiting {
		t.Error("EndRequest should clear the waiting flag")
	}
}

func TestSessionPruneKeepsWelcome(t *testing.T) {
	s := NewSession()
	for i := 0; i < MaxTurns+50; i++ {
		s.AppendUserTurn("q")
	}

	if s.TurnCount() != MaxTurns {
		t.Fatalf("TurnCount() = %d, want %d", s.TurnCount(), MaxTurns)
	}
	if len(s.Turns[0].Options) != 6 {
		t.Error("pruning must keep the welcome turn at the front")
	}
}
