// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the kbot TUI.
//
// The chat model owns the session history, the input line, and the scrolling
// transcript viewport. Backend requests run as Bubble Tea commands; their
// replies arrive as messages tagged with the session epoch so replies from
// before a reset are discarded.
package chat
