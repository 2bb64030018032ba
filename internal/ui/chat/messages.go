// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/jeranaias/kbot-tui/internal/api"
)

// =============================================================================
// BACKEND MESSAGES
// =============================================================================

// ReplyMsg delivers the backend's reply (or the request error) for a chat
// request. Epoch identifies which session generation the request belonged
// to; replies with a stale epoch are dropped.
type ReplyMsg struct {
	Epoch int
	Reply *api.Reply
	Err   error
}

// =============================================================================
// CHART MESSAGES
// =============================================================================

// ChartOpenedMsg reports the result of handing a chart to the external
// viewer.
type ChartOpenedMsg struct {
	TurnID string
	Path   string
	Err    error
}

// =============================================================================
// EXPORT MESSAGES
// =============================================================================

// ExportDoneMsg reports the result of a transcript export.
type ExportDoneMsg struct {
	Path string
	Err  error
}
