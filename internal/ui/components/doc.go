// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the kbot TUI:
// formatted text blocks, the preset option list, the chart panel, the
// metadata panel, and the typing indicator.
package components
