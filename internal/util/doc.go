// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the kbot TUI.
//
// This package contains common helpers used throughout the application
// for string manipulation and file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth: display-width aware truncation (CJK safe)
//   - StringWidth: display-width measurement for wrapping
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
package util
