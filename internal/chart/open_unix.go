// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !windows
// +build !windows

// Package chart decodes chart payloads and hands them to an external viewer.
package chart

import (
	"os/exec"
	"runtime"
)

// openPath opens a file with the platform's default handler on Unix/macOS.
func openPath(path string) error {
	if runtime.GOOS == "darwin" {
		return exec.Command("open", path).Start()
	}
	return exec.Command("xdg-open", path).Start()
}
