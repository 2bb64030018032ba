// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chart decodes chart payloads and hands them to an external viewer.
package chart

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// =============================================================================
// EXTERNAL VIEWER
// =============================================================================

// Viewer hands a decoded chart payload to an external renderer. The TUI never
// draws charts itself; the default implementation writes the figure to disk
// and opens it with the system browser.
type Viewer interface {
	// View renders the payload externally and returns the path it was
	// written to.
	View(p *Payload) (string, error)
}

// BrowserViewer writes chart payloads under Dir (os.TempDir by default) and
// opens them with the platform's default handler.
type BrowserViewer struct {
	// Dir is the output directory for generated files.
	Dir string

	// openFn opens a path with the platform handler. Overridable in tests.
	openFn func(path string) error
}

// NewBrowserViewer creates a viewer writing into the system temp directory.
func NewBrowserViewer() *BrowserViewer {
	return &BrowserViewer{Dir: os.TempDir(), openFn: openPath}
}

// View writes the payload to a file (HTML for structured figures, PNG for
// raster images) and opens it.
func (v *BrowserViewer) View(p *Payload) (string, error) {
	if p == nil {
		return "", &DecodeError{Message: "no chart to view"}
	}

	dir := v.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	open := v.openFn
	if open == nil {
		open = openPath
	}

	stamp := time.Now().Format("20060102-150405")

	switch p.Kind {
	case KindStructured:
		var buf bytes.Buffer
		if err := p.WriteHTML(&buf); err != nil {
			return "", err
		}
		path := filepath.Join(dir, fmt.Sprintf("kbot-chart-%s.html", stamp))
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return "", fmt.Errorf("failed to write chart page: %w", err)
		}
		if err := open(path); err != nil {
			return "", fmt.Errorf("failed to open chart page: %w", err)
		}
		return path, nil

	case KindRaster:
		path := filepath.Join(dir, fmt.Sprintf("kbot-chart-%s.png", stamp))
		if err := os.WriteFile(path, p.Image, 0644); err != nil {
			return "", fmt.Errorf("failed to write chart image: %w", err)
		}
		if err := open(path); err != nil {
			return "", fmt.Errorf("failed to open chart image: %w", err)
		}
		return path, nil

	default:
		return "", &DecodeError{Message: "unknown chart payload kind"}
	}
}
