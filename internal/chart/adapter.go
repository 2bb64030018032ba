// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chart decodes chart payloads and hands them to an external viewer.
package chart

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// LAYOUT OVERRIDES
// =============================================================================

// Fixed presentation layer applied on top of every backend-supplied layout.
// Matches the product's house chart styling.
const (
	fontFamily = "Inter, sans-serif"
	fontColor  = "#475569"
)

// overrideLayout returns a copy of the supplied layout with the house
// presentation settings merged in. Backend-supplied keys survive unless a
// house setting claims them.
func overrideLayout(layout map[string]any) map[string]any {
	merged := make(map[string]any, len(layout)+6)
	for k, v := range layout {
		merged[k] = v
	}

	merged["autosize"] = true
	merged["margin"] = map[string]any{"t": 50, "r": 20, "l": 60, "b": 100}
	merged["paper_bgcolor"] = "transparent"
	merged["plot_bgcolor"] = "transparent"
	merged["font"] = map[string]any{"family": fontFamily, "color": fontColor}
	merged["legend"] = map[string]any{"orientation": "h", "y": -0.4, "x": 0}

	return merged
}

// MergedFigure returns the figure JSON for a structured payload with the
// house layout overrides applied. Fails for raster payloads.
func (p *Payload) MergedFigure() ([]byte, error) {
	if p.Kind != KindStructured || p.Spec == nil {
		return nil, &DecodeError{Message: "not a structured chart"}
	}

	data := p.Spec.Data
	if data == nil {
		data = []json.RawMessage{}
	}

	fig := struct {
		Data   []json.RawMessage `json:"data"`
		Layout map[string]any    `json:"layout"`
	}{
		Data:   data,
		Layout: overrideLayout(p.Spec.Layout),
	}

	out, err := json.Marshal(fig)
	if err != nil {
		return nil, &DecodeError{Message: "failed to encode chart figure", Cause: err}
	}
	return out, nil
}

// =============================================================================
// PANEL SUMMARY
// =============================================================================

// Summary returns a short human description of the payload for the chart
// panel shown in the conversation view.
func (p *Payload) Summary() string {
	switch p.Kind {
	case KindRaster:
		return "rendered image"
	case KindStructured:
		n := len(p.Spec.Data)
		kind := "chart"
		if n > 0 {
			// Peek at the first trace's type for a friendlier label.
			var trace struct {
				Type string `json:"type"`
			}
			if err := json.Unmarshal(p.Spec.Data[0], &trace); err == nil && trace.Type != "" {
				kind = trace.Type + " chart"
			}
		}
		if n == 1 {
			return fmt.Sprintf("%s, 1 series", kind)
		}
		return fmt.Sprintf("%s, %d series", kind, n)
	default:
		return ""
	}
}

// Title returns the backend-supplied chart title, if the layout carries one.
func (p *Payload) Title() string {
	if p.Kind != KindStructured || p.Spec == nil {
		return ""
	}

	switch t := p.Spec.Layout["title"].(type) {
	case string:
		return t
	case map[string]any:
		if text, ok := t["text"].(string); ok {
			return text
		}
	}
	return ""
}
