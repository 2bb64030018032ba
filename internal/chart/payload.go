// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chart decodes chart payloads and hands them to an external viewer.
package chart

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// =============================================================================
// ERROR TYPE
// =============================================================================

// DecodeError reports a chart payload that could not be decoded. The
// surrounding turn still renders; only the chart panel is omitted.
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// IsDecodeError reports whether err is a chart decode failure.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// =============================================================================
// PAYLOAD UNION
// =============================================================================

// Kind discriminates the two chart payload variants.
type Kind int

const (
	// KindStructured is a declarative Plotly figure (data + layout).
	KindStructured Kind = iota + 1
	// KindRaster is a pre-rendered PNG image.
	KindRaster
)

// Spec is a structured chart description: trace data plus layout, matching
// the Plotly figure shape the backend serializes into graph_json. Traces are
// kept as raw JSON; this client styles the layout but never interprets the
// series themselves.
type Spec struct {
	Data   []json.RawMessage `json:"data"`
	Layout map[string]any    `json:"layout"`
}

// Payload is the resolved chart attachment for one turn: exactly one of the
// variant fields is populated according to Kind.
type Payload struct {
	Kind  Kind
	Spec  *Spec
	Image []byte
}

// FromReply resolves the backend's optional graph_json / graph_base64 fields
// into a single Payload. Returns (nil, nil) when the reply carries no chart.
// Structured specs take precedence when both fields are present.
func FromReply(graphJSON, graphB64 string) (*Payload, error) {
	if graphJSON != "" {
		var spec Spec
		if err := json.Unmarshal([]byte(graphJSON), &spec); err != nil {
			return nil, &DecodeError{Message: "invalid chart specification", Cause: err}
		}
		if spec.Layout == nil {
			spec.Layout = make(map[string]any)
		}
		return &Payload{Kind: KindStructured, Spec: &spec}, nil
	}

	if graphB64 != "" {
		img, err := base64.StdEncoding.DecodeString(graphB64)
		if err != nil {
			return nil, &DecodeError{Message: "invalid chart image encoding", Cause: err}
		}
		if len(img) == 0 {
			return nil, &DecodeError{Message: "empty chart image"}
		}
		return &Payload{Kind: KindRaster, Image: img}, nil
	}

	return nil, nil
}
