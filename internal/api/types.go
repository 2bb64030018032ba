// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ChatRequest is the body posted to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// Reply is the backend's answer to a chat request. All fields besides Answer
// are optional; absent fields decode to their zero values.
type Reply struct {
	// Answer is the assistant's textual response.
	Answer string `json:"answer"`

	// GraphJSON carries a serialized Plotly figure when the answer includes
	// a structured chart.
	GraphJSON string `json:"graph_json,omitempty"`

	// GraphBase64 carries a base64-encoded PNG when the backend rendered
	// the chart itself.
	GraphBase64 string `json:"graph_base64,omitempty"`

	// Confidence is the backend's self-assessed confidence label
	// (e.g. "high", "medium", "low").
	Confidence string `json:"confidence,omitempty"`

	// Reasoning is the backend's decision-path explanation for the answer.
	Reasoning string `json:"reasoning,omitempty"`

	// Error is a non-fatal error note attached to an otherwise usable reply.
	Error string `json:"error,omitempty"`
}

// errorDetail is the FastAPI-style error body returned on non-2xx statuses.
type errorDetail struct {
	Detail string `json:"detail"`
}
