// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for communicating with the KBot
// analytics backend.
//
// The backend exposes a single chat endpoint; the client posts the user's
// query together with a stable user identifier and receives a structured
// reply carrying the answer text and any optional chart, confidence, or
// reasoning fields.
package api
