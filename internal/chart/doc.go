// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chart decodes chart payloads returned by the analytics backend and
hands them to an external viewer for interactive rendering.

A reply may carry a chart in one of two shapes: a structured Plotly figure
(serialized {data, layout} JSON in graph_json) or a pre-rendered raster
image (base64 PNG in graph_base64). FromReply resolves the two optional
fields into a single tagged Payload exactly once, at the conversation-store
boundary; everything downstream switches on Payload.Kind instead of
re-checking raw fields. When both fields are present the structured spec
wins and the raster is ignored.

Structured figures get a fixed presentation override merged over whatever
layout the backend supplied: auto-sizing, house margins, transparent
backgrounds, the product font, and a horizontal legend below the plot area.
The merged figure is then written as a self-contained HTML page and opened
in the browser, where Plotly owns all interactivity (pan, zoom, hover).
This package never draws anything itself.

Malformed payloads fail with *DecodeError; callers omit the chart panel and
render the rest of the turn normally.
*/
package chart
