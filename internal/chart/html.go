// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chart decodes chart payloads and hands them to an external viewer.
package chart

import (
	"html/template"
	"io"
)

// =============================================================================
// HTML PAGE GENERATION
// =============================================================================

// pageTemplate wraps a merged figure in a self-contained page. Plotly (the
// external drawing collaborator) owns all interactivity; this client only
// supplies the figure and the page shell.
var pageTemplate = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
<style>
  html, body { margin: 0; height: 100%; background: #fdfdfd; }
  #chart { width: 100%; height: 100%; }
</style>
</head>
<body>
<div id="chart"></div>
<script>
  var fig = {{.Figure}};
  Plotly.newPlot("chart", fig.data, fig.layout, {responsive: true, displayModeBar: false});
</script>
</body>
</html>
`))

// WriteHTML writes a structured payload as a standalone interactive page.
func (p *Payload) WriteHTML(w io.Writer) error {
	fig, err := p.MergedFigure()
	if err != nil {
		return err
	}

	title := p.Title()
	if title == "" {
		title = "KBot Chart"
	}

	return pageTemplate.Execute(w, struct {
		Title  string
		Figure template.JS
	}{
		Title:  title,
		Figure: template.JS(fig),
	})
}
