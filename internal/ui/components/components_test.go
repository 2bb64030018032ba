// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/kbot-tui/internal/chart"
	"github.com/jeranaias/kbot-tui/internal/format"
	"github.com/jeranaias/kbot-tui/internal/model"
	"github.com/jeranaias/kbot-tui/internal/ui/styles"
)

func testTheme() *styles.Theme {
	lipgloss.SetColorProfile(termenv.Ascii)
	return styles.NewTheme()
}

// =============================================================================
// TEXT BLOCK TESTS
// =============================================================================

func TestRenderBlocksParagraphAndBullets(t *testing.T) {
	theme := testTheme()
	blocks := format.Format("Summary:\n* first item\n* second item")

	out := RenderBlocks(blocks, theme, 80)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if lines[0] != "Summary:" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "- ") || !strings.Contains(lines[1], "first item") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestRenderBlocksKeepsBlankLines(t *testing.T) {
	theme := testTheme()
	blocks := format.Format("one\n\ntwo")

	out := RenderBlocks(blocks, theme, 80)
	if out != "one\n\ntwo" {
		t.Errorf("RenderBlocks = %q", out)
	}
}

func TestRenderBlocksStripsBoldMarkers(t *testing.T) {
	theme := testTheme()
	blocks := format.Format("The **answer** is 42")

	out := RenderBlocks(blocks, theme, 80)
	if strings.Contains(out, "**") {
		t.Errorf("bold delimiters leaked: %q", out)
	}
	if !strings.Contains(out, "answer") {
		t.Errorf("bold text missing: %q", out)
	}
}

func TestRenderBlocksWrapsLongParagraphs(t *testing.T) {
	theme := testTheme()
	blocks := format.Format(strings.Repeat("word ", 30))

	out := RenderBlocks(blocks, theme, 40)
	for i, line := range strings.Split(out, "\n") {
		if len(line) > 40 {
			t.Errorf("line %d too long (%d): %q", i, len(line), line)
		}
	}
}

// =============================================================================
// OPTION LIST TESTS
// =============================================================================

func TestOptionListView(t *testing.T) {
	theme := testTheme()
	list := NewOptionList([]string{"first query", "second query"}, theme)

	out := list.View()
	if !strings.Contains(out, "1. first query") {
		t.Errorf("missing numbered option: %q", out)
	}
	if !strings.Contains(out, "2. second query") {
		t.Errorf("missing numbered option: %q", out)
	}
}

func TestOptionListPick(t *testing.T) {
	theme := testTheme()
	list := NewOptionList([]string{"a", "b", "c"}, theme)

	if got := list.Pick(1); got != "a" {
		t.Errorf("Pick(1) = %q", got)
	}
	if got := list.Pick(3); got != "c" {
		t.Errorf("Pick(3) = %q", got)
	}
	if got := list.Pick(0); got != "" {
		t.Errorf("Pick(0) = %q, want empty", got)
	}
	if got := list.Pick(4); got != "" {
		t.Errorf("Pick(4) = %q, want empty", got)
	}
}

func TestOptionListEmpty(t *testing.T) {
	theme := testTheme()
	list := NewOptionList(nil, theme)
	if got := list.View(); got != "" {
		t.Errorf("View() = %q, want empty", got)
	}
}

// =============================================================================
// METADATA PANEL TESTS
// =============================================================================

func TestMetadataPanelCollapsed(t *testing.T) {
	theme := testTheme()
	turn := model.NewBotTurn("answer")
	turn.Confidence = "high"
	turn.Reasoning = "joined on dealer id"

	panel := NewMetadataPanel(turn, theme)
	out := panel.View()

	if !strings.Contains(out, "HIGH") {
		t.Errorf("missing confidence badge: %q", out)
	}
	if strings.Contains(out, "joined on dealer id") {
		t.Errorf("reasoning shown while collapsed: %q", out)
	}
	if !strings.Contains(out, "press d") {
		t.Errorf("missing expand hint: %q", out)
	}
}

func TestMetadataPanelExpanded(t *testing.T) {
	theme := testTheme()
	turn := model.NewBotTurn("answer")
	turn.Confidence = "low"
	turn.Reasoning = "fuzzy column match"
	turn.ErrorNote = "two rows dropped"

	panel := NewMetadataPanel(turn, theme)
	panel.Expanded = true
	out := panel.View()

	if !strings.Contains(out, "Decision Path") {
		t.Errorf("missing decision path header: %q", out)
	}
	if !strings.Contains(out, "fuzzy column match") {
		t.Errorf("missing reasoning: %q", out)
	}
	if !strings.Contains(out, "two rows dropped") {
		t.Errorf("missing error note: %q", out)
	}
}

func TestMetadataPanelEmptyTurn(t *testing.T) {
	theme := testTheme()
	panel := NewMetadataPanel(model.NewBotTurn("plain answer"), theme)
	if got := panel.View(); got != "" {
		t.Errorf("View() = %q, want empty", got)
	}
}

// =============================================================================
// CHART PANEL TESTS
// =============================================================================

func TestChartPanelView(t *testing.T) {
	theme := testTheme()
	p, err := chart.FromReply(`{"data":[{"type":"bar"}],"layout":{"title":"Run Hours"}}`, "")
	if err != nil {
		t.Fatal(err)
	}

	panel := NewChartPanel(p, theme)
	out := panel.View()

	if !strings.Contains(out, "Run Hours") {
		t.Errorf("missing title: %q", out)
	}
	if !strings.Contains(out, "bar chart, 1 series") {
		t.Errorf("missing summary: %q", out)
	}
	if !strings.Contains(out, "press o") {
		t.Errorf("missing open hint: %q", out)
	}
}

func TestChartPanelOpened(t *testing.T) {
	theme := testTheme()
	p, err := chart.FromReply(`{"data":[],"layout":{}}`, "")
	if err != nil {
		t.Fatal(err)
	}

	panel := NewChartPanel(p, theme)
	panel.OpenedPath = "/tmp/kbot-chart-x.html"
	out := panel.View()

	if !strings.Contains(out, "/tmp/kbot-chart-x.html") {
		t.Errorf("missing opened path: %q", out)
	}
	if strings.Contains(out, "press o") {
		t.Errorf("open hint shown after opening: %q", out)
	}
}

func TestChartPanelNilPayload(t *testing.T) {
	theme := testTheme()
	panel := NewChartPanel(nil, theme)
	if got := panel.View(); got != "" {
		t.Errorf("View() = %q, want empty", got)
	}
}

// =============================================================================
// TYPING INDICATOR TESTS
// =============================================================================

func TestTypingIndicatorLifecycle(t *testing.T) {
	theme := testTheme()
	ti := NewTypingIndicator(theme)

	if ti.IsActive() {
		t.Error("indicator should start inactive")
	}
	if got := ti.View(); got != "" {
		t.Errorf("inactive View() = %q, want empty", got)
	}

	cmd := ti.Start()
	if cmd == nil {
		t.Error("Start should return a tick command")
	}
	if !ti.IsActive() {
		t.Error("indicator should be active after Start")
	}
	if out := ti.View(); !strings.Contains(out, "KBot") || !strings.Contains(out, "typing") {
		t.Errorf("active View() = %q", out)
	}

	ti.Stop()
	if ti.IsActive() {
		t.Error("indicator should be inactive after Stop")
	}
}

// =============================================================================
// HELPER TESTS
// =============================================================================

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "short text", 20, "short text"},
		{"wraps", "one two three four", 9, "one two\nthree\nfour"},
		{"long word kept", "supercalifragilistic", 5, "supercalifragilistic"},
		{"zero width", "a b", 0, "a b"},
		// CJK words are double-width: two 4-column words plus the space
		// don't fit in 8 columns.
		{"cjk wraps by columns", "日本 語語", 8, "日本\n語語"},
		{"cjk fits by columns", "日本 語語", 9, "日本 語語"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := wordWrap(tc.in, tc.width); got != tc.want {
				t.Errorf("wordWrap(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
			}
		})
	}
}
