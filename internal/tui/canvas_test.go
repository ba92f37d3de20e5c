package tui

import (
	"strings"
	"testing"

	"github.com/sbcohen2000/raggedblocks/pkg/geom"
	"github.com/sbcohen2000/raggedblocks/pkg/layout"
)

func TestCanvasDrawBoxAndText(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawBox(0, 0, 5, 3)
	c.PutText(1, 1, "hi")

	s := c.String()
	lines := strings.Split(s, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "┌────┐") {
		t.Errorf("unexpected top border: %q", lines[0])
	}
	if !strings.Contains(lines[1], "hi") {
		t.Errorf("expected text on row 1: %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "└────┘") {
		t.Errorf("unexpected bottom border: %q", lines[3])
	}
}

func TestCanvasOutOfBoundsIsIgnored(t *testing.T) {
	c := NewCanvas(3, 3)
	c.PutText(-5, -5, "ignored")
	c.PutText(100, 100, "also ignored")
	c.DrawBox(-1, -1, 100, 100)
}

func TestRenderBuildsCanvasFromResult(t *testing.T) {
	res := layout.Result{
		Bounds: geom.Rect{Left: 0, Top: 0, Right: 60, Bottom: 24},
		Fragments: []layout.Fragment{
			{Column: 0, Text: "hello", Rect: geom.Rect{Left: 0, Top: 0, Right: 30, Bottom: 12}},
			{Column: 1, Text: " ", IsSpacer: true, Rect: geom.Rect{Left: 30, Top: 0, Right: 36, Bottom: 12}},
		},
		Wraps: []layout.WrapBox{
			{ID: 1, Rect: geom.Rect{Left: 0, Top: 0, Right: 60, Bottom: 24}},
		},
	}

	c := Render(res, 6, 12)
	s := c.String()
	if !strings.Contains(s, "hello") {
		t.Errorf("expected fragment text in rendered canvas: %q", s)
	}
	if !strings.Contains(s, "┌") {
		t.Errorf("expected a wrap border in rendered canvas: %q", s)
	}
}

func TestSplitAndClipLines(t *testing.T) {
	lines := splitLines("abc\ndef\nghi")
	if len(lines) != 3 || lines[1] != "def" {
		t.Fatalf("unexpected split: %#v", lines)
	}

	if got := clipLine("abcdefgh", 2, 3); got != "cde" {
		t.Errorf("clipLine = %q, want %q", got, "cde")
	}
	if got := clipLine("abc", 10, 5); got != "" {
		t.Errorf("clipLine past end = %q, want empty", got)
	}
}
