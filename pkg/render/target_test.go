package render

import (
	"strings"
	"testing"
)

func TestSVGTargetRoundTripsRectFillAndStroke(t *testing.T) {
	target := NewSVGTarget(100, 50)
	target.Rect(10, 20).Move(1, 2).Fill("red").Stroke("blue").StrokeWidth(3)
	svg := string(target.Bytes())

	for _, want := range []string{
		`viewBox="0 0 100 50"`,
		`width="10"`, `height="20"`,
		`x="1"`, `y="2"`,
		`fill="red"`, `stroke="blue"`, `stroke-width="3"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG output missing %q: %s", want, svg)
		}
	}
}

func TestSVGTargetTextEscapesContent(t *testing.T) {
	target := NewSVGTarget(10, 10)
	target.Text("<tag>").Move(0, 0)
	svg := string(target.Bytes())
	if strings.Contains(svg, "<tag>") {
		t.Errorf("text content was not escaped: %s", svg)
	}
	if !strings.Contains(svg, "&lt;tag&gt;") {
		t.Errorf("expected escaped text, got: %s", svg)
	}
}

func TestSVGTargetDefaultsToNoneFillAndStroke(t *testing.T) {
	target := NewSVGTarget(10, 10)
	target.Rect(1, 1)
	svg := string(target.Bytes())
	if !strings.Contains(svg, `fill="none"`) {
		t.Errorf("expected default fill=none: %s", svg)
	}
}
