package layout

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

func TestFragmentsInfoReportsLineNumbersInDocumentOrder(t *testing.T) {
	tr := tree.Node(0, tree.Style{},
		tree.Atom("a"),
		tree.Newline(),
		tree.Atom("b"),
		tree.Newline(),
		tree.Atom("c"),
	)
	n := build(t, tr)

	res, err := Blocks{}.Layout(n, DefaultSettings())
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	infos := res.FragmentsInfo()
	if len(infos) != 3 {
		t.Fatalf("len(infos) = %d, want 3", len(infos))
	}
	for i, want := range []int{0, 1, 2} {
		if infos[i].LineNo != want {
			t.Errorf("infos[%d].LineNo = %d, want %d", i, infos[i].LineNo, want)
		}
	}
}

func TestBoundingBoxReportsFalseForEmptyResult(t *testing.T) {
	var r Result
	if _, ok := r.BoundingBox(); ok {
		t.Error("BoundingBox() ok = true for empty Result, want false")
	}
}

type fakeCall struct{ calls *[]string }

func (f fakeCall) Move(x, y float64) RectCall    { *f.calls = append(*f.calls, "move"); return f }
func (f fakeCall) Fill(c string) RectCall        { *f.calls = append(*f.calls, "fill"); return f }
func (f fakeCall) Stroke(c string) RectCall      { *f.calls = append(*f.calls, "stroke"); return f }
func (f fakeCall) StrokeWidth(n float64) RectCall { *f.calls = append(*f.calls, "strokeWidth"); return f }

type fakeText struct{ calls *[]string }

func (f fakeText) Font(name string, px float64) TextCall { *f.calls = append(*f.calls, "font"); return f }
func (f fakeText) Move(x, y float64) TextCall             { *f.calls = append(*f.calls, "textMove"); return f }

type fakeTarget struct {
	calls []string
}

func (f *fakeTarget) Rect(w, h float64) RectCall { f.calls = append(f.calls, "rect"); return fakeCall{&f.calls} }
func (f *fakeTarget) Line(x1, y1, x2, y2 float64) LineCall {
	f.calls = append(f.calls, "line")
	return nil
}
func (f *fakeTarget) Path(d string) PathCall { f.calls = append(f.calls, fmt.Sprintf("path:%s", d)); return nil }
func (f *fakeTarget) Text(s string) TextCall {
	f.calls = append(f.calls, "text:"+s)
	return fakeText{&f.calls}
}

func TestRenderDrawsWrapsAndFragments(t *testing.T) {
	tr := tree.Node(0, tree.Style{}, tree.Atom("hi"))
	n := build(t, tr)
	res, err := Blocks{}.Layout(n, DefaultSettings())
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	ft := &fakeTarget{}
	res.Render(ft)

	joined := strings.Join(ft.calls, ",")
	if !strings.Contains(joined, "rect") {
		t.Errorf("Render did not draw a rect for the Wrap: %v", ft.calls)
	}
	if !strings.Contains(joined, "text:hi") {
		t.Errorf("Render did not draw fragment text: %v", ft.calls)
	}
}
