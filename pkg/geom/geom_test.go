package geom

import "testing"

func TestPointAddIsPure(t *testing.T) {
	p := Point{X: 1, Y: 2}
	v := Vector{X: 3, Y: 4}
	q := p.Add(v)

	if p != (Point{X: 1, Y: 2}) {
		t.Fatalf("Add mutated receiver: %+v", p)
	}
	if q != (Point{X: 4, Y: 6}) {
		t.Fatalf("Add = %+v, want {4 6}", q)
	}
}

func TestRectInflate(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}
	got := r.Inflate(2)
	want := Rect{Left: -2, Top: -2, Right: 12, Bottom: 12}
	if got != want {
		t.Fatalf("Inflate(2) = %+v, want %+v", got, want)
	}
	if zero := r.Inflate(0); zero != r {
		t.Fatalf("Inflate(0) = %+v, want unchanged %+v", zero, r)
	}
}

func TestRectOverlap(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Rect
		horiz  bool
		vert   bool
		overlp bool
	}{
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 30, 30}, false, false, false},
		{"touching-edges-not-overlap", Rect{0, 0, 10, 10}, Rect{10, 0, 20, 10}, false, true, false},
		{"overlapping", Rect{0, 0, 10, 10}, Rect{5, 5, 15, 15}, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.OverlapsHorizontally(tt.b); got != tt.horiz {
				t.Errorf("OverlapsHorizontally = %v, want %v", got, tt.horiz)
			}
			if got := tt.a.OverlapsVertically(tt.b); got != tt.vert {
				t.Errorf("OverlapsVertically = %v, want %v", got, tt.vert)
			}
			if got := tt.a.Overlaps(tt.b); got != tt.overlp {
				t.Errorf("Overlaps = %v, want %v", got, tt.overlp)
			}
		})
	}
}

func TestRectAreaDegenerate(t *testing.T) {
	zero := Rect{Left: 5, Top: 5, Right: 5, Bottom: 9}
	if a := zero.Area(); a != 0 {
		t.Fatalf("Area of zero-width rect = %v, want 0", a)
	}
	if !zero.Empty() {
		t.Fatalf("zero-width rect should be Empty")
	}
}
