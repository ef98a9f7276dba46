package pdf

import "testing"

func TestRectDimensions(t *testing.T) {
	r := Rect{X0: 10, Y0: 20, X1: 110, Y1: 32}

	if r.Width() != 100 {
		t.Errorf("Width() = %g, want 100", r.Width())
	}
	if r.Height() != 12 {
		t.Errorf("Height() = %g, want 12", r.Height())
	}
	if r.Top() != 20 {
		t.Errorf("Top() = %g, want 20", r.Top())
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X0: 100, Y0: 100, X1: 200, Y1: 120}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", Rect{X0: 100, Y0: 100, X1: 200, Y1: 120}, true},
		{"partial overlap", Rect{X0: 150, Y0: 110, X1: 250, Y1: 130}, true},
		{"contained", Rect{X0: 120, Y0: 105, X1: 180, Y1: 115}, true},
		{"touching edges only", Rect{X0: 200, Y0: 100, X1: 300, Y1: 120}, false},
		{"touching corners only", Rect{X0: 200, Y0: 120, X1: 300, Y1: 140}, false},
		{"disjoint horizontally", Rect{X0: 300, Y0: 100, X1: 400, Y1: 120}, false},
		{"disjoint vertically", Rect{X0: 100, Y0: 200, X1: 200, Y1: 220}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestFlipRect(t *testing.T) {
	// A markup rectangle near the top of a US Letter page: bottom-up
	// llx=100 lly=700 urx=300 ury=720 on a 792pt page
	got := flipRect(100, 700, 300, 720, 792)
	want := Rect{X0: 100, Y0: 72, X1: 300, Y1: 92}

	if got != want {
		t.Errorf("flipRect() = %+v, want %+v", got, want)
	}

	if got.Height() != 20 {
		t.Errorf("flipped height = %g, want 20", got.Height())
	}
	if got.Y0 >= got.Y1 {
		t.Error("flipped rect must keep Y0 above Y1 in top-down coordinates")
	}
}
