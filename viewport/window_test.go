package viewport

import "testing"

func TestBoundaries(t *testing.T) {
	tests := []struct {
		name                        string
		scroll, item, client, maxIx int
		wantMin, wantMax            int
	}{
		{"scrolled into list", 120, 50, 200, 99, 2, 6},
		{"top", 0, 50, 200, 99, 0, 4},
		{"clamped to last", 4800, 50, 200, 99, 96, 99},
		{"exact fit", 100, 50, 100, 99, 2, 4},
		{"zero client", 75, 10, 0, 20, 7, 7},
		{"single item", 0, 5, 100, 0, 0, 0},
		{"negative scroll", -30, 10, 40, 9, 0, 4},
		{"scroll past content", 10000, 10, 40, 9, 9, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin, gotMax := Boundaries(tt.scroll, tt.item, tt.client, tt.maxIx)
			if gotMin != tt.wantMin || gotMax != tt.wantMax {
				t.Fatalf("Boundaries(%d, %d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.scroll, tt.item, tt.client, tt.maxIx, gotMin, gotMax, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestBoundariesProperties(t *testing.T) {
	for scroll := 0; scroll <= 300; scroll += 7 {
		for item := 1; item <= 40; item += 3 {
			for client := 0; client <= 120; client += 11 {
				for maxIx := 0; maxIx <= 30; maxIx += 5 {
					lo, hi := Boundaries(scroll, item, client, maxIx)
					if lo < 0 || hi > maxIx {
						t.Fatalf("Boundaries(%d, %d, %d, %d) = (%d, %d) out of [0, %d]", scroll, item, client, maxIx, lo, hi, maxIx)
					}
					if client > 0 && lo > hi {
						t.Fatalf("Boundaries(%d, %d, %d, %d) = (%d, %d), min > max", scroll, item, client, maxIx, lo, hi)
					}
					lo2, hi2 := Boundaries(scroll, item, client, maxIx)
					if lo != lo2 || hi != hi2 {
						t.Fatalf("Boundaries not deterministic: (%d, %d) then (%d, %d)", lo, hi, lo2, hi2)
					}
				}
			}
		}
	}
}

func TestBoundariesMaxScroll(t *testing.T) {
	const item, client, count = 7, 30, 50
	maxScroll := item*count - client
	if _, hi := Boundaries(maxScroll, item, client, count-1); hi != count-1 {
		t.Fatalf("max at full scroll = %d, want %d", hi, count-1)
	}
}

func TestBoundariesPanicsOnUnsizedItem(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero item size")
		}
	}()
	Boundaries(0, 0, 10, 10)
}

func TestAxisRange(t *testing.T) {
	tests := []struct {
		name                        string
		scroll, item, client, count int
		want                        Range
	}{
		{"unknown client", 0, 10, Unknown, 100, EmptyRange},
		{"unknown client beats unsized", 0, 0, Unknown, 100, EmptyRange},
		{"unsized axis", 500, 0, 80, 100, Range{0, 0}},
		{"unsized axis zero client", 0, 0, 0, 1, Range{0, 0}},
		{"sized axis", 120, 50, 200, 100, Range{2, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AxisRange(tt.scroll, tt.item, tt.client, tt.count); got != tt.want {
				t.Fatalf("AxisRange = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRange(t *testing.T) {
	if !EmptyRange.Empty() || EmptyRange.Len() != 0 || EmptyRange.Contains(0) {
		t.Fatalf("EmptyRange should hold nothing: %+v", EmptyRange)
	}
	r := Range{Min: 3, Max: 5}
	if r.Empty() || r.Len() != 3 || !r.Contains(3) || !r.Contains(5) || r.Contains(6) {
		t.Fatalf("unexpected range behaviour for %+v", r)
	}
}

func TestTranslate(t *testing.T) {
	p := Translate(12, 30, true)
	if p.X != 12 || p.Y != 30 || !p.Positioning {
		t.Fatalf("Translate = %+v", p)
	}
	if Translate(1, 2, false).Positioning {
		t.Fatal("positioning should follow the argument")
	}
}
