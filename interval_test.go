package lambertw

import "testing"

func TestIntervalWidth(t *testing.T) {
	iv64 := Interval64{Inf: 1.0, Sup: nextUp64(1.0)}
	if w := iv64.Width(); w <= 0 {
		t.Fatalf("expected positive width, got %v", w)
	}

	iv32 := Interval32{Inf: 1.0, Sup: nextUp32(1.0)}
	if w := iv32.Width(); w <= 0 {
		t.Fatalf("expected positive width, got %v", w)
	}

	point := Interval64{Inf: 2.0, Sup: 2.0}
	if w := point.Width(); w != 0 {
		t.Fatalf("expected zero width for a point interval, got %v", w)
	}
}
