package lambertw

import "testing"

func TestMidpointSign64KnownRoot(t *testing.T) {
	x := 1.0
	root := 0.5671432904097838

	if s := midpointSign64(x, nextDown64(nextDown64(root))); s != signNegative {
		t.Fatalf("midpointSign64 below root = %v, want Negative", s)
	}
	if s := midpointSign64(x, nextUp64(nextUp64(root))); s != signPositive {
		t.Fatalf("midpointSign64 above root = %v, want Positive", s)
	}
}

func TestMidpointSign64MonotonicityShortcut(t *testing.T) {
	// m >= x, m > 0, x >= 0 should short-circuit to Positive without
	// needing the transcendental evaluation at all.
	if s := lowTierSign64(5, 10); s != signPositive {
		t.Fatalf("lowTierSign64(5, 10) = %v, want Positive", s)
	}
}

func TestMidpointSign32MatchesSign64(t *testing.T) {
	var x float32 = -0.2
	var m float32 = -0.5
	got := midpointSign32(x, m)
	want := midpointSign64(float64(x), float64(m))
	if got != want {
		t.Fatalf("midpointSign32(%v,%v) = %v, want %v (matching midpointSign64)", x, m, got, want)
	}
}

func TestHighTierNeverInconclusiveNearRoot(t *testing.T) {
	x := 2.0
	// Bisect a reasonably tight bracket and confirm the high-precision
	// tier alone (bypassing the fast tier) resolves every midpoint.
	low, high := 0.0, 1.0
	for i := 0; i < 60; i++ {
		m := midpoint64(low, high)
		if m == low || m == high {
			break
		}
		s := highTierSign64(x, m)
		if s == signInconclusive {
			t.Fatalf("highTierSign64 inconclusive at x=%v, m=%v", x, m)
		}
		if s == signPositive {
			high = m
		} else {
			low = m
		}
	}
}
