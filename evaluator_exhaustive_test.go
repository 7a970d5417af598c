package lambertw

import (
	"math"
	"testing"
)

// TestW0ExhaustiveFloat32 walks every representable float32 from -1/e up
// to +Inf and checks the one-ULP post-condition and the residual-sign
// property on each. This is the required gate described for the float32
// evaluator: at double precision the same scan is not feasible, but at
// float32 it covers the entire valid domain in a bounded number of
// evaluations. It is skipped under `go test -short`.
func TestW0ExhaustiveFloat32(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive float32 scan skipped in -short mode")
	}

	e := NewEvaluator32()
	x := EmUp32
	for {
		iv, err := e.W0(x)
		if err != nil {
			t.Fatalf("W0(%v): %v", x, err)
		}
		checkOneULP32(t, iv, "W0 exhaustive")
		if !math.IsNaN(float64(iv.Inf)) && iv.Inf != iv.Sup {
			if s1, s2 := highTierSign32(x, iv.Inf), highTierSign32(x, iv.Sup); s1 == s2 && s1 != signInconclusive {
				t.Fatalf("residual sign check failed at x=%v: bracket %+v", x, iv)
			}
		}

		if math32IsInf(x) {
			break
		}
		x = nextUp32(x)
	}
}

// TestWm1ExhaustiveFloat32 walks every representable float32 from -1/e up
// to (but not including) 0.
func TestWm1ExhaustiveFloat32(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive float32 scan skipped in -short mode")
	}

	e := NewEvaluator32()
	for x := EmUp32; x < 0; x = nextUp32(x) {
		iv, err := e.Wm1(x)
		if err != nil {
			t.Fatalf("Wm1(%v): %v", x, err)
		}
		checkOneULP32(t, iv, "Wm1 exhaustive")
		if !math.IsNaN(float64(iv.Inf)) && iv.Inf != iv.Sup {
			if s1, s2 := highTierSign32(x, iv.Inf), highTierSign32(x, iv.Sup); s1 == s2 && s1 != signInconclusive {
				t.Fatalf("residual sign check failed at x=%v: bracket %+v", x, iv)
			}
		}
	}
}

func math32IsInf(x float32) bool {
	return math.IsInf(float64(x), 1) || math.IsInf(float64(x), -1)
}
