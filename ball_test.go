package lambertw

import "testing"

func TestBallExpSign(t *testing.T) {
	// g(m) = m*e^m - x at the true root should enclose zero; slightly
	// below/above the root should resolve to a definite sign.
	x := 1.0
	root := 0.5671432904097838 // Omega constant, solves w*e^w = x

	below := newBallFromFloat64(root, highPrec64)
	below.mid.Sub(below.mid, newBallFromFloat64(1e-9, highPrec64).mid)
	xBall := newBallFromFloat64(x, highPrec64)
	e := expBall(below, highPrec64)
	prod := mulBall(e, below, highPrec64)
	diff := subBall(prod, xBall, highPrec64)
	if s := diff.sign(); s != signNegative {
		t.Fatalf("expected negative residual slightly below the root, got %v", s)
	}

	above := newBallFromFloat64(root, highPrec64)
	above.mid.Add(above.mid, newBallFromFloat64(1e-9, highPrec64).mid)
	e = expBall(above, highPrec64)
	prod = mulBall(e, above, highPrec64)
	diff = subBall(prod, xBall, highPrec64)
	if s := diff.sign(); s != signPositive {
		t.Fatalf("expected positive residual slightly above the root, got %v", s)
	}
}

func TestExpBallAgainstKnownValue(t *testing.T) {
	one := newBallFromFloat64(1.0, highPrec64)
	e := expBall(one, highPrec64)
	mid, _ := e.mid.Float64()
	const wantE = 2.718281828459045
	if diff := mid - wantE; diff > 1e-12 || diff < -1e-12 {
		t.Fatalf("expBall(1) = %v, want close to e = %v", mid, wantE)
	}
}

func TestExpBallZero(t *testing.T) {
	zero := newBallFromFloat64(0, highPrec64)
	e := expBall(zero, highPrec64)
	mid, _ := e.mid.Float64()
	if mid != 1 {
		t.Fatalf("expBall(0) = %v, want 1", mid)
	}
}
