package lambertw

// The float32 evaluator's fast oracle tier is, per the reference
// implementation, not a 24-bit float32 evaluation but a 53-bit float64
// one: the midpoint and x are promoted to float64 before the residual is
// bracketed, which resolves far more cases than native float32 arithmetic
// would while remaining orders of magnitude cheaper than the arbitrary
// precision tier. Only the final fallback tier runs at float32's own
// high-precision working width (70 bits).
const highPrec32 = 70

// lowTierSign32 mirrors lowTierSign64 exactly, operating on float64
// promotions of the float32 inputs.
func lowTierSign32(x, m float32) sign {
	return lowTierSign64(float64(x), float64(m))
}

// highTierSign32 re-evaluates g(m) = m*e^m - x with arbitrary-precision
// ball arithmetic at highPrec32 bits of working precision.
func highTierSign32(x, m float32) sign {
	xBall := newBallFromFloat32(x, highPrec32)
	mBall := newBallFromFloat32(m, highPrec32)

	eBall := expBall(mBall, highPrec32)
	prod := mulBall(eBall, mBall, highPrec32)
	diff := subBall(prod, xBall, highPrec32)

	return diff.sign()
}

// midpointSign32 is the full two-tier oracle used by the float32
// certified bisection loop.
func midpointSign32(x, m float32) sign {
	if s := lowTierSign32(x, m); s != signInconclusive {
		return s
	}
	return highTierSign32(x, m)
}
