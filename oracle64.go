package lambertw

// The oracle answers one question: what is the sign of g(m) = m*e^m - x at
// a candidate bisection midpoint m? It is evaluated in two tiers. The fast
// tier uses plain directed-rounding float64 arithmetic (53-bit working
// precision) and returns signInconclusive whenever the rounding error in
// e^m straddles the true sign. The high-precision tier then re-evaluates
// the same residual with the arbitrary-precision ball type at 150 bits,
// which this package's precision constants document is enough working
// precision to resolve every case the fast tier leaves ambiguous.
const highPrec64 = 150

// lowTierSign64 is the 53-bit fast path, ported directly from the
// reference implementation's GetMidpointSign low-precision branch: a
// monotonicity shortcut (m >= x >= 0 implies m*e^m >= x trivially) avoids
// the transcendental evaluation entirely in the common increasing-branch
// case, otherwise the residual is bracketed via expUpDown64. At m == x != 0
// the residual is x*(e^x - 1), whose two factors share a sign, so it is
// positive; this case is answered directly because for tiny |x| that
// residual (about x^2) is far below what either tier can resolve.
func lowTierSign64(x, m float64) sign {
	if m >= x && m > 0 && x >= 0 {
		return signPositive
	}
	if m == x && x != 0 {
		return signPositive
	}

	expDown, expUp := expUpDown64(m)
	yLow, yHigh := expDown, expUp
	if m < 0 {
		yLow, yHigh = yHigh, yLow
	}

	yLow = mulDown64(yLow, m)
	yLow = subDown64(yLow, x)
	yHigh = mulUp64(yHigh, m)
	yHigh = subUp64(yHigh, x)

	switch {
	case yLow >= 0 && yHigh >= 0:
		return signPositive
	case yLow <= 0 && yHigh <= 0:
		return signNegative
	default:
		return signInconclusive
	}
}

// highTierSign64 re-evaluates g(m) = m*e^m - x with arbitrary-precision
// ball arithmetic at highPrec64 bits of working precision.
func highTierSign64(x, m float64) sign {
	xBall := newBallFromFloat64(x, highPrec64)
	mBall := newBallFromFloat64(m, highPrec64)

	eBall := expBall(mBall, highPrec64)
	prod := mulBall(eBall, mBall, highPrec64)
	diff := subBall(prod, xBall, highPrec64)

	return diff.sign()
}

// midpointSign64 is the full two-tier oracle used by the float64
// certified bisection loop.
func midpointSign64(x, m float64) sign {
	if s := lowTierSign64(x, m); s != signInconclusive {
		return s
	}
	return highTierSign64(x, m)
}
