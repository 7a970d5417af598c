package lambertw

import "math/big"

// expTaylorTerms bounds the Taylor-series truncation error for the
// argument-reduced exponential below. After reduction |y| <= 0.5, and the
// Lagrange remainder of the degree-N Taylor polynomial is bounded by
// |y|^(N+1)/(N+1)! * e^|y|, which for N=40 and |y|<=0.5 is far below
// 2^-150 -- safely below both working precisions the oracle runs at (150
// and 70 bits) -- so a fixed term count is used rather than a
// convergence-driven loop.
const expTaylorTerms = 40

// expBall returns a ball enclosing e^x for the value x encloses, computed
// at the given working precision via argument reduction (exp(x) =
// exp(x/2^k)^(2^k) for the smallest k making |x/2^k| <= 0.5) followed by a
// fixed-length Taylor series. No arbitrary-precision Ln is needed anywhere
// in this package; exp is the only transcendental function the
// high-precision oracle tier requires.
func expBall(a *ball, prec uint) *ball {
	gp := guardPrec(prec)

	midF, _ := a.mid.Float64()
	k := 0
	for absF(midF) > 0.5 {
		midF /= 2
		k++
	}

	twoK := new(big.Float).SetPrec(gp).SetMantExp(big.NewFloat(1), k)
	y := new(big.Float).SetPrec(gp).Quo(a.mid, twoK)
	yRad := new(big.Float).SetPrec(gp).Quo(a.rad, twoK)

	sum := new(big.Float).SetPrec(gp).SetInt64(1)
	term := new(big.Float).SetPrec(gp).SetInt64(1)
	for n := 1; n <= expTaylorTerms; n++ {
		term.Mul(term, y)
		term.Quo(term, new(big.Float).SetPrec(gp).SetInt64(int64(n)))
		sum.Add(sum, term)
	}

	// Tail bound: safely below 2^-150, see expTaylorTerms' comment.
	tailBound := new(big.Float).SetPrec(gp).SetMantExp(big.NewFloat(1), -200)

	// Input-radius propagation: exp's derivative is itself, so to first
	// order the output radius contribution of a radius yRad in the
	// argument is sum * yRad.
	radFromInput := new(big.Float).SetPrec(gp).Mul(sum, yRad)

	radY := new(big.Float).SetPrec(gp).Add(tailBound, radFromInput)

	// Undo the argument reduction: result = sum^(2^k). To first order the
	// relative error doubles at each squaring, 2^k in all.
	result := new(big.Float).SetPrec(gp).Copy(sum)
	relErr := new(big.Float).SetPrec(gp).Quo(radY, sum)
	for i := 0; i < k; i++ {
		result.Mul(result, result)
		relErr.Mul(relErr, new(big.Float).SetPrec(gp).SetInt64(2))
	}

	rad := new(big.Float).SetPrec(gp).Mul(relErr, absBig(result))
	rad.Add(rad, roundingErrorBound(result, prec))

	mid := new(big.Float).SetPrec(gp).Copy(result)

	return &ball{mid: mid, rad: rad}
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
