package lambertw

import "math"

// EmUp64 is -1/e rounded toward +infinity in float64: the smallest
// float64 domain boundary for both branches (W0 and W-1 are both defined
// for x >= -1/e).
const EmUp64 = -0.3678794411714423

// EmUp32 is -1/e rounded toward +infinity in float32.
const EmUp32 float32 = -0.36787942

// Evaluator64 computes one-ULP-bracketed values of the Lambert W function
// at float64 precision.
//
// Unlike the arbitrary-precision library this package is modeled on
// (which explicitly owns long-lived mpfr_t/arb_t scratch fields that must
// be initialized and torn down), Evaluator64 carries no mutable state:
// math/big.Float values are garbage collected like any other Go value, so
// there is nothing to pool. A zero-value Evaluator64 is ready to use, and
// since it holds no state the same value may be reused across any number
// of calls and shared by multiple goroutines.
type Evaluator64 struct{}

// NewEvaluator64 returns a ready-to-use float64 evaluator.
func NewEvaluator64() *Evaluator64 { return &Evaluator64{} }

// W0 returns a one-ULP bracket of the principal branch W0(x). x must be
// >= -1/e; outside that domain the result is {NaN, NaN}.
func (e *Evaluator64) W0(x float64) (Interval64, error) {
	if x < EmUp64 {
		return Interval64{Inf: math.NaN(), Sup: math.NaN()}, nil
	}
	if math.IsInf(x, 1) {
		return Interval64{Inf: math.MaxFloat64, Sup: math.Inf(1)}, nil
	}
	if x == 0 {
		return Interval64{Inf: 0, Sup: 0}, nil
	}

	_, low, high := bracketW0_64(x)
	return bisect64(x, low, high, true)
}

// Wm1 returns a one-ULP bracket of the secondary branch W-1(x). x must
// satisfy -1/e <= x < 0; outside that domain the result is {NaN, NaN}.
func (e *Evaluator64) Wm1(x float64) (Interval64, error) {
	if x < EmUp64 || x >= 0 {
		return Interval64{Inf: math.NaN(), Sup: math.NaN()}, nil
	}

	_, low, high := bracketWm1_64(x)
	return bisect64(x, low, high, false)
}

// MidpointSign evaluates the sign of g(m) = m*e^m - x at the requested
// precision tier, exposing the bisection oracle for test code that wants
// to drive it directly rather than through W0/Wm1. highPrec selects the
// arbitrary-precision ball tier over the fast directed-rounding tier.
func (e *Evaluator64) MidpointSign(x, m float64, highPrec bool) Sign {
	if highPrec {
		return highTierSign64(x, m).export()
	}
	return lowTierSign64(x, m).export()
}

// Evaluator32 computes one-ULP-bracketed values of the Lambert W function
// at float32 precision. See Evaluator64 for the lifecycle contract.
type Evaluator32 struct{}

// NewEvaluator32 returns a ready-to-use float32 evaluator.
func NewEvaluator32() *Evaluator32 { return &Evaluator32{} }

// W0 returns a one-ULP bracket of the principal branch W0(x). x must be
// >= -1/e; outside that domain the result is {NaN, NaN}.
func (e *Evaluator32) W0(x float32) (Interval32, error) {
	if x < EmUp32 {
		return Interval32{Inf: float32(math.NaN()), Sup: float32(math.NaN())}, nil
	}
	if float64(x) == math.Inf(1) {
		return Interval32{Inf: math.MaxFloat32, Sup: float32(math.Inf(1))}, nil
	}
	if x == 0 {
		return Interval32{Inf: 0, Sup: 0}, nil
	}

	_, low, high := bracketW0_32(x)
	return bisect32(x, low, high, true)
}

// Wm1 returns a one-ULP bracket of the secondary branch W-1(x). x must
// satisfy -1/e <= x < 0; outside that domain the result is {NaN, NaN}.
func (e *Evaluator32) Wm1(x float32) (Interval32, error) {
	if x < EmUp32 || x >= 0 {
		return Interval32{Inf: float32(math.NaN()), Sup: float32(math.NaN())}, nil
	}

	_, low, high := bracketWm1_32(x)
	return bisect32(x, low, high, false)
}

// MidpointSign evaluates the sign of g(m) = m*e^m - x at the requested
// precision tier. See Evaluator64.MidpointSign.
func (e *Evaluator32) MidpointSign(x, m float32, highPrec bool) Sign {
	if highPrec {
		return highTierSign32(x, m).export()
	}
	return lowTierSign32(x, m).export()
}
