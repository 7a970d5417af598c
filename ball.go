package lambertw

import "math/big"

// ball is a lightweight arbitrary-precision "ball arithmetic" value: a
// midpoint plus a nonnegative radius such that the true real value is
// guaranteed to lie in [mid-rad, mid+rad]. This is the Go analogue of the
// Arb library's arb_t, which the original reference implementation uses
// for its high-precision sign-oracle tier (arb_init/arb_exp/arb_mul/
// arb_sub/arb_is_nonnegative/arb_is_nonpositive). Only the operations the
// oracle needs -- exact construction from a machine float, multiplication,
// subtraction, exponentiation and a tri-valued sign test -- are
// implemented; there is no general-purpose bignum API here.
type ball struct {
	mid *big.Float
	rad *big.Float // always >= 0
}

// guardPrec returns the guard precision used internally for ball operations,
// kept comfortably above the two working precisions the oracle runs at
// (150 bits for float64, 70 bits for float32; see spec's precision
// constants) so that the rounding error of the ball's own big.Float
// computations never dominates the reported radius.
func guardPrec(prec uint) uint { return prec + 64 }

// newBallFromFloat64 builds an exact ball (radius zero) from a float64.
// float64 values convert to big.Float exactly, so no rounding error is
// introduced at construction.
func newBallFromFloat64(x float64, prec uint) *ball {
	mid := new(big.Float).SetPrec(guardPrec(prec)).SetFloat64(x)
	rad := new(big.Float).SetPrec(64).SetFloat64(0)
	return &ball{mid: mid, rad: rad}
}

// newBallFromFloat32 builds an exact ball (radius zero) from a float32.
func newBallFromFloat32(x float32, prec uint) *ball {
	return newBallFromFloat64(float64(x), prec)
}

func absBig(x *big.Float) *big.Float {
	return new(big.Float).SetPrec(x.Prec()).Abs(x)
}

// roundingErrorBound returns a conservative bound on the rounding error
// introduced by rounding an exact value to mid's precision: 2^-(prec-2)
// times the magnitude of mid, comfortably looser than big.Float's actual
// guaranteed error of 2^-(prec-1) relative, giving headroom for
// accumulated error across a chain of operations.
func roundingErrorBound(mid *big.Float, prec uint) *big.Float {
	scale := new(big.Float).SetPrec(guardPrec(prec)).SetMantExp(big.NewFloat(1), -int(prec)+2)
	return new(big.Float).SetPrec(guardPrec(prec)).Mul(absBig(mid), scale)
}

// mulBall returns a*b, with a radius that soundly covers both operands'
// input radii and this operation's own rounding error.
func mulBall(a, b *ball, prec uint) *ball {
	gp := guardPrec(prec)
	mid := new(big.Float).SetPrec(gp).Mul(a.mid, b.mid)

	rad := new(big.Float).SetPrec(gp)
	t1 := new(big.Float).SetPrec(gp).Mul(absBig(a.mid), b.rad)
	t2 := new(big.Float).SetPrec(gp).Mul(absBig(b.mid), a.rad)
	t3 := new(big.Float).SetPrec(gp).Mul(a.rad, b.rad)
	rad.Add(t1, t2)
	rad.Add(rad, t3)
	rad.Add(rad, roundingErrorBound(mid, prec))

	return &ball{mid: mid, rad: rad}
}

// subBall returns a-b.
func subBall(a, b *ball, prec uint) *ball {
	gp := guardPrec(prec)
	mid := new(big.Float).SetPrec(gp).Sub(a.mid, b.mid)

	rad := new(big.Float).SetPrec(gp)
	rad.Add(a.rad, b.rad)
	rad.Add(rad, roundingErrorBound(mid, prec))

	return &ball{mid: mid, rad: rad}
}

// sign reports the sign of the value the ball encloses, or
// signInconclusive if the enclosure straddles zero.
func (b *ball) sign() sign {
	lo := new(big.Float).SetPrec(b.mid.Prec()).Sub(b.mid, b.rad)
	hi := new(big.Float).SetPrec(b.mid.Prec()).Add(b.mid, b.rad)

	if lo.Sign() >= 0 {
		return signPositive
	}
	if hi.Sign() <= 0 {
		return signNegative
	}
	return signInconclusive
}
