package lambertw

import "math"

// bracket64.go builds a proven enclosure [low, high] around a candidate
// approximation w of W(x), following the reference implementation's
// W0Bracket/Wm1Bracket: a rigorously rounded derivative bound d(x) times a
// rigorously rounded residual bound delta(x, w) bounds |W(x) - w|.

// enDown64 / enUp64 bracket e^50, used by the offset trick below to avoid
// computing e^w directly when w is so negative that e^w would underflow
// to subnormal or zero while x is not correspondingly tiny.
const enDown64 = 5.184705528587072e21
const enUp64 = 5.184705528587073e21

// expBracketOffset64 returns a bracket of e^w computed as e^(w+50)/e^50,
// which stays representable even when e^w itself would underflow.
func expBracketOffset64(w float64) (down, up float64) {
	eDown, eUp := expUpDown64(w + 50)
	down = divDown64(eDown, enUp64)
	up = divUp64(eUp, enDown64)
	return down, up
}

// expBracket64 is expUpDown64 guarded by the offset trick for very
// negative w, where a direct evaluation would underflow.
func expBracket64(w float64) (down, up float64) {
	if w < -650 {
		return expBracketOffset64(w)
	}
	return expUpDown64(w)
}

// residualDelta64 returns a rigorous upper bound on |w*exp(w)/x - 1|.
func residualDelta64(x, w float64) float64 {
	expDown, expUp := expBracket64(w)
	delDown := mulDown64(divDown64(w, x), expDown)
	delUp := mulUp64(divUp64(w, x), expUp)
	return math.Max(math.Abs(delDown-1), math.Abs(delUp-1))
}

const (
	w0EtaA64     = -0.1321205588285577 // (2-e)/2e, rounded toward -inf
	w0EtaB64     = 0.8939534673502061  // sqrt(2)(e-1)/e, rounded toward -inf
	w0EtaE2Down  = 5.43656365691809
	w0EtaE2Up    = 5.436563656918091
)

// derivativeBoundW0_64 returns a rigorously-rounded upper bound on the
// Lipschitz constant of W0 near x.
func derivativeBoundW0_64(x float64) float64 {
	switch {
	case x > 3:
		return x
	case x > 0.01:
		logUp := log1pUp64(x)
		denom := addUp64(1, logUp)
		inner := divDown64(1, denom)
		return subUp64(1, inner)
	case x >= 0:
		// Trivial envelope, matching the reference implementation: for
		// 0 < x <= 0.01 the 3x^2-x formula below would go negative and
		// invert the bracket, so the unrefined x itself is used instead.
		return x
	case x >= -0.01:
		return subUp64(mulUp64(mulUp64(x, x), 3), x)
	default:
		etaUp := fmaUp64(w0EtaE2Down, x, 2)
		etaDown := fmaDown64(w0EtaE2Up, x, 2)
		etaDown = mulDown64(w0EtaB64, sqrtDown64(etaDown))
		denom := fmaDown64(w0EtaA64, etaUp, etaDown)
		return subUp64(divUp64(1, denom), 1)
	}
}

// bracketW0_64 computes the initial approximation for x and a certified
// enclosure around it, ready to be handed to the certified bisection loop.
func bracketW0_64(x float64) (w, low, high float64) {
	w = approxW0_64(x)

	d := derivativeBoundW0_64(x)
	del := residualDelta64(x, w)
	err := mulUp64(d, del)

	low = subDown64(w, err)
	high = addUp64(w, err)
	low = math.Max(low, -1)
	high = math.Max(high, -1)

	return w, low, high
}

const (
	wm1C23Down64 = 0.6666666666666666
	wm1C23Up64   = 0.6666666666666667
)

// derivativeBoundWm1_64 returns a rigorously-rounded upper bound on the
// Lipschitz constant of W-1 near x.
func derivativeBoundWm1_64(x float64) float64 {
	logUp := logUp64(-x)
	rtDown := sqrtDown64(subDown64(-2, mulUp64(logUp, 2)))
	denom := addUp64(subUp64(wm1C23Up64, rtDown), mulUp64(logUp, wm1C23Down64))
	return subUp64(1, divDown64(1.0, denom))
}

// bracketWm1_64 computes the initial approximation for x and a certified
// enclosure around it, ready to be handed to the certified bisection loop.
func bracketWm1_64(x float64) (w, low, high float64) {
	w = approxWm1_64(x)

	d := derivativeBoundWm1_64(x)
	del := residualDelta64(x, w)
	err := mulUp64(d, del)

	low = subDown64(w, err)
	high = addUp64(w, err)
	high = math.Min(high, -1)

	return w, low, high
}
