package lambertw

import "github.com/chewxy/math32"

// bracket32.go is the float32 analogue of bracket64.go. The derivative and
// residual bounds are computed in float64 (matching the reference
// implementation, which promotes its float32 bracket math to double
// throughout W0Bracket/Wm1Bracket); their product d*delta is converted to
// float32 and the bracket endpoints are then formed with float32 directed
// rounding.

const enDown32 = 5.184705528587072e21
const enUp32 = 5.184705528587073e21

func expBracketOffset64For32(w float64) (down, up float64) {
	eDown, eUp := expUpDown64(w + 50)
	down = divDown64(eDown, enUp32)
	up = divUp64(eUp, enDown32)
	return down, up
}

func expBracket64For32(w float64) (down, up float64) {
	if w < -650 {
		return expBracketOffset64For32(w)
	}
	return expUpDown64(w)
}

// residualDelta32 returns a rigorous upper bound on |w*exp(w)/x - 1|,
// computed at float64 working precision from float32 inputs.
func residualDelta32(x, w float32) float64 {
	xd, wd := float64(x), float64(w)
	expDown, expUp := expBracket64For32(wd)
	delDown := mulDown64(divDown64(wd, xd), expDown)
	delUp := mulUp64(divUp64(wd, xd), expUp)
	return maxAbs64(delDown-1, delUp-1)
}

func maxAbs64(a, b float64) float64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}

func derivativeBoundW0_32(x float32) float64 {
	xd := float64(x)
	switch {
	case xd > 3:
		return xd
	case xd > 0.01:
		logUp := log1pUp64(xd)
		denom := addUp64(1, logUp)
		inner := divDown64(1, denom)
		return subUp64(1, inner)
	case xd >= 0:
		// Trivial envelope, matching the reference implementation: for
		// 0 < x <= 0.01 the 3x^2-x formula below would go negative and
		// invert the bracket, so the unrefined x itself is used instead.
		return xd
	case xd >= -0.01:
		return subUp64(mulUp64(mulUp64(xd, xd), 3), xd)
	default:
		etaUp := fmaUp64(w0EtaE2Down, xd, 2)
		etaDown := fmaDown64(w0EtaE2Up, xd, 2)
		etaDown = mulDown64(w0EtaB64, sqrtDown64(etaDown))
		denom := fmaDown64(w0EtaA64, etaUp, etaDown)
		return subUp64(divUp64(1, denom), 1)
	}
}

// bracketW0_32 computes the initial approximation for x and a certified
// enclosure around it.
func bracketW0_32(x float32) (w, low, high float32) {
	w = approxW0_32(x)

	d := derivativeBoundW0_32(x)
	del := residualDelta32(x, w)
	err := float32(mulUp64(d, del))

	low = subDown32(w, err)
	high = addUp32(w, err)
	high = math32.Max(high, -1)

	return w, low, high
}

func derivativeBoundWm1_32(x float32) float64 {
	xd := float64(x)
	logUp := logUp64(-xd)
	rtDown := sqrtDown64(subDown64(-2, mulUp64(logUp, 2)))
	denom := addUp64(subUp64(wm1C23Up64, rtDown), mulUp64(logUp, wm1C23Down64))
	return subUp64(1, divDown64(1.0, denom))
}

// bracketWm1_32 computes the initial approximation for x and a certified
// enclosure around it.
func bracketWm1_32(x float32) (w, low, high float32) {
	w = approxWm1_32(x)

	d := derivativeBoundWm1_32(x)
	del := residualDelta32(x, w)
	err := float32(mulUp64(d, del))

	low = subDown32(w, err)
	high = addUp32(w, err)
	high = math32.Min(high, -1)

	return w, low, high
}
