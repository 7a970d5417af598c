package lambertw

import "math"

// Go guarantees +, -, *, /, math.Sqrt and math.FMA are correctly rounded to
// nearest. Go has no per-call hardware rounding-mode control (no analogue
// of fesetround), so directed rounding is reconstructed by taking the
// correctly-rounded result and moving it one float64 one step further in
// the requested direction with math.Nextafter. The result is always a
// valid (if occasionally one ulp wider than necessary) enclosure of the
// exact mathematical value.

func nextUp64(x float64) float64   { return math.Nextafter(x, math.Inf(1)) }
func nextDown64(x float64) float64 { return math.Nextafter(x, math.Inf(-1)) }

func addDown64(a, b float64) float64 { return nextDown64(a + b) }
func addUp64(a, b float64) float64   { return nextUp64(a + b) }
func subDown64(a, b float64) float64 { return nextDown64(a - b) }
func subUp64(a, b float64) float64   { return nextUp64(a - b) }
func mulDown64(a, b float64) float64 { return nextDown64(a * b) }
func mulUp64(a, b float64) float64   { return nextUp64(a * b) }
func divDown64(a, b float64) float64 { return nextDown64(a / b) }
func divUp64(a, b float64) float64   { return nextUp64(a / b) }

func sqrtDown64(a float64) float64 { return nextDown64(math.Sqrt(a)) }
func sqrtUp64(a float64) float64   { return nextUp64(math.Sqrt(a)) }

func fmaDown64(a, b, c float64) float64 { return nextDown64(math.FMA(a, b, c)) }
func fmaUp64(a, b, c float64) float64   { return nextUp64(math.FMA(a, b, c)) }

// expUpDown64 returns a bracket [down, up] of e^x. math.Exp is not
// guaranteed exactly rounded (unlike +,-,*,/), so the to-nearest result is
// bracketed two ulps out rather than one, to absorb both math.Exp's own
// rounding error and the assignment to float64.
func expUpDown64(x float64) (down, up float64) {
	v := math.Exp(x)
	down = nextDown64(nextDown64(v))
	up = nextUp64(nextUp64(v))
	return down, up
}

// logUpDown64 returns a bracket [down, up] of ln(x).
func logUpDown64(x float64) (down, up float64) {
	v := math.Log(x)
	down = nextDown64(nextDown64(v))
	up = nextUp64(nextUp64(v))
	return down, up
}

// log1pUpDown64 returns a bracket [down, up] of ln(1+x).
func log1pUpDown64(x float64) (down, up float64) {
	v := math.Log1p(x)
	down = nextDown64(nextDown64(v))
	up = nextUp64(nextUp64(v))
	return down, up
}

// logUp64 / log1pUp64 are single-direction convenience wrappers used by the
// bracket-construction formulas, which only ever need one side of the
// ln/ln1p enclosure at a time.
func logUp64(x float64) float64 {
	_, up := logUpDown64(x)
	return up
}

func log1pUp64(x float64) float64 {
	_, up := log1pUpDown64(x)
	return up
}
