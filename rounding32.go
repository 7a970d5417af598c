package lambertw

import "github.com/chewxy/math32"

// The float32 directed-rounding layer mirrors rounding64.go: Go's native
// float32 arithmetic operators are correctly rounded to nearest and are
// moved one ulp out with math32.Nextafter, while math32's to-nearest
// elementary functions are bracketed two ulps out, the same strategy the
// reference implementation's Sleef+nextafter wrappers use.

func nextUp32(x float32) float32   { return math32.Nextafter(x, math32.Inf(1)) }
func nextDown32(x float32) float32 { return math32.Nextafter(x, math32.Inf(-1)) }

func addDown32(a, b float32) float32 { return nextDown32(a + b) }
func addUp32(a, b float32) float32   { return nextUp32(a + b) }
func subDown32(a, b float32) float32 { return nextDown32(a - b) }
func subUp32(a, b float32) float32   { return nextUp32(a - b) }
func mulDown32(a, b float32) float32 { return nextDown32(a * b) }
func mulUp32(a, b float32) float32   { return nextUp32(a * b) }
func divDown32(a, b float32) float32 { return nextDown32(a / b) }
func divUp32(a, b float32) float32   { return nextUp32(a / b) }

func sqrtDown32(a float32) float32 { return nextDown32(math32.Sqrt(a)) }
func sqrtUp32(a float32) float32   { return nextUp32(math32.Sqrt(a)) }

// fma32 computes a*b+c by promoting to float64, whose 53-bit significand
// holds the exact product of two float32 significands (24 bits each, <=48
// bits). The sum with c is rounded to float64 and then again to float32, so
// the result is within one float32 ulp of a*b+c but is not always the
// correctly rounded value.
func fma32(a, b, c float32) float32 {
	return float32(float64(a)*float64(b) + float64(c))
}

func fmaDown32(a, b, c float32) float32 { return nextDown32(fma32(a, b, c)) }
func fmaUp32(a, b, c float32) float32   { return nextUp32(fma32(a, b, c)) }

// expUpDown32 returns a bracket [down, up] of e^x bracketed two ulps out,
// matching expUpDown64's reasoning.
func expUpDown32(x float32) (down, up float32) {
	v := math32.Exp(x)
	down = nextDown32(nextDown32(v))
	up = nextUp32(nextUp32(v))
	return down, up
}

func logUpDown32(x float32) (down, up float32) {
	v := math32.Log(x)
	down = nextDown32(nextDown32(v))
	up = nextUp32(nextUp32(v))
	return down, up
}

func log1pUpDown32(x float32) (down, up float32) {
	v := math32.Log1p(x)
	down = nextDown32(nextDown32(v))
	up = nextUp32(nextUp32(v))
	return down, up
}

func logUp32(x float32) float32 {
	_, up := logUpDown32(x)
	return up
}

func log1pUp32(x float32) float32 {
	_, up := log1pUpDown32(x)
	return up
}
