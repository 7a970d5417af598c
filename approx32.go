package lambertw

import (
	"math"

	"github.com/chewxy/math32"
)

// Initial approximants for float32. FirstApproxW0/SecondApproxW0/
// NearBranchW0/GeneralWm1 evaluate their rational/series expansions in
// float64 (matching the reference implementation's own mixed-precision
// evaluation: the coefficient tables are double-precision constants even
// in the float32 evaluator) and narrow to float32 only at the end; the
// Fritsch refinement step that follows runs natively in float32, since it
// only needs to sharpen an already-decent guess before the certified
// bracket stage takes over.

const w0NearBranchThreshold32 = -0.3
const w0LargeThreshold32 = 7.38905609893 // e^2

func firstApproxW0_32(x float32) float32 {
	xd := float64(x)
	return float32(hornerDouble(firstApproxW0NumerCoeffs, xd) / hornerDouble(firstApproxW0DenomCoeffs, xd))
}

func secondApproxW0_32(x float32) float32 {
	t := math.Log(float64(x))
	return float32(hornerDouble(secondApproxW0NumerCoeffs, t) / hornerDouble(secondApproxW0DenomCoeffs, t))
}

func nearBranchW0_32(x float32) float32 {
	p := math.Sqrt(nearBranchW0TwoE64*float64(x) + 2.0)
	return float32(hornerDouble(nearBranchW0Coeffs, p))
}

func fritschStep32(w, zn float32) float32 {
	tau := 1 + w
	tau2 := 2 * tau * (tau + (2.0/3.0)*zn)
	return w * (1 + (zn/tau)*(tau2-zn)/(tau2-2*zn))
}

func fritschRefine32(x, w float32) float32 {
	zn := math32.Log(x/w) - w
	return fritschStep32(w, zn)
}

const twoPow62Float32 float32 = 4.6116860e18
const ln2Times62Float32 float32 = 42.975125

func fritschRefineScaled32(x, w float32) float32 {
	zn := math32.Log((x*twoPow62Float32)/w) - ln2Times62Float32 - w
	return fritschStep32(w, zn)
}

func approxW0_32(x float32) float32 {
	if math32.Abs(x) < 1e-4 {
		return x
	}
	if x < w0NearBranchThreshold32 {
		return nearBranchW0_32(x)
	}

	var w float32
	if x < w0LargeThreshold32 {
		w = firstApproxW0_32(x)
	} else {
		w = secondApproxW0_32(x)
	}
	return fritschRefine32(x, w)
}

// addEm32 computes x + 1/e via compensated (two-constant) summation so
// that the result keeps useful precision even though the near-branch
// domain for W-1 spans only about 55 float32 ulps above -1/e.
func addEm32(x float32) float32 {
	const emHigh float32 = 0.36787945
	const emLow float32 = -9.149756e-09
	return (x + emHigh) + emLow
}

const wm1NearBranchThreshold32 = -0.367877785718
const nearBranchWm1SqrtTwoE32 float32 = 2.331644

var nearBranchWm1Coeffs32 = []float32{
	-1.0000000001291165,
	-0.9999992250595189,
	-0.3340219624089988,
}

func nearBranchWm1_32(x float32) float32 {
	p := nearBranchWm1SqrtTwoE32 * math32.Sqrt(addEm32(x))
	res := nearBranchWm1Coeffs32[2]
	for i := 0; i < 2; i++ {
		res = res*p + nearBranchWm1Coeffs32[1-i]
	}
	return res
}

func generalWm1_32(x float32) float32 {
	t := math.Sqrt(-2 - 2*math.Log(float64(-x)))
	return float32(hornerDouble(generalWm1NumerCoeffs, t) / hornerDouble(generalWm1DenomCoeffs, t))
}

func approxWm1_32(x float32) float32 {
	if x < wm1NearBranchThreshold32 {
		return nearBranchWm1_32(x)
	}

	w := generalWm1_32(x)
	if x > -1e-300 {
		return fritschRefineScaled32(x, w)
	}
	return fritschRefine32(x, w)
}
