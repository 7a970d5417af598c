package lambertw

import "math"

// Initial approximants for float64. The coefficient tables below are the
// same ones the reference implementation's float32 rational/series fits
// use; reusing them at float64 only affects how many certified bisection
// steps are needed to reach one ulp, never the correctness of the result,
// since the bracket returned by bracketW0_64/bracketWm1_64 is independently
// proven regardless of how tight the initial guess is.

const w0NearBranchThreshold64 = -0.3
const w0LargeThreshold64 = 7.38905609893 // e^2

func hornerDouble(coeffs []float64, x float64) float64 {
	result := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = result*x + coeffs[i]
	}
	return result
}

var firstApproxW0NumerCoeffs = []float64{
	0,
	165.51561672164559,
	1104.9153130867758,
	2632.284078577963,
	2689.464120405435,
	1121.2923665114324,
	153.3374641092571,
	4.077322829553558,
}

var firstApproxW0DenomCoeffs = []float64{
	165.51561558818844,
	1270.4310030077481,
	3654.442208397931,
	4879.631928655197,
	3045.0058891120098,
	794.8712729472717,
	67.22857835896016,
	1,
}

func firstApproxW0_64(x float64) float64 {
	return hornerDouble(firstApproxW0NumerCoeffs, x) / hornerDouble(firstApproxW0DenomCoeffs, x)
}

var secondApproxW0NumerCoeffs = []float64{
	245182.20097823755,
	280243.5212428723,
	142843.813324628,
	40353.72076097795,
	5776.914448840662,
	184.83613670644033,
	0.9984483567344636,
}

var secondApproxW0DenomCoeffs = []float64{
	432788.26007218857,
	216948.13159273885,
	58081.26591912717,
	6594.751582203545,
	191.21022696372594,
	1,
}

func secondApproxW0_64(x float64) float64 {
	t := math.Log(x)
	return hornerDouble(secondApproxW0NumerCoeffs, t) / hornerDouble(secondApproxW0DenomCoeffs, t)
}

const nearBranchW0TwoE64 = 5.43656365691809 // 2e

var nearBranchW0Coeffs = []float64{
	-0.9999999781289544,
	0.9999966080647236,
	-0.33324531164727067,
	0.15189891604646868,
	-0.07530393941472714,
	0.03290035332102544,
	-0.008369773627101843,
}

func nearBranchW0_64(x float64) float64 {
	p := math.Sqrt(nearBranchW0TwoE64*x + 2.0)
	return hornerDouble(nearBranchW0Coeffs, p)
}

// fritschStep64 applies one Fritsch-Shafer-Crowley refinement update given
// a current guess w and a precomputed zn = ln(x/w) - w (or its scaled
// variant for x very close to zero).
func fritschStep64(w, zn float64) float64 {
	tau := 1 + w
	tau2 := 2 * tau * (tau + (2.0/3.0)*zn)
	return w * (1 + (zn/tau)*(tau2-zn)/(tau2-2*zn))
}

func fritschRefine64(x, w float64) float64 {
	zn := math.Log(x/w) - w
	return fritschStep64(w, zn)
}

const twoPow62 = 4.611686018427387904e18
const ln2Times62 = 42.97512519471661

// fritschRefineScaled64 keeps x/w from underflowing when x is extremely
// close to zero by scaling x up by 2^62 before the division and taking the
// logarithm, then subtracting the corresponding constant back out.
func fritschRefineScaled64(x, w float64) float64 {
	zn := math.Log((x*twoPow62)/w) - ln2Times62 - w
	return fritschStep64(w, zn)
}

// approxW0_64 returns an initial (uncertified) approximation to W0(x).
func approxW0_64(x float64) float64 {
	if math.Abs(x) < 1e-4 {
		return x
	}
	if x < w0NearBranchThreshold64 {
		return nearBranchW0_64(x)
	}

	var w float64
	if x < w0LargeThreshold64 {
		w = firstApproxW0_64(x)
	} else {
		w = secondApproxW0_64(x)
	}
	return fritschRefine64(x, w)
}

const wm1NearBranchThreshold64 = -0.367877785718

var nearBranchWm1Coeffs64 = []float64{
	-1.0000000001291165,
	-0.9999992250595189,
	-0.3340219624089988,
}

const nearBranchWm1SqrtTwoE64 = 2.331643981597124 // sqrt(2e)

func nearBranchWm1_64(x float64) float64 {
	p := nearBranchWm1SqrtTwoE64 * math.Sqrt(x+(1.0/math.E))
	return hornerDouble(nearBranchWm1Coeffs64, p)
}

var generalWm1NumerCoeffs = []float64{
	-2101.555169658076,
	-3413.0457024602106,
	-2345.4071921263444,
	-864.1804177336671,
	-175.99964384176346,
	-17.64071303855079,
	-0.4998769261313046,
}

var generalWm1DenomCoeffs = []float64{
	2101.5551872949245,
	1311.4898275251383,
	333.4030604186147,
	35.228646667156625,
	1,
}

func generalWm1_64(x float64) float64 {
	t := math.Sqrt(-2 - 2*math.Log(-x))
	return hornerDouble(generalWm1NumerCoeffs, t) / hornerDouble(generalWm1DenomCoeffs, t)
}

// approxWm1_64 returns an initial (uncertified) approximation to W-1(x).
func approxWm1_64(x float64) float64 {
	if x < wm1NearBranchThreshold64 {
		return nearBranchWm1_64(x)
	}

	w := generalWm1_64(x)
	if x > -1e-300 {
		return fritschRefineScaled64(x, w)
	}
	return fritschRefine64(x, w)
}
