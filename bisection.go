package lambertw

// midpoint64 computes a safe average of low and high that does not risk
// the overflow that (low+high)/2 could suffer for extreme magnitudes.
func midpoint64(low, high float64) float64 {
	return low + (high-low)*0.5
}

func midpoint32(low, high float32) float32 {
	return low + (high-low)*0.5
}

// bisect64 repeatedly halves a valid bracket [low, high] for the residual
// g(m) = m*e^m - x, querying the two-tier sign oracle at each midpoint,
// until high is the immediate successor of low (or they are equal).
// increasing selects the branch's monotonicity direction: true for W0,
// false for W-1.
func bisect64(x, low, high float64, increasing bool) (Interval64, error) {
	for high > nextUp64(low) {
		m := midpoint64(low, high)
		if m == low || m == high {
			break
		}

		s := midpointSign64(x, m)
		if s == signInconclusive {
			return Interval64{}, newAmbiguousSignError(x)
		}

		if (s == signPositive) == increasing {
			high = m
		} else {
			low = m
		}
	}

	return Interval64{Inf: low, Sup: high}, nil
}

// bisect32 is the float32 analogue of bisect64.
func bisect32(x, low, high float32, increasing bool) (Interval32, error) {
	for high > nextUp32(low) {
		m := midpoint32(low, high)
		if m == low || m == high {
			break
		}

		s := midpointSign32(x, m)
		if s == signInconclusive {
			return Interval32{}, newAmbiguousSignError(float64(x))
		}

		if (s == signPositive) == increasing {
			high = m
		} else {
			low = m
		}
	}

	return Interval32{Inf: low, Sup: high}, nil
}
