package lambertw

// Interval64 is a bracket [Inf, Sup] of a real value, expressed as two
// float64 endpoints. A correctly-computed result satisfies Inf <= Sup, and
// Sup is either equal to Inf or the float64 immediately above it.
type Interval64 struct {
	Inf, Sup float64
}

// Interval32 is the float32 analogue of Interval64.
type Interval32 struct {
	Inf, Sup float32
}

// Width returns Sup - Inf; it is zero for a single-point interval.
func (iv Interval64) Width() float64 { return iv.Sup - iv.Inf }

// Width returns Sup - Inf; it is zero for a single-point interval.
func (iv Interval32) Width() float32 { return iv.Sup - iv.Inf }
