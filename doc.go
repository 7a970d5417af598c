// Package lambertw computes correctly-bracketed real values of the Lambert
// W function.
//
// W is the (multivalued) inverse of f(w) = w*e^w. This package evaluates
// the two branches that take real values on part of the real line: the
// principal branch W0, defined for x >= -1/e, and the secondary branch
// W-1, defined for -1/e <= x < 0.
//
// Rather than returning a single approximate float, every entry point
// returns an Interval whose Inf and Sup are adjacent floating point values
// (or equal) that are proven, via directed-rounding arithmetic and an
// arbitrary-precision fallback, to bracket the true mathematical result.
// Evaluator64 and Evaluator32 provide this at float64 and float32
// precision respectively; both are stateless zero-value types and may be
// shared freely, including across goroutines.
package lambertw
