package similarity

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrLengthMismatch is returned when the two vectors differ in length.
var ErrLengthMismatch = errors.New("similarity: vectors differ in length")

// Cosine returns the cosine similarity of a and b.
// A zero-norm input yields 0.0; identical non-zero vectors yield exactly 1.0.
// Vectors holding NaN or ±Inf yield 0.0, so the result is always finite.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 || !finite(normA) || !finite(normB) {
		return 0, nil
	}
	if floats.Equal(a, b) {
		return 1, nil
	}

	s := floats.Dot(a, b) / normA / normB
	if !finite(s) {
		// dot overflowed; retry on unit-scaled components
		s = unitDot(a, b, normA, normB)
	}
	if !finite(s) {
		return 0, nil
	}

	return clamp(s), nil
}

// unitDot is dot(a/normA, b/normB) without forming the raw products.
func unitDot(a, b []float64, normA, normB float64) float64 {
	var s float64
	for i := range a {
		s += (a[i] / normA) * (b[i] / normB)
	}

	return s
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// clamp pins s into [-1, 1].
func clamp(s float64) float64 {
	switch {
	case s > 1:
		return 1
	case s < -1:
		return -1
	default:
		return s
	}
}
