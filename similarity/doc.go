// Package similarity scores how alike two feature vectors are.
//
// Cosine(a, b) = dot(a, b) / (‖a‖·‖b‖)
//
// Contract:
//   - a and b must have equal length; otherwise ErrLengthMismatch.
//   - If either vector has a Euclidean norm of exactly zero, or holds a NaN
//     or ±Inf component, the score is 0.0, so the result is never NaN or ±Inf.
//   - Large magnitudes do not overflow: the dot product is divided by each
//     norm in turn and rescaled per component when it is not finite.
//   - Symmetric: Cosine(a, b) == Cosine(b, a).
//   - The score lies in [-1, 1] with rounding drift clamped; identical
//     non-zero vectors score exactly 1.0. For non-negative features (the
//     statistical tables simgraph targets) the range is effectively [0, 1].
//
// Complexity: O(d) time, O(1) space for vectors of length d.
package similarity
