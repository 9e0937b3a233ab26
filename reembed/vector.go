package reembed

import "math"

// NormalizeVector scales v to unit length and returns the result as a
// new slice. Zero vectors (and empty input) come back unchanged in
// value: there is no direction to preserve.
func NormalizeVector(v []float32) []float32 {
	var sumSquares float64
	for _, x := range v {
		sumSquares += float64(x) * float64(x)
	}

	out := make([]float32, len(v))
	if sumSquares == 0 {
		return out
	}

	inv := float32(1 / math.Sqrt(sumSquares))
	for i, x := range v {
		out[i] = x * inv
	}
	return out
}
