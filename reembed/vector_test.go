package reembed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func magnitude(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

func TestNormalizeVector(t *testing.T) {
	tests := []struct {
		name  string
		input []float32
		want  []float32
	}{
		{"already unit length", []float32{0, 1, 0}, []float32{0, 1, 0}},
		{"classic 3-4-5", []float32{3, 4}, []float32{0.6, 0.8}},
		{"negative components", []float32{-2, 2}, []float32{-1 / float32(math.Sqrt2), 1 / float32(math.Sqrt2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeVector(tt.input)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-6)
			}
			assert.InDelta(t, 1.0, magnitude(got), 1e-6)
		})
	}
}

func TestNormalizeVector_DoesNotMutateInput(t *testing.T) {
	input := []float32{3, 4}
	_ = NormalizeVector(input)
	assert.Equal(t, []float32{3, 4}, input)
}

func TestNormalizeVector_ZeroVector(t *testing.T) {
	got := NormalizeVector([]float32{0, 0, 0})
	assert.Equal(t, []float32{0, 0, 0}, got)
}

func TestNormalizeVector_Empty(t *testing.T) {
	assert.Empty(t, NormalizeVector(nil))
	assert.Empty(t, NormalizeVector([]float32{}))
}
