package vectorize

import (
	"math"

	"github.com/pgvector/pgvector-go"

	"homiehub/pkg/utils"
)

// Weight applies the per-dimension multipliers and returns the vector
// in the form the store persists and queries. A non-finite component
// can only come from an encoder defect, never from user input, so it
// is reported as ErrInvalidVector and the vector must not be
// persisted.
func Weight(raw RawVector) (pgvector.Vector, error) {
	weighted := make([]float32, Dim)
	for i, v := range raw {
		w := v * Weights[i]
		if math.IsNaN(float64(w)) || math.IsInf(float64(w), 0) {
			return pgvector.Vector{}, utils.ErrInvalidVector
		}
		weighted[i] = w
	}
	return pgvector.NewVector(weighted), nil
}
