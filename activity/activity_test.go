package activity

import (
	"testing"

	"github.com/rshade/cityghg/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGeneralFormula verifies E = sum(A × EF) × C − R.
func TestGeneralFormula(t *testing.T) {
	tests := []struct {
		name  string
		a, ef any
		c, r  float64
		want  float64
	}{
		{
			// sum(1×2 + 2×4 + 3×6) = 28; × 0.001 − 1 = −0.972
			name: "per-category arrays with conversion and removal",
			a:    []float64{1, 2, 3},
			ef:   []float64{2, 4, 6},
			c:    0.001,
			r:    1,
			want: -0.972,
		},
		{
			// scalar × scalar: 100 × 2.5 × 1 = 250
			name: "scalars, identity conversion",
			a:    100.0,
			ef:   2.5,
			c:    1,
			r:    0,
			want: 250,
		},
		{
			// scalar EF broadcast over activity array: (10+20)×3 = 90
			name: "broadcast scalar emission factor",
			a:    []float64{10, 20},
			ef:   3.0,
			c:    1,
			r:    0,
			want: 90,
		},
		{
			// a zero conversion annihilates the product term: result is −r
			name: "zero conversion boundary",
			a:    []float64{5, 5},
			ef:   []float64{7, 7},
			c:    0,
			r:    2,
			want: -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GeneralFormula(tt.a, tt.ef, tt.c, tt.r)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestGeneralFormula_Errors(t *testing.T) {
	_, err := GeneralFormula("ten", 2.0, 1, 0)
	assert.ErrorIs(t, err, series.ErrNotNumeric)

	_, err = GeneralFormula([]float64{1, 2}, []float64{1, 2, 3}, 1, 0)
	assert.ErrorIs(t, err, series.ErrShapeMismatch)
}

// TestGeneralFormula_Idempotent verifies repeated calls with identical
// inputs return identical results.
func TestGeneralFormula_Idempotent(t *testing.T) {
	a := []float64{1.5, 2.5}
	ef := []float64{3.5, 4.5}

	first, err := GeneralFormula(a, ef, 0.001, 0.1)
	require.NoError(t, err)
	second, err := GeneralFormula(a, ef, 0.001, 0.1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
