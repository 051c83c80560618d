package stationary

import (
	"testing"

	"github.com/rshade/cityghg/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCombustion verifies E = sum(A × EF) across fuels.
func TestCombustion(t *testing.T) {
	tests := []struct {
		name  string
		a, ef any
		want  float64
	}{
		{
			// coal 120 TJ × 94,600 kg/TJ + gas 80 TJ × 56,100 kg/TJ
			// = 11,352,000 + 4,488,000 = 15,840,000 kg CO2
			name: "two fuels",
			a:    []float64{120, 80},
			ef:   []float64{94600, 56100},
			want: 15840000,
		},
		{
			// single fuel as scalars: 10 × 74,100 = 741,000
			name: "scalar fuel",
			a:    10.0,
			ef:   74100.0,
			want: 741000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Combustion(tt.a, tt.ef)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

// TestGridConsumption verifies the grid supply form of the equation.
func TestGridConsumption(t *testing.T) {
	// 3.6 TJ consumed × 135,000 kg CO2/TJ = 486,000 kg
	got, err := GridConsumption(3.6, 135000.0)
	require.NoError(t, err)
	assert.InDelta(t, 486000, got, 1e-9)
}

func TestCombustion_Errors(t *testing.T) {
	_, err := Combustion("coal", 94600.0)
	assert.ErrorIs(t, err, series.ErrNotNumeric)

	_, err = Combustion([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, series.ErrShapeMismatch)
}
