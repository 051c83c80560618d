package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCoerce_AcceptedTypes verifies scalar and slice promotion.
func TestCoerce_AcceptedTypes(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Series
	}{
		{"float64 scalar", 2.5, Series{2.5}},
		{"float32 scalar", float32(1.5), Series{1.5}},
		{"int scalar", 7, Series{7}},
		{"int64 scalar", int64(-3), Series{-3}},
		{"float64 slice", []float64{1, 2, 3}, Series{1, 2, 3}},
		{"int slice", []int{4, 5}, Series{4, 5}},
		{"int64 slice", []int64{6}, Series{6}},
		{"series passthrough", Series{9, 9}, Series{9, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCoerce_RejectsNonNumeric verifies the type-error path: strings,
// structs and higher-rank arrays never reach arithmetic. Operands are
// one-dimensional only.
func TestCoerce_RejectsNonNumeric(t *testing.T) {
	for _, input := range []any{"12", struct{}{}, []string{"1"}, map[string]float64{}, [][]float64{{1, 2}}} {
		_, err := Coerce(input)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotNumeric)
	}
}

// TestApply_Broadcasting verifies elementwise combination under the
// broadcast rule: equal lengths, or either side length 1.
func TestApply_Broadcasting(t *testing.T) {
	tests := []struct {
		name string
		a, b Series
		want Series
	}{
		{"equal lengths", Series{1, 2, 3}, Series{4, 5, 6}, Series{4, 10, 18}},
		{"scalar left", Series{2}, Series{1, 2, 3}, Series{2, 4, 6}},
		{"scalar right", Series{1, 2, 3}, Series{10}, Series{10, 20, 30}},
		{"both scalar", Series{3}, Series{4}, Series{12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mul(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestApply_ShapeMismatch verifies that incompatible lengths fail rather
// than silently truncating.
func TestApply_ShapeMismatch(t *testing.T) {
	_, err := Mul(Series{1, 2}, Series{1, 2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, err.Error(), "2")
	assert.Contains(t, err.Error(), "3")
}

func TestAddSubScale(t *testing.T) {
	sum, err := Add(Series{1, 2}, Series{10, 20})
	require.NoError(t, err)
	assert.Equal(t, Series{11, 22}, sum)

	diff, err := Sub(Series{10, 20}, Series{1})
	require.NoError(t, err)
	assert.Equal(t, Series{9, 19}, diff)

	assert.Equal(t, Series{0.5, 1}, Scale(Series{500, 1000}, 0.001))
}

func TestSum(t *testing.T) {
	assert.InDelta(t, 6.6, Series{1.1, 2.2, 3.3}.Sum(), 1e-12)
	assert.Zero(t, Series{}.Sum())
}

func TestScalar(t *testing.T) {
	v, ok := Series{3.14}.Scalar()
	require.True(t, ok)
	assert.Equal(t, 3.14, v)

	_, ok = Series{1, 2}.Scalar()
	assert.False(t, ok)
}

// TestCheckFraction verifies the [0, 1] precondition fails explicitly and
// never clamps.
func TestCheckFraction(t *testing.T) {
	require.NoError(t, CheckFraction("f", Series{0, 0.5, 1}))

	err := CheckFraction("frec", Series{1.5})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "frec")
	assert.Contains(t, err.Error(), "1.5")

	err = CheckFraction("ox", Series{-0.1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
