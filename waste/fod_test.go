package waste

import (
	"math"
	"testing"

	"github.com/rshade/cityghg/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFOD_SingleYear verifies the degenerate one-year history: the only
// disposal year is the inventory year itself, so no decay has occurred.
func TestFOD_SingleYear(t *testing.T) {
	// 1000 × 0.05 × (1 − e^−0.1) × e^0 = 50 × 0.095163 ≈ 4.758
	got, err := FOD([]float64{1000}, 0.05, 0, 0, 0.1, 2020)
	require.NoError(t, err)

	want := 1000 * 0.05 * (1 - math.Exp(-0.1))
	assert.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, 4.758, got, 1e-3)
}

// TestFOD_ScalarEqualsOneElementSeries verifies a scalar disposal history
// is one year ending at the inventory year.
func TestFOD_ScalarEqualsOneElementSeries(t *testing.T) {
	fromScalar, err := FOD(1000.0, 0.05, 0, 0, 0.1, 2020)
	require.NoError(t, err)
	fromSeries, err := FOD([]float64{1000}, 0.05, 0, 0, 0.1, 2020)
	require.NoError(t, err)
	assert.Equal(t, fromSeries, fromScalar)
}

// TestFOD_YearAlignment verifies the index-to-year mapping: in a two-year
// history ending 2020, the first element is 2019 disposal and its methane
// is decayed by one extra factor of e^−k.
func TestFOD_YearAlignment(t *testing.T) {
	const k = 0.1
	perYear := 1000 * 0.05 * (1 - math.Exp(-k))

	got, err := FOD([]float64{1000, 1000}, 0.05, 0, 0, k, 2020)
	require.NoError(t, err)

	// 2019 contribution decays e^(−k·1); 2020 contributes e^0.
	want := perYear*math.Exp(-k) + perYear
	assert.InDelta(t, want, got, 1e-12)

	// Ordering matters: an all-in-the-oldest-year history must come out
	// smaller than all-in-the-newest-year.
	oldest, err := FOD([]float64{2000, 0}, 0.05, 0, 0, k, 2020)
	require.NoError(t, err)
	newest, err := FOD([]float64{0, 2000}, 0.05, 0, 0, k, 2020)
	require.NoError(t, err)
	assert.Less(t, oldest, newest)
	assert.InDelta(t, 2*perYear*math.Exp(-k), oldest, 1e-12)
	assert.InDelta(t, 2*perYear, newest, 1e-12)
}

// TestFOD_RecoveryAndOxidation verifies the (sum − R) × (1 − OX) tail.
func TestFOD_RecoveryAndOxidation(t *testing.T) {
	const k = 0.1
	generated := 1000 * 0.05 * (1 - math.Exp(-k)) // ≈ 4.758

	got, err := FOD([]float64{1000}, 0.05, 1.0, 0.1, k, 2020)
	require.NoError(t, err)
	assert.InDelta(t, (generated-1.0)*0.9, got, 1e-12)
}

// TestFOD_PerYearPotential verifies a per-year Lo series broadcasting
// against the disposal history.
func TestFOD_PerYearPotential(t *testing.T) {
	const k = 0.2
	yield := 1 - math.Exp(-k)

	// year 2019: 500 t × Lo 0.04; year 2020: 800 t × Lo 0.06
	got, err := FOD([]float64{500, 800}, []float64{0.04, 0.06}, 0, 0, k, 2020)
	require.NoError(t, err)

	want := 500*0.04*yield*math.Exp(-k) + 800*0.06*yield
	assert.InDelta(t, want, got, 1e-12)
}

// TestFOD_ScalarHistoryVectorPotential verifies that ages come from the
// disposal history, not the broadcast product: a scalar disposal mass is a
// single year at the inventory year even when Lo carries several components,
// so no term decays.
func TestFOD_ScalarHistoryVectorPotential(t *testing.T) {
	const k = 0.1
	yield := 1 - math.Exp(-k)

	got, err := FOD(1000.0, []float64{0.04, 0.05, 0.06}, 0, 0, k, 2020)
	require.NoError(t, err)

	// 1000 × (0.04 + 0.05 + 0.06) × (1 − e^−0.1) × e^0 ≈ 14.274
	want := 1000 * (0.04 + 0.05 + 0.06) * yield
	assert.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, 14.274, got, 1e-3)
}

func TestFOD_Errors(t *testing.T) {
	_, err := FOD("disposal", 0.05, 0, 0, 0.1, 2020)
	assert.ErrorIs(t, err, series.ErrNotNumeric)

	_, err = FOD([]float64{1, 2, 3}, []float64{1, 2}, 0, 0, 0.1, 2020)
	assert.ErrorIs(t, err, series.ErrShapeMismatch)
}

// TestFODYears verifies the exposed series-to-year alignment.
func TestFODYears(t *testing.T) {
	assert.Equal(t, []int{2018, 2019, 2020}, FODYears(3, 2020))
	assert.Equal(t, []int{2020}, FODYears(1, 2020))
	assert.Nil(t, FODYears(0, 2020))
}
