package waste

import (
	"math"

	"github.com/rshade/cityghg/series"
)

// FOD computes inventory-year landfill CH4 emissions under the first order
// decay model (GPC v7, Equation 8.2):
//
//	E = [ Σ_x MSW_x × Lo_x × (1 − e^−k) × e^(−k(t−x)) − R ] × (1 − OX)
//
// where x ranges over disposal years and t is the inventory year. Methane
// released in year t is a decaying convolution of everything deposited in
// prior years, so the disposal history enters as a per-year series.
//
// Parameters:
//   - msw: solid waste disposed per year, in tonnes, oldest year first.
//     The series covers consecutive years ending at inventoryYear; a scalar
//     is treated as a one-element series for inventoryYear itself.
//   - lo: methane generation potential per disposal year,
//     tonnes CH4 / tonne waste (a scalar applies to every year)
//   - r: methane collected and removed in the inventory year, in tonnes
//   - ox: oxidation factor, dimensionless
//   - k: methane generation rate constant, related to the half-life of DOC
//     in the deposited waste. No physical-range validation is applied;
//     callers supply a meaningful decay constant.
//   - inventoryYear: the year emissions are reported for
//
// Returns CH4 emissions for the inventory year, in tonnes.
func FOD(msw, lo any, r, ox, k float64, inventoryYear int) (float64, error) {
	disposed, err := series.Coerce(msw)
	if err != nil {
		return 0, err
	}
	potential, err := series.Coerce(lo)
	if err != nil {
		return 0, err
	}

	generated, err := series.Mul(disposed, potential)
	if err != nil {
		return 0, err
	}

	// Element i of the disposal history is year inventoryYear - (n-1) + i,
	// so its methane has decayed for n-1-i years by the inventory year.
	// Ages come from the disposal series alone: a scalar history broadcast
	// against a per-year potential is still a single disposal year, so
	// every term carries age 0.
	yield := 1 - math.Exp(-k)
	n := len(disposed)

	var sum float64
	for i, g := range generated {
		age := 0.0
		if n > 1 {
			age = float64(n - 1 - i)
		}
		sum += g * yield * math.Exp(-k*age)
	}

	return (sum - r) * (1 - ox), nil
}

// FODYears returns the consecutive disposal years covered by a history of
// the given length ending at inventoryYear, oldest first. It makes the
// series-to-year alignment used by FOD inspectable and testable.
func FODYears(historyLen, inventoryYear int) []int {
	if historyLen <= 0 {
		return nil
	}
	years := make([]int, historyLen)
	for i := range years {
		years[i] = inventoryYear - historyLen + 1 + i
	}
	return years
}
