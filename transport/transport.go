// Package transport implements the GPC transportation equations
// (GPC v7, Chapter 7): the ASIF framework, fuel sales, and grid electricity
// charged by transportation modes.
package transport

import "github.com/rshade/cityghg/series"

// ASIF computes transportation emissions under the
// Activity / mode Share / energy Intensity / Fuel factor framework:
//
//	E = A × S × I × F
//
// Parameters:
//   - a: activity, e.g. vehicle kilometers traveled, per mode
//   - s: mode share, the portion of trips taken by each mode
//   - i: energy intensity per mode, e.g. energy consumed per vehicle kilometer
//   - f: fuel factor, based on the composition of the local fuel stock
//
// The result is elementwise per mode; no aggregation is applied so callers
// can report per-mode contributions before summing.
func ASIF(a, s, i, f any) (series.Series, error) {
	operands, err := coerceAll(a, s, i, f)
	if err != nil {
		return nil, err
	}

	out := operands[0]
	for _, op := range operands[1:] {
		out, err = series.Mul(out, op)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FuelSales computes transportation emissions from in-boundary fuel sales:
//
//	E = sum_fuel(Q_fuel × EF_fuel)
//
// Parameters:
//   - quantity: amount of each fuel sold in the inventory year
//   - ef: emission factor per fuel
//
// Returns total emissions across all fuels.
func FuelSales(quantity, ef any) (float64, error) {
	q, err := series.Coerce(quantity)
	if err != nil {
		return 0, err
	}
	efv, err := series.Coerce(ef)
	if err != nil {
		return 0, err
	}
	product, err := series.Mul(q, efv)
	if err != nil {
		return 0, err
	}
	return product.Sum(), nil
}

// ElectricityCharged computes emissions from grid electricity charged by
// transportation modes:
//
//	E = sum(A × EF)
//
// Parameters:
//   - a: electricity charged, in TJ
//   - ef: emission factor of the reported gas for the grid supply,
//     in kg gas / TJ
//
// Returns total emissions of the reported gas, in kg.
func ElectricityCharged(a, ef any) (float64, error) {
	return FuelSales(a, ef)
}

func coerceAll(vs ...any) ([]series.Series, error) {
	out := make([]series.Series, len(vs))
	for i, v := range vs {
		s, err := series.Coerce(v)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
