// Package activity provides the generic activity-based emissions equation
// shared by every GPC sector: activity data times an emission factor,
// aggregated across categories, with an optional unit conversion and removal.
package activity

import "github.com/rshade/cityghg/series"

// GeneralFormula computes the generic activity-based emissions equation
//
//	E = sum_i(A_i × EF_i) × C − R
//
// where i ranges over some category (fuel type, waste type, ...).
//
// Parameters:
//   - a: activity data, per category
//   - ef: emission factor, per category
//   - c: unit conversion applied to the aggregate (pass 1 for none;
//     note a conversion of 0 zeroes the product term and the result is −r)
//   - r: removals or recovered mass, in output units
//
// a and ef must be broadcast-compatible. The result is in whatever unit
// the emission factor and conversion jointly produce, typically tonnes.
func GeneralFormula(a, ef any, c, r float64) (float64, error) {
	av, err := series.Coerce(a)
	if err != nil {
		return 0, err
	}
	efv, err := series.Coerce(ef)
	if err != nil {
		return 0, err
	}

	product, err := series.Mul(av, efv)
	if err != nil {
		return 0, err
	}

	return product.Sum()*c - r, nil
}
