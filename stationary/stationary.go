// Package stationary implements the GPC stationary energy equations
// (GPC v7, Chapter 6): fuel combustion and grid energy consumption.
package stationary

import "github.com/rshade/cityghg/series"

// Combustion computes greenhouse-gas emissions from stationary fuel
// combustion:
//
//	E = sum_fuel(A_fuel × EF_fuel)
//
// Parameters:
//   - a: amount of each fuel combusted, in TJ
//   - ef: emission factor of the reported gas per fuel, in kg gas / TJ.
//     For CO2 the factor includes the carbon oxidation factor (assumed 1).
//
// Returns total emissions of the reported gas across all fuels, in kg.
func Combustion(a, ef any) (float64, error) {
	return sumProduct(a, ef)
}

// GridConsumption computes greenhouse-gas emissions from stationary grid
// energy consumption:
//
//	E = sum(A × EF)
//
// Parameters:
//   - a: grid energy consumed, in TJ
//   - ef: emission factor of the reported gas for the grid supply,
//     in kg gas / TJ
//
// Returns total emissions of the reported gas, in kg.
func GridConsumption(a, ef any) (float64, error) {
	return sumProduct(a, ef)
}

// sumProduct coerces both operands, multiplies elementwise and reduces to
// the category total.
func sumProduct(a, ef any) (float64, error) {
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
	return product.Sum(), nil
}
