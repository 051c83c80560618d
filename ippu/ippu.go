// Package ippu implements the GPC industrial processes and product use
// equations (GPC v7, Chapter 9): cement, lime and glass production, and
// non-energy product use.
package ippu

import (
	"github.com/rshade/cityghg/constants"
	"github.com/rshade/cityghg/series"
)

// CementProduction computes process CO2 emissions from cement production
// (GPC Equation 9.2):
//
//	E = M × EF
//
// Parameters:
//   - m: weight of clinker produced, in tonnes
//   - ef: emission factor, in tonnes CO2 / tonne clinker
//
// Returns CO2 emissions per clinker category, in tonnes.
func CementProduction(m, ef any) (series.Series, error) {
	return product(m, ef)
}

// LimeProduction computes process CO2 emissions from lime production
// (GPC Equation 9.3):
//
//	E = M_i × EF_i
//
// where i is the lime type.
//
// Parameters:
//   - m: weight of lime produced per lime type, in tonnes
//   - ef: emission factor per lime type, in tonnes CO2 / tonne lime
//
// Returns CO2 emissions per lime type, in tonnes.
func LimeProduction(m, ef any) (series.Series, error) {
	return product(m, ef)
}

// GlassProduction computes process CO2 emissions from glass production
// (GPC Equation 9.4):
//
//	E = M_i × EF_i × (1 − CR_i)
//
// where i is the glass type (float, container, fiber glass, ...).
//
// Parameters:
//   - m: mass of melted glass per type, in tonnes
//   - ef: emission factor per type, in tonnes CO2 / tonne glass melted
//   - cr: cullet ratio per type, the fraction of the furnace charge
//     represented by cullet; every element must lie in [0, 1]
//
// Returns CO2 emissions per glass type, in tonnes.
func GlassProduction(m, ef, cr any) (series.Series, error) {
	base, err := product(m, ef)
	if err != nil {
		return nil, err
	}
	crv, err := series.Coerce(cr)
	if err != nil {
		return nil, err
	}
	if err := series.CheckFraction("cullet ratio (cr)", crv); err != nil {
		return nil, err
	}

	complement := make(series.Series, len(crv))
	for i, v := range crv {
		complement[i] = 1 - v
	}
	return series.Mul(base, complement)
}

// NonEnergyProductUse computes CO2 emissions from non-energy use of fuels
// (GPC Equation 9.5):
//
//	E = NEU_i × CC_i × ODU_i × (44/12)
//
// where i is the fuel.
//
// Parameters:
//   - neu: non-energy use per fuel, in TJ
//   - cc: specific carbon content per fuel, in tonnes C / TJ
//   - odu: fraction of the fuel oxidized during use, dimensionless
//
// Returns CO2 emissions per fuel, in tonnes.
func NonEnergyProductUse(neu, cc, odu any) (series.Series, error) {
	base, err := product(neu, cc)
	if err != nil {
		return nil, err
	}
	oduv, err := series.Coerce(odu)
	if err != nil {
		return nil, err
	}
	oxidized, err := series.Mul(base, oduv)
	if err != nil {
		return nil, err
	}
	return series.Scale(oxidized, constants.CToCO2.Value), nil
}

func product(a, b any) (series.Series, error) {
	av, err := series.Coerce(a)
	if err != nil {
		return nil, err
	}
	bv, err := series.Coerce(b)
	if err != nil {
		return nil, err
	}
	return series.Mul(av, bv)
}
