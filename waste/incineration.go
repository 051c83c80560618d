package waste

import (
	"github.com/rshade/cityghg/constants"
	"github.com/rshade/cityghg/series"
)

// IncinerationCO2 computes non-biogenic CO2 emissions from incineration of
// solid waste (GPC v7, Equation 8.6):
//
//	E = m × (WF_i × DM_i × CF_i × FCF_i × OF_i) × (44/12)
//
// where i is the incinerated waste type (paper/cardboard, textiles, food
// waste, ...).
//
// Parameters:
//   - m: mass of waste incinerated, in tonnes
//   - wf: fraction of waste of type i
//   - dm: dry matter content of type i
//   - cf: fraction of carbon in the dry matter of type i
//   - fcf: fraction of fossil carbon in the total carbon of type i
//   - of: oxidation factor
//
// Returns CO2 emissions elementwise per waste type, in tonnes.
func IncinerationCO2(m, wf, dm, cf, fcf, of any) (series.Series, error) {
	ef, err := series.Coerce(wf)
	if err != nil {
		return nil, err
	}
	for _, operand := range []any{dm, cf, fcf, of} {
		v, err := series.Coerce(operand)
		if err != nil {
			return nil, err
		}
		ef, err = series.Mul(ef, v)
		if err != nil {
			return nil, err
		}
	}

	mv, err := series.Coerce(m)
	if err != nil {
		return nil, err
	}
	emissions, err := series.Mul(mv, ef)
	if err != nil {
		return nil, err
	}
	return series.Scale(emissions, constants.CToCO2.Value), nil
}

// IncinerationCH4 computes CH4 emissions from incineration and open burning
// of solid waste (GPC v7, Equation 8.7):
//
//	E = IW_i × EF_i × (g→tonne)
//
// where i is the waste category (municipal, industrial, hazardous, clinical,
// sewage sludge, other).
//
// Parameters:
//   - iw: amount of waste of each category incinerated or open-burned,
//     in tonnes
//   - ef: aggregate CH4 emission factor per category, in g CH4 / tonne waste
//
// Returns CH4 emissions elementwise per category, in tonnes.
func IncinerationCH4(iw, ef any) (series.Series, error) {
	return incinerationGas(iw, ef)
}

// IncinerationN2O computes N2O emissions from incineration and open burning
// of solid waste (GPC v7, Equation 8.8):
//
//	E = IW_i × EF_i × (g→tonne)
//
// Parameters:
//   - iw: amount of waste of each category incinerated or open-burned,
//     in tonnes
//   - ef: aggregate N2O emission factor per category, in g N2O / tonne waste
//
// Returns N2O emissions elementwise per category, in tonnes.
func IncinerationN2O(iw, ef any) (series.Series, error) {
	return incinerationGas(iw, ef)
}

func incinerationGas(iw, ef any) (series.Series, error) {
	iwv, err := series.Coerce(iw)
	if err != nil {
		return nil, err
	}
	efv, err := series.Coerce(ef)
	if err != nil {
		return nil, err
	}
	emissions, err := series.Mul(iwv, efv)
	if err != nil {
		return nil, err
	}
	return series.Scale(emissions, constants.GToTonne.Value), nil
}
