// Package afolu implements the GPC agriculture, forestry and other land use
// equations (GPC v7, Chapter 10): livestock, land-use carbon stock change,
// biomass burning, soil amendments and rice cultivation.
package afolu

import (
	"errors"

	"github.com/rshade/cityghg/constants"
	"github.com/rshade/cityghg/series"
)

// ErrNotImplemented marks equations intentionally left unfinished. Callers
// must treat it as a hard failure, not a zero estimate.
var ErrNotImplemented = errors.New("not implemented")

// EntericFermentationCH4 computes CH4 emissions from enteric fermentation
// (GPC v1.1; IPCC 2006 Vol. 4, Chapter 10):
//
//	CH4 = N_t × EF_t × (kg→tonne)
//
// where t is the livestock category.
//
// Parameters:
//   - n: number of animals per livestock category, in head
//   - ef: enteric fermentation emission factor per category,
//     in kg CH4 / head / year
//
// Returns CH4 emissions elementwise per category, in tonnes.
func EntericFermentationCH4(n, ef any) (series.Series, error) {
	return headcountEmissions(n, ef)
}

// ManureManagementCH4 computes CH4 emissions from manure management
// (GPC v1.1; IPCC 2006 Vol. 4, Chapter 10):
//
//	CH4 = N_t × EF_t × (kg→tonne)
//
// Parameters:
//   - n: number of animals per livestock category, in head
//   - ef: manure management emission factor per category,
//     in kg CH4 / head / year
//
// Returns CH4 emissions elementwise per category, in tonnes.
func ManureManagementCH4(n, ef any) (series.Series, error) {
	return headcountEmissions(n, ef)
}

// ManureManagementN2O computes direct N2O emissions from manure management
// systems (GPC v1.1; IPCC 2006 Vol. 4, Equation 10.25):
//
//	N2O = (N_t × NEX_t × MS_t) × EF_t × (44/28) × (kg→tonne)
//
// where t is the livestock category. A full inventory additionally sums
// across manure management systems.
//
// Parameters:
//   - n: number of animals per livestock category
//   - nex: annual nitrogen excretion per category, in kg N / head / year
//     (see NEX)
//   - ms: fraction of annual nitrogen excretion managed in the system,
//     per category
//   - ef: emission factor for direct N2O-N from the system,
//     in kg N2O-N / kg N
//
// Returns N2O emissions elementwise per category, in tonnes.
func ManureManagementN2O(n, nex, ms, ef any) (series.Series, error) {
	managed, err := productAll(n, nex, ms, ef)
	if err != nil {
		return nil, err
	}
	return series.Scale(managed, constants.NToN2O.Value*constants.KgToTonne.Value), nil
}

// ManureManagementN2OIndirect computes indirect N2O emissions from
// volatilization of manure nitrogen as NH3 and NOx (GPC v1.1; IPCC 2006
// Vol. 4, Equation 10.27):
//
//	Nv = sum(N_t × NEX_t × MS_t) × frac
//	N2O = Nv × EF × (kg→tonne) × (44/28)
//
// Parameters:
//   - n: number of animals per livestock category
//   - nex: average nitrogen excretion per category, in kg N / head / year
//   - ms: fraction of nitrogen excretion managed in the system, per category
//   - frac: fraction of managed manure nitrogen that volatilizes as NH3 and
//     NOx in the system
//   - ef: emission factor for N2O from atmospheric deposition of N,
//     in kg N2O-N / kg NH3-N and NOx-N volatilized
//
// Returns indirect N2O emissions in tonnes. The livestock axis is summed
// before the volatilization fraction is applied.
func ManureManagementN2OIndirect(n, nex, ms any, frac, ef float64) (float64, error) {
	managed, err := productAll(n, nex, ms)
	if err != nil {
		return 0, err
	}
	volatilized := managed.Sum() * frac
	return volatilized * ef * constants.KgToTonne.Value * constants.NToN2O.Value, nil
}

// NEX computes annual nitrogen excretion rates per livestock category
// (GPC v1.1; IPCC 2006 Vol. 4, Equation 10.30):
//
//	NEX = N × TAM × (kg→tonne) × 365
//
// Parameters:
//   - n: default nitrogen excretion rate per category,
//     in kg N / tonne animal mass / day
//   - tam: typical animal mass per category, in kg / head
//
// Returns annual nitrogen excretion elementwise per category,
// in kg N / head / year.
func NEX(n, tam any) (series.Series, error) {
	rate, err := productAll(n, tam)
	if err != nil {
		return nil, err
	}
	return series.Scale(rate, constants.KgToTonne.Value*constants.YearToDays.Value), nil
}

// DeltaC computes total annual carbon stock change across the IPCC land-use
// categories (GPC v1.1; 2019 Refinement Vol. 4, Chapter 2):
//
//	ΔC = (FL + CL + GL + WL + SL + OL) × (44/12)
//
// Parameters, each an annual carbon stock change in tonnes C / year:
//   - fl: forest land
//   - cl: crop land
//   - gl: grassland
//   - wl: wetlands
//   - sl: settlements
//   - ol: other lands
//
// Returns the stock change elementwise, in tonnes CO2 / year.
func DeltaC(fl, cl, gl, wl, sl, ol any) (series.Series, error) {
	var total series.Series
	for _, operand := range []any{fl, cl, gl, wl, sl, ol} {
		v, err := series.Coerce(operand)
		if err != nil {
			return nil, err
		}
		if total == nil {
			total = v
			continue
		}
		total, err = series.Add(total, v)
		if err != nil {
			return nil, err
		}
	}
	return series.Scale(total, constants.CToCO2.Value), nil
}

// BiomassBurning computes emissions from burning of biomass (GPC v1.1; IPCC
// 2006 Vol. 4, Equation 2.27):
//
//	E = A × B × CF × EF × (g→kg)
//
// Parameters:
//   - a: area of burnt land, in hectares
//   - b: mass of fuel available for combustion (biomass, ground litter and
//     dead wood; the latter two may be assumed zero except under land-use
//     change), in tonnes / hectare
//   - cf: combustion factor, the proportion of fuel actually combusted,
//     dimensionless
//   - ef: emission factor, in g gas / kg dry matter burnt
//
// Returns emissions elementwise, in tonnes of gas. The IPCC publishes a
// separate emission factor per gas; compute each gas separately.
func BiomassBurning(a, b, cf, ef any) (series.Series, error) {
	burnt, err := productAll(a, b, cf, ef)
	if err != nil {
		return nil, err
	}
	// EF is g/kg over a fuel mass in tonnes, so a g→kg scaling lands the
	// result in tonnes.
	return series.Scale(burnt, 0.001), nil
}

// Liming computes CO2 emissions from application of carbonate limes to
// soils (GPC v1.1; IPCC 2006 Vol. 4, Equation 11.12):
//
//	CO2 = M_t × EF_t × (44/12)
//
// where t is calcic limestone (CaCO3) or dolomite (CaMg(CO3)2).
//
// Parameters:
//   - m: amount of limestone or dolomite applied, in tonnes / year
//   - ef: emission factor, in tonnes C / tonne stone
//
// Returns CO2 emissions elementwise, in tonnes.
func Liming(m, ef any) (series.Series, error) {
	return carbonateCO2(m, ef)
}

// UreaFertilization computes CO2 emissions from urea application (GPC v1.1;
// IPCC 2006 Vol. 4, Equation 11.13):
//
//	CO2 = M × EF × (44/12)
//
// Parameters:
//   - m: amount of urea applied, in tonnes urea / year
//   - ef: emission factor, in tonnes C / tonne urea
//
// Returns CO2 emissions elementwise, in tonnes.
func UreaFertilization(m, ef any) (series.Series, error) {
	return carbonateCO2(m, ef)
}

// RiceCultivationCH4 computes CH4 emissions from rice cultivation
// (GPC v1.1; IPCC 2006 Vol. 4, Equation 5.1):
//
//	CH4 = EF × T × A × (kg→Gg)
//
// A full inventory sums across ecosystems, water regimes and organic
// amendment practices, each with its own adjusted factor.
//
// Parameters:
//   - ef: daily emission factor, in kg CH4 / hectare / day
//   - t: cultivation period, in days
//   - a: harvested area, in hectares / year
//
// Returns CH4 emissions elementwise, in Gg / year (1 Gg == 1000 tonnes).
func RiceCultivationCH4(ef, t, a any) (series.Series, error) {
	emitted, err := productAll(ef, t, a)
	if err != nil {
		return nil, err
	}
	return series.Scale(emitted, constants.KgToGg.Value), nil
}

// ManagedSoilsDirectN2O would compute direct N2O emissions from managed
// soils (GPC v1.1; IPCC 2006 Vol. 4, Equation 11.1) from the N input, organic
// soil and urine-and-dung components. The IPCC disaggregation has not been
// implemented yet and the function always fails with ErrNotImplemented so
// inventories cannot silently book a wrong number.
func ManagedSoilsDirectN2O(inputs, os, prp any) (series.Series, error) {
	return nil, ErrNotImplemented
}

// headcountEmissions is the shared livestock form N × EF × (kg→tonne).
func headcountEmissions(n, ef any) (series.Series, error) {
	emitted, err := productAll(n, ef)
	if err != nil {
		return nil, err
	}
	return series.Scale(emitted, constants.KgToTonne.Value), nil
}

// carbonateCO2 is the shared soil amendment form M × EF × (44/12).
func carbonateCO2(m, ef any) (series.Series, error) {
	carbon, err := productAll(m, ef)
	if err != nil {
		return nil, err
	}
	return series.Scale(carbon, constants.CToCO2.Value), nil
}

// productAll coerces every operand and multiplies them elementwise.
func productAll(vs ...any) (series.Series, error) {
	var out series.Series
	for _, v := range vs {
		s, err := series.Coerce(v)
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = s
			continue
		}
		out, err = series.Mul(out, s)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
