package waste

import (
	"github.com/rshade/cityghg/constants"
	"github.com/rshade/cityghg/series"
)

// TOW computes total organics in domestic wastewater for the inventory year
// (GPC v7, Equation 8.11):
//
//	TOW = P × BOD × I × 365
//
// Parameters:
//   - p: population served in the inventory year
//   - bod: city-specific per capita BOD, in g / person / day
//   - i: correction factor for additional industrial BOD discharged into
//     sewers; GPC defaults are 1.25 for collected wastewater and 1.00 for
//     uncollected
//
// Returns TOW elementwise, in kg BOD / yr.
func TOW(p, bod, i any) (series.Series, error) {
	pv, err := series.Coerce(p)
	if err != nil {
		return nil, err
	}
	bodv, err := series.Coerce(bod)
	if err != nil {
		return nil, err
	}
	iv, err := series.Coerce(i)
	if err != nil {
		return nil, err
	}

	load, err := series.Mul(pv, bodv)
	if err != nil {
		return nil, err
	}
	load, err = series.Mul(load, iv)
	if err != nil {
		return nil, err
	}
	return series.Scale(load, constants.YearToDays.Value), nil
}

// WastewaterCH4EF computes the CH4 emission factor for a treatment and
// discharge pathway (GPC v7, Equation 8.10):
//
//	EF = B × MCF_j × U_i × T_ij
//
// where i is the income group and j the treatment or discharge pathway.
//
// Parameters:
//   - b: maximum CH4 producing capacity; GPC defaults are 0.6 kg CH4/kg BOD
//     and 0.25 kg CH4/kg COD
//   - mcf: methane correction factor for the pathway, a fraction
//   - u: fraction of population in income group i
//   - t: degree of utilization of pathway j by income group i
//
// Returns the emission factor elementwise per pathway and income group.
func WastewaterCH4EF(b, mcf, u, t any) (series.Series, error) {
	ef, err := series.Coerce(b)
	if err != nil {
		return nil, err
	}
	for _, operand := range []any{mcf, u, t} {
		v, err := series.Coerce(operand)
		if err != nil {
			return nil, err
		}
		ef, err = series.Mul(ef, v)
		if err != nil {
			return nil, err
		}
	}
	return ef, nil
}

// WastewaterCH4 computes CH4 emissions from wastewater treatment and
// discharge (GPC v7, Equation 8.9):
//
//	E = [ (TOW − S) × EF − R ] × (kg→tonne)
//
// Parameters:
//   - tow: organic content of the wastewater, in kg BOD/yr (domestic) or
//     kg COD/yr (industrial)
//   - s: organic component removed as sludge in the inventory year, in the
//     same unit as tow
//   - ef: emission factor, in kg CH4 per kg BOD or COD
//   - r: CH4 recovered in the inventory year, in kg CH4/yr
//
// Returns CH4 emissions elementwise, in tonnes.
func WastewaterCH4(tow, s, ef, r any) (series.Series, error) {
	towv, err := series.Coerce(tow)
	if err != nil {
		return nil, err
	}
	sv, err := series.Coerce(s)
	if err != nil {
		return nil, err
	}
	efv, err := series.Coerce(ef)
	if err != nil {
		return nil, err
	}
	rv, err := series.Coerce(r)
	if err != nil {
		return nil, err
	}

	remaining, err := series.Sub(towv, sv)
	if err != nil {
		return nil, err
	}
	emitted, err := series.Mul(remaining, efv)
	if err != nil {
		return nil, err
	}
	net, err := series.Sub(emitted, rv)
	if err != nil {
		return nil, err
	}
	return series.Scale(net, constants.KgToTonne.Value), nil
}

// WastewaterN2OIndirect computes indirect N2O emissions from wastewater
// discharge (GPC v7, Equation 8.12):
//
//	E = [ (P × protein × Fnrp × Fnon × Find) − N ] × EF × (44/28) × (kg→tonne)
//
// Parameters:
//   - p: population served by the treatment plant
//   - protein: annual per capita protein consumption, in kg / person / yr
//   - fnrp: adjustment for non-consumed protein; 1.1 for countries without
//     garbage disposals, 1.4 with
//   - fnon: fraction of nitrogen in protein, default 0.16 kg N / kg protein
//   - find: factor for industrial and commercial co-discharged protein;
//     1.25 for centralized systems, 0 for decentralized
//   - n: nitrogen removed with sludge, in kg N / yr (default 0)
//   - ef: emission factor for N2O from discharged wastewater,
//     in kg N2O-N / kg N
//
// Returns N2O emissions elementwise, in tonnes.
func WastewaterN2OIndirect(p, protein, fnrp, fnon, find, n, ef any) (series.Series, error) {
	nitrogen, err := series.Coerce(p)
	if err != nil {
		return nil, err
	}
	for _, operand := range []any{protein, fnrp, fnon, find} {
		v, err := series.Coerce(operand)
		if err != nil {
			return nil, err
		}
		nitrogen, err = series.Mul(nitrogen, v)
		if err != nil {
			return nil, err
		}
	}

	nv, err := series.Coerce(n)
	if err != nil {
		return nil, err
	}
	discharged, err := series.Sub(nitrogen, nv)
	if err != nil {
		return nil, err
	}

	efv, err := series.Coerce(ef)
	if err != nil {
		return nil, err
	}
	emitted, err := series.Mul(discharged, efv)
	if err != nil {
		return nil, err
	}
	return series.Scale(emitted, constants.NToN2O.Value*constants.KgToTonne.Value), nil
}
