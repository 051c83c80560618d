// Package waste implements the GPC solid waste and wastewater equations
// (GPC v7, Chapter 8): landfill methane (methane commitment and first order
// decay), biological treatment, incineration, and wastewater CH4 and N2O.
package waste

import (
	"github.com/rshade/cityghg/constants"
	"github.com/rshade/cityghg/series"
)

// Default parameter values published by the GPC for landfill gas modeling.
const (
	// DefaultDOCF is the fraction of degradable organic carbon that
	// ultimately degrades. Reflects that some carbon never decomposes.
	DefaultDOCF = 0.6

	// DefaultMethaneFraction is the fraction of methane in landfill gas.
	// Published range 0.4-0.6, usually taken to be 0.5.
	DefaultMethaneFraction = 0.5
)

// DOC content per wet waste type, from Table 2.4 of the 2006 IPCC
// Guidelines, Volume 5, Chapter 2. The industrial value (0.15) is carried
// from the GPC worksheet as a documented approximation; the IPCC table gives
// a range for industrial waste rather than a point value.
const (
	docFood       = 0.15
	docGarden     = 0.2
	docPaper      = 0.4
	docWood       = 0.43
	docTextiles   = 0.24
	docIndustrial = 0.15
)

// DOC computes the degradable organic carbon content of municipal solid
// waste from its fractional composition (GPC v7, Equation 8.1):
//
//	DOC = 0.15·A + 0.2·B + 0.4·C + 0.43·D + 0.24·E + 0.15·F
//
// Parameters, each a fraction of total solid waste mass in [0, 1]:
//   - food: food waste
//   - garden: garden waste and other plant debris
//   - paper: paper
//   - wood: wood
//   - textiles: textiles
//   - industrial: industrial waste
//
// Returns DOC in tonnes of carbon per tonne of waste, elementwise over the
// inputs.
func DOC(food, garden, paper, wood, textiles, industrial any) (series.Series, error) {
	fractions := []struct {
		name    string
		doc     float64
		operand any
	}{
		{"food fraction", docFood, food},
		{"garden fraction", docGarden, garden},
		{"paper fraction", docPaper, paper},
		{"wood fraction", docWood, wood},
		{"textiles fraction", docTextiles, textiles},
		{"industrial fraction", docIndustrial, industrial},
	}

	var total series.Series
	for _, f := range fractions {
		s, err := series.Coerce(f.operand)
		if err != nil {
			return nil, err
		}
		if err := series.CheckFraction(f.name, s); err != nil {
			return nil, err
		}
		term := series.Scale(s, f.doc)
		if total == nil {
			total = term
			continue
		}
		total, err = series.Add(total, term)
		if err != nil {
			return nil, err
		}
	}
	return total, nil
}

// MethaneGenerationPotential computes Lo, the amount of methane generated
// per tonne of solid waste (GPC v7, Equation 8.4):
//
//	Lo = MCF × DOC × DOCF × F × (16/12)
//
// Parameters:
//   - mcf: methane correction factor for the site management level
//     (see ManagementLevel.MCF), dimensionless
//   - doc: degradable organic carbon, in tonnes C / tonne waste
//   - docf: fraction of DOC that ultimately degrades (DefaultDOCF)
//   - f: fraction of methane in landfill gas (DefaultMethaneFraction)
//
// Returns Lo elementwise, in tonnes CH4 per tonne waste.
func MethaneGenerationPotential(mcf, doc any, docf, f float64) (series.Series, error) {
	mcfv, err := series.Coerce(mcf)
	if err != nil {
		return nil, err
	}
	docv, err := series.Coerce(doc)
	if err != nil {
		return nil, err
	}
	lo, err := series.Mul(mcfv, docv)
	if err != nil {
		return nil, err
	}
	return series.Scale(lo, docf*f*constants.CH4ToC.Value), nil
}

// MethaneCommitment estimates landfill CH4 for solid waste sent to landfill
// in the inventory year (GPC v7, Equation 8.3):
//
//	CH4 = MSW × Lo × (1 − Frec) × (1 − OX)
//
// The methane commitment method takes a lifecycle, mass-balance view: all
// future emissions from waste disposed in a given year are assigned to that
// year, regardless of when they actually occur.
//
// Parameters:
//   - msw: mass of solid waste sent to landfill, in tonnes
//   - lo: methane generation potential, tonnes CH4 / tonne waste
//   - frec: fraction of methane recovered at the landfill (flared or energy
//     recovery), in [0, 1]
//   - ox: oxidation factor, in [0, 1]; 0.1 for well-managed landfills,
//     0 for unmanaged sites
//
// Returns CH4 emissions elementwise, in tonnes.
func MethaneCommitment(msw, lo any, frec, ox float64) (series.Series, error) {
	if err := series.CheckFraction("frec", series.Series{frec}); err != nil {
		return nil, err
	}
	if err := series.CheckFraction("oxidation factor (ox)", series.Series{ox}); err != nil {
		return nil, err
	}

	mswv, err := series.Coerce(msw)
	if err != nil {
		return nil, err
	}
	lov, err := series.Coerce(lo)
	if err != nil {
		return nil, err
	}
	committed, err := series.Mul(mswv, lov)
	if err != nil {
		return nil, err
	}
	return series.Scale(committed, (1-frec)*(1-ox)), nil
}
