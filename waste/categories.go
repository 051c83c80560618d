package waste

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for category lookups. Compare with errors.Is.
var (
	// ErrUnknownCategory indicates a category string outside the documented
	// key set for a lookup table.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrNoFactor indicates a category combination the GPC publishes no
	// emission factor for.
	ErrNoFactor = errors.New("no published emission factor")
)

// ManagementLevel classifies how a solid waste disposal site is managed.
// It determines both the methane correction factor and the oxidation factor
// (GPC v7, Equation 8.4 and Table 8.2).
type ManagementLevel int

const (
	// Managed is an anaerobic managed disposal site.
	Managed ManagementLevel = iota

	// ManagedWell is a semi-aerobic well-managed disposal site.
	ManagedWell

	// ManagedPoorly is a semi-aerobic poorly-managed disposal site.
	ManagedPoorly

	// UnmanagedDeep is an unmanaged site more than 5 m deep.
	UnmanagedDeep

	// UnmanagedShallow is an unmanaged site less than 5 m deep.
	UnmanagedShallow

	// Uncategorized is a disposal site of unknown management.
	Uncategorized
)

// managementLevelNames maps the documented key set, in table order.
var managementLevelNames = []string{
	"managed",
	"managed_well",
	"managed_poorly",
	"unmanaged_more5m",
	"unmanaged_less5m",
	"uncategorized",
}

// String returns the snake_case key for the management level.
func (m ManagementLevel) String() string {
	if int(m) < 0 || int(m) >= len(managementLevelNames) {
		return fmt.Sprintf("ManagementLevel(%d)", int(m))
	}
	return managementLevelNames[m]
}

// ParseManagementLevel resolves a management level key, case-insensitively.
// Unknown keys fail with ErrUnknownCategory naming the valid key set.
func ParseManagementLevel(s string) (ManagementLevel, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range managementLevelNames {
		if key == name {
			return ManagementLevel(i), nil
		}
	}
	return 0, fmt.Errorf("%w: management level %q not in %v", ErrUnknownCategory, s, managementLevelNames)
}

// MCF returns the methane correction factor for the management level
// (GPC v7, Equation 8.4). Dimensionless.
func (m ManagementLevel) MCF() float64 {
	switch m {
	case Managed:
		return 1
	case ManagedWell:
		return 0.5
	case ManagedPoorly:
		return 0.7
	case UnmanagedDeep:
		return 0.8
	case UnmanagedShallow:
		return 0.4
	default:
		return 0.6
	}
}

// OxidationFactor returns the fraction of generated methane oxidized in the
// cover layer for the management level: 0.1 for managed sites, 0 otherwise.
// Dimensionless.
func (m ManagementLevel) OxidationFactor() float64 {
	switch m {
	case Managed, ManagedWell, ManagedPoorly:
		return 0.1
	default:
		return 0
	}
}

// Treatment is a biological solid waste treatment type (GPC v7, Table 8.3).
type Treatment int

const (
	// Composting is aerobic composting of organic waste.
	Composting Treatment = iota

	// AnaerobicDigestion is anaerobic digestion at biogas facilities.
	AnaerobicDigestion
)

var treatmentNames = []string{"composting", "anaerobic_digestion"}

// String returns the snake_case key for the treatment type.
func (t Treatment) String() string {
	if int(t) < 0 || int(t) >= len(treatmentNames) {
		return fmt.Sprintf("Treatment(%d)", int(t))
	}
	return treatmentNames[t]
}

// ParseTreatment resolves a biological treatment key, case-insensitively.
func ParseTreatment(s string) (Treatment, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range treatmentNames {
		if key == name {
			return Treatment(i), nil
		}
	}
	return 0, fmt.Errorf("%w: treatment %q not in %v", ErrUnknownCategory, s, treatmentNames)
}

// Gas identifies the reported greenhouse gas for a biological treatment
// emission factor.
type Gas int

const (
	// CH4 is methane.
	CH4 Gas = iota

	// N2O is nitrous oxide.
	N2O
)

var gasNames = []string{"ch4", "n2o"}

// String returns the lowercase gas key.
func (g Gas) String() string {
	if int(g) < 0 || int(g) >= len(gasNames) {
		return fmt.Sprintf("Gas(%d)", int(g))
	}
	return gasNames[g]
}

// ParseGas resolves a gas key, case-insensitively.
func ParseGas(s string) (Gas, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range gasNames {
		if key == name {
			return Gas(i), nil
		}
	}
	return 0, fmt.Errorf("%w: gas %q not in %v", ErrUnknownCategory, s, gasNames)
}

// Basis selects the wet-weight or dry-weight emission factor variant.
type Basis int

const (
	// Wet reports the factor per wet waste mass.
	Wet Basis = iota

	// Dry reports the factor per dry waste mass.
	Dry
)

var basisNames = []string{"wet", "dry"}

// String returns the lowercase basis key.
func (b Basis) String() string {
	if int(b) < 0 || int(b) >= len(basisNames) {
		return fmt.Sprintf("Basis(%d)", int(b))
	}
	return basisNames[b]
}

// ParseBasis resolves a wet/dry key, case-insensitively.
func ParseBasis(s string) (Basis, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range basisNames {
		if key == name {
			return Basis(i), nil
		}
	}
	return 0, fmt.Errorf("%w: basis %q not in %v", ErrUnknownCategory, s, basisNames)
}

// biologicalEFs holds GPC v7 Table 8.3 in g gas / kg waste treated,
// keyed by treatment, gas, basis. The GPC publishes no N2O factor for
// anaerobic digestion.
var biologicalEFs = map[Treatment]map[Gas]map[Basis]float64{
	Composting: {
		CH4: {Dry: 10, Wet: 4},
		N2O: {Dry: 0.6, Wet: 0.24},
	},
	AnaerobicDigestion: {
		CH4: {Dry: 2, Wet: 0.8},
	},
}

// BiologicalTreatmentEF returns the emission factor for biological treatment
// of solid waste (GPC v7, Table 8.3), in grams of gas per kilogram of waste.
//
// The combination of anaerobic digestion and N2O has no published factor and
// fails with ErrNoFactor rather than reporting zero emissions.
func BiologicalTreatmentEF(treatment Treatment, gas Gas, basis Basis) (float64, error) {
	byGas, ok := biologicalEFs[treatment]
	if !ok {
		return 0, fmt.Errorf("%w: treatment %q not in %v", ErrUnknownCategory, treatment, treatmentNames)
	}
	byBasis, ok := byGas[gas]
	if !ok {
		return 0, fmt.Errorf("%w for %s from %s", ErrNoFactor, gas, treatment)
	}
	ef, ok := byBasis[basis]
	if !ok {
		return 0, fmt.Errorf("%w for %s from %s (%s basis)", ErrNoFactor, gas, treatment, basis)
	}
	return ef, nil
}
