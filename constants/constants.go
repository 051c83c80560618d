// Package constants is the read-only registry of physical conversion ratios
// and global-warming-potential factors used across the sector equations.
//
// Two namespaces are exposed: unit conversions (mass and time ratios) and
// GWP-100 factors from IPCC AR6. Every constant carries its value, a
// descriptive long name, and units, and is additionally addressable by a
// stable snake_case name through Conversion and GWP100AR6.
package constants

import "sort"

// Constant is an immutable named physical ratio. Values are fixed at load
// time and never mutated.
type Constant struct {
	// Value is the numeric ratio.
	Value float64

	// LongName is a human-readable description of the ratio.
	LongName string

	// Units documents the dimension of the ratio.
	Units string
}

// Unit conversion constants.
var (
	// KgToTonne converts kilograms to metric tonnes.
	KgToTonne = Constant{Value: 0.001, LongName: "tonnes in a kilogram", Units: "dimensionless"}

	// GToTonne converts grams to metric tonnes.
	GToTonne = Constant{Value: 1e-6, LongName: "tonnes in a gram", Units: "dimensionless"}

	// KgToGg converts kilograms to gigagrams (1 Gg == 1000 tonnes).
	KgToGg = Constant{Value: 1e-6, LongName: "gigagrams in a kilogram", Units: "dimensionless"}

	// NToN2O is the molecular mass ratio of N2O to N2 (44/28).
	NToN2O = Constant{Value: 44.0 / 28.0, LongName: "ratio of N2O to N2", Units: "dimensionless"}

	// CToCO2 is the molecular mass ratio of CO2 to C (44/12).
	CToCO2 = Constant{Value: 44.0 / 12.0, LongName: "ratio of CO2 to C", Units: "dimensionless"}

	// CH4ToC is the molecular mass ratio of CH4 to C (16/12).
	CH4ToC = Constant{Value: 16.0 / 12.0, LongName: "ratio of CH4 to C", Units: "dimensionless"}

	// YearToDays is the day count used for annualized rates.
	YearToDays = Constant{Value: 365, LongName: "days in a year", Units: "days/year"}
)

// GWP-100 factors, IPCC Sixth Assessment Report (AR6), including
// climate-carbon feedbacks.
var (
	// GWPCO2 is the reference factor for CO2.
	GWPCO2 = Constant{Value: 1, LongName: "GWP for CO2", Units: "dimensionless"}

	// GWPCH4Fossil is the factor for CH4 of fossil origin.
	GWPCH4Fossil = Constant{Value: 29.8, LongName: "GWP for CH4 from fossil origin, including feedbacks", Units: "mass CO2 / mass CH4"}

	// GWPCH4NonFossil is the factor for CH4 of non-fossil origin.
	GWPCH4NonFossil = Constant{Value: 27.2, LongName: "GWP for CH4 from non-fossil origin, including feedbacks", Units: "mass CO2 / mass CH4"}

	// GWPN2O is the factor for N2O.
	GWPN2O = Constant{Value: 273, LongName: "GWP for N2O, including feedbacks", Units: "mass CO2 / mass N2O"}
)

var conversions = map[string]Constant{
	"kg_to_tonne":  KgToTonne,
	"g_to_tonne":   GToTonne,
	"kg_to_gg":     KgToGg,
	"n_to_n2o":     NToN2O,
	"c_to_co2":     CToCO2,
	"ch4_to_c":     CH4ToC,
	"year_to_days": YearToDays,
}

var gwp100AR6 = map[string]Constant{
	"co2":            GWPCO2,
	"ch4_fossil":     GWPCH4Fossil,
	"ch4_non_fossil": GWPCH4NonFossil,
	"n2o":            GWPN2O,
}

// Conversion returns the unit conversion registered under name.
// Returns (Constant{}, false) for an unregistered name.
func Conversion(name string) (Constant, bool) {
	c, ok := conversions[name]
	return c, ok
}

// ConversionNames returns the sorted names of all registered unit conversions.
func ConversionNames() []string {
	return sortedKeys(conversions)
}

// GWP100AR6 returns the AR6 100-year GWP factor registered under name.
// Returns (Constant{}, false) for an unregistered name.
func GWP100AR6(name string) (Constant, bool) {
	c, ok := gwp100AR6[name]
	return c, ok
}

// GWP100AR6Names returns the sorted names of all registered GWP factors.
func GWP100AR6Names() []string {
	return sortedKeys(gwp100AR6)
}

func sortedKeys(m map[string]Constant) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
