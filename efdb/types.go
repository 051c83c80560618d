package efdb

// Record is one emission factor entry from the IPCC Emission Factor
// Database extract. Fields mirror the EFDB export columns this module
// distills its datasets from.
type Record struct {
	// ID is the EFDB identifier of the factor.
	ID string `json:"ef_id"`

	// Sector is the inventory sector the factor belongs to
	// ("waste" or "ippu").
	Sector string `json:"sector"`

	// Category is the IPCC source/sink category code and name.
	Category string `json:"ipcc_category"`

	// Gas is the full gas name (e.g. "METHANE", "CARBON DIOXIDE").
	Gas string `json:"gas"`

	// Region names the region or regional conditions the factor was
	// derived for. "Generic" marks factors with global applicability.
	Region string `json:"region"`

	// Description is the EFDB free-text description of the factor.
	Description string `json:"description"`

	// Value is the numeric factor.
	Value float64 `json:"value"`

	// Unit is the unit of Value as published.
	Unit string `json:"unit"`

	// Reference cites the technical source of the factor.
	Reference string `json:"technical_reference"`
}

// dataset is the embedded JSON layout for one sector extract.
type dataset struct {
	Sector  string   `json:"sector"`
	Vintage string   `json:"vintage"`
	Records []Record `json:"records"`
}

// Query filters emission factor lookups. Zero-value fields match every
// record, so Query{} returns a sector's full extract.
type Query struct {
	// Region matches the record region exactly, case-insensitively.
	Region string

	// Gas matches the full gas name, case-insensitively.
	Gas string

	// Search matches records whose description contains the phrase,
	// case-insensitively.
	Search string
}
