package domain

// Benefit identifies a priced coverage in the published rate table.
type Benefit string

const (
	MainBenefit     Benefit = "main"
	CriticalIllness Benefit = "critical_illness"
	// Maternity is a fixed-amount rider and never appears in the rate
	// table; it is listed here so package labels and reports can name it.
	Maternity Benefit = "maternity"
)

// ContractType distinguishes the two published rate column sets.
type ContractType string

const (
	// Independent covers exactly one insured person.
	Independent ContractType = "independent"
	// Bundled covers two or more persons under one household.
	Bundled ContractType = "bundled"
)

// Gender is a two-valued enumeration matching the published table.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// NormalizeGender maps a raw gender string onto the table's two values.
// Anything other than the canonical male marker is treated as female.
// This mirrors the insurer's published policy; see the open question in
// DESIGN.md before making this stricter.
func NormalizeGender(raw string) Gender {
	if raw == string(GenderMale) {
		return GenderMale
	}
	return GenderFemale
}

// PackageTierCount is the number of package columns in the rate table.
const PackageTierCount = 5

// RateRecord is one published rate-table row. The four lookup fields
// (Age, Benefit, ContractType, Gender) are unique across the table.
// Rows are loaded once at startup and never mutated.
type RateRecord struct {
	Age          int          `yaml:"age" json:"age"`
	Benefit      Benefit      `yaml:"benefit" json:"benefit"`
	ContractType ContractType `yaml:"contract_type" json:"contract_type"`
	Gender       Gender       `yaml:"gender" json:"gender"`
	// Packages holds the five tier amounts as published: a comma-grouped
	// integer string, or the not-applicable sentinel, per tier 1..5.
	Packages []string `yaml:"packages" json:"packages"`
}

// PackageAmount returns the published cell for a tier (1-based). The
// second result is false when the tier has no column, which callers
// must treat as "no rate exists", not as zero.
func (r *RateRecord) PackageAmount(tier int) (string, bool) {
	if tier < 1 || tier > PackageTierCount || tier > len(r.Packages) {
		return "", false
	}
	return r.Packages[tier-1], true
}
