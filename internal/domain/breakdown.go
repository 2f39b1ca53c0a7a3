package domain

import (
	"github.com/shopspring/decimal"

	"github.com/hmtran/pqgo/pkg/dateutil"
)

// PremiumBreakdown is the computed quote for one person. For the main
// benefit and the critical-illness rider it carries both a raw and a
// resolved amount: the raw pointer is nil when no rate exists for the
// person's coordinates ("not offered"), while a non-nil zero means the
// product is offered at no cost for that tier. The resolved fields are
// always defined and feed the arithmetic total.
type PremiumBreakdown struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Age         int    `json:"age" yaml:"age"`
	Independent bool   `json:"independent" yaml:"independent"`

	MainRate   *decimal.Decimal `json:"main_rate" yaml:"main_rate"`
	MainAmount decimal.Decimal  `json:"main_amount" yaml:"main_amount"`

	CriticalIllnessRate   *decimal.Decimal `json:"critical_illness_rate" yaml:"critical_illness_rate"`
	CriticalIllnessAmount decimal.Decimal  `json:"critical_illness_amount" yaml:"critical_illness_amount"`

	MaternityAmount decimal.Decimal `json:"maternity_amount" yaml:"maternity_amount"`

	Total        decimal.Decimal `json:"total" yaml:"total"`
	PackageLabel string          `json:"package_label" yaml:"package_label"`
}

// HouseholdQuote aggregates the independently computed per-person
// breakdowns for one household. The grand total is a plain sum; the
// only cross-person interaction is the household size feeding the
// independent/bundled determination.
type HouseholdQuote struct {
	ReferenceDate dateutil.Date      `json:"reference_date" yaml:"reference_date"`
	Persons       []PremiumBreakdown `json:"persons" yaml:"persons"`
	GrandTotal    decimal.Decimal    `json:"grand_total" yaml:"grand_total"`
}
