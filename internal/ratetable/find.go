package ratetable

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hmtran/pqgo/internal/domain"
	"github.com/hmtran/pqgo/pkg/money"
)

// FindRate resolves the premium amount for one set of quoting
// coordinates. A nil result means no rate exists: the table has no row
// for the coordinates, or the tier is outside the published 1..5
// columns. A non-nil zero means the row exists but the cell carries the
// not-applicable sentinel: offered, at no cost. Callers must keep the
// two apart.
//
// Independent households map to the Independent contract column set,
// everything else to Bundled. Gender goes through NormalizeGender, so
// any value other than the canonical male marker looks up female rates.
// The only error is a malformed amount cell, which is a dataset
// problem, not an input problem.
func FindRate(t *Table, age int, benefit domain.Benefit, gender string, independent bool, tier int) (*decimal.Decimal, error) {
	contract := domain.Bundled
	if independent {
		contract = domain.Independent
	}
	rec := t.Lookup(age, benefit, contract, domain.NormalizeGender(gender))
	if rec == nil {
		return nil, nil
	}
	cell, ok := rec.PackageAmount(tier)
	if !ok {
		return nil, nil
	}
	amount, err := money.ParseAmount(cell)
	if err != nil {
		return nil, fmt.Errorf("rate table cell (age %d, %s, %s, %s, package %d): %w",
			age, benefit, contract, domain.NormalizeGender(gender), tier, err)
	}
	return &amount, nil
}
