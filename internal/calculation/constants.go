package calculation

import "github.com/shopspring/decimal"

// Maternity is a fixed-amount rider, never looked up in the rate table.
// Eligibility: selected, female, insurance age within the inclusive
// range below, and package tier at or above the minimum.
const (
	MaternityMinAge  = 19
	MaternityMaxAge  = 50
	MaternityMinTier = 3
)

// MaternityFixedAmount is the flat maternity benefit, 2,000,000
// currency units.
var MaternityFixedAmount = decimal.NewFromInt(2_000_000)
