package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NotApplicable is the rate-table sentinel for "this tier is not sold
// at this age". It resolves to a zero amount, which is deliberately
// distinct from the row being absent altogether.
const NotApplicable = "N/A"

// ParseAmount converts a published monetary cell into a decimal amount.
// Empty cells and the not-applicable sentinel are zero. Everything else
// must be a comma-grouped base-10 integer; any other residue is a
// data-integrity error in the dataset, the one condition this system
// fails loudly on.
func ParseAmount(text string) (decimal.Decimal, error) {
	if text == "" || text == NotApplicable {
		return decimal.Zero, nil
	}
	cleaned := strings.ReplaceAll(text, ",", "")
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed amount %q: %w", text, err)
	}
	return decimal.NewFromInt(n), nil
}

// FormatAmount renders a whole-unit amount with comma grouping, the way
// the published tables print it ("2,000,000").
func FormatAmount(amount decimal.Decimal) string {
	s := amount.StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
