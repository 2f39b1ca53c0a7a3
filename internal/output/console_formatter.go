package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hmtran/pqgo/internal/domain"
	"github.com/hmtran/pqgo/pkg/money"
)

// ConsoleFormatter renders a human-readable quote report.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(quote *domain.HouseholdQuote) ([]byte, error) {
	var b strings.Builder

	b.WriteString("=================================================\n")
	b.WriteString("HEALTH INSURANCE PREMIUM QUOTE\n")
	b.WriteString("=================================================\n")
	fmt.Fprintf(&b, "Reference date: %s\n", quote.ReferenceDate)
	fmt.Fprintf(&b, "Insured persons: %d", len(quote.Persons))
	if len(quote.Persons) == 1 {
		b.WriteString(" (independent contract)")
	} else {
		b.WriteString(" (bundled contract)")
	}
	b.WriteString("\n\n")

	for i, p := range quote.Persons {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("Person %d", i+1)
		}
		fmt.Fprintf(&b, "%s (%s, insurance age %d)\n", name, p.PackageLabel, p.Age)
		b.WriteString(strings.Repeat("-", 49) + "\n")
		fmt.Fprintf(&b, "  Main benefit:       %s\n", formatRate(p.MainRate))
		fmt.Fprintf(&b, "  Critical illness:   %s\n", formatRate(p.CriticalIllnessRate))
		fmt.Fprintf(&b, "  Maternity:          %s\n", FormatCurrency(p.MaternityAmount))
		fmt.Fprintf(&b, "  TOTAL:              %s\n\n", FormatCurrency(p.Total))
	}

	fmt.Fprintf(&b, "HOUSEHOLD TOTAL: %s\n", FormatCurrency(quote.GrandTotal))

	return []byte(b.String()), nil
}

// formatRate distinguishes an absent rate from a zero one in reports:
// absent means the product is not offered at these coordinates at all.
func formatRate(rate *decimal.Decimal) string {
	if rate == nil {
		return "not offered"
	}
	return FormatCurrency(*rate)
}

// FormatCurrency formats a whole-unit amount with comma grouping.
func FormatCurrency(amount decimal.Decimal) string {
	return money.FormatAmount(amount)
}
