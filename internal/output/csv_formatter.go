package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/hmtran/pqgo/internal/domain"
)

// CSVFormatter renders one row per person plus a household total row.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(quote *domain.HouseholdQuote) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"name", "age", "package", "contract", "main", "critical_illness", "maternity", "total"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i, p := range quote.Persons {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("person_%d", i+1)
		}
		contract := "bundled"
		if p.Independent {
			contract = "independent"
		}
		row := []string{
			name,
			strconv.Itoa(p.Age),
			p.PackageLabel,
			contract,
			csvRate(p.MainRate),
			csvRate(p.CriticalIllnessRate),
			p.MaternityAmount.StringFixed(0),
			p.Total.StringFixed(0),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	totalRow := []string{"household_total", "", "", "", "", "", "", quote.GrandTotal.StringFixed(0)}
	if err := w.Write(totalRow); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func csvRate(rate *decimal.Decimal) string {
	if rate == nil {
		return ""
	}
	return rate.StringFixed(0)
}
