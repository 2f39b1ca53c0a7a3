package output

import (
	json "github.com/goccy/go-json"

	"github.com/hmtran/pqgo/internal/domain"
)

// JSONFormatter renders the quote as indented JSON for machine
// consumers. Absent rates serialize as null, zero rates as "0".
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(quote *domain.HouseholdQuote) ([]byte, error) {
	return json.MarshalIndent(quote, "", "  ")
}
