package output

import (
	"github.com/hmtran/pqgo/internal/domain"
)

// Formatter defines a pluggable quote report formatter that returns a
// byte slice. Implementations should be pure (no side effects besides
// deterministic formatting).
type Formatter interface {
	Format(quote *domain.HouseholdQuote) ([]byte, error)
	// Name returns a short identifier for lookup and logging.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName fetches a registered formatter, nil if unknown.
func GetFormatterByName(name string) Formatter {
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
