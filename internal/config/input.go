package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hmtran/pqgo/internal/domain"
	"github.com/hmtran/pqgo/pkg/dateutil"
	"github.com/hmtran/pqgo/pkg/money"
)

// RatesFile is the on-disk shape of the published rate dataset.
type RatesFile struct {
	Rates []domain.RateRecord `yaml:"rates"`
}

// QuoteRequest is the on-disk shape of a quoting run: one household and
// an optional reference date. When the reference date is empty the
// caller supplies today; the engine itself never reads the clock, so
// quotes stay reproducible.
type QuoteRequest struct {
	ReferenceDate string               `yaml:"reference_date,omitempty" json:"reference_date,omitempty"`
	Household     []domain.PersonInput `yaml:"household" json:"household"`
}

// InputParser handles parsing of rate datasets and quote request files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadRatesFromFile loads and validates the published rate dataset from
// a YAML file. Validation here is strict: the dataset is maintained
// data, not user input, so a malformed row is an error the operator
// must fix before the process can serve quotes.
func (ip *InputParser) LoadRatesFromFile(filename string) ([]domain.RateRecord, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var rf RatesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i, r := range rf.Rates {
		if err := ip.validateRateRecord(&r); err != nil {
			return nil, fmt.Errorf("rate record %d validation failed: %w", i, err)
		}
	}

	return rf.Rates, nil
}

// validateRateRecord validates a single published rate row.
func (ip *InputParser) validateRateRecord(r *domain.RateRecord) error {
	if r.Age <= 0 {
		return fmt.Errorf("age must be positive, got %d", r.Age)
	}
	switch r.Benefit {
	case domain.MainBenefit, domain.CriticalIllness:
	default:
		return fmt.Errorf("benefit must be %q or %q, got %q", domain.MainBenefit, domain.CriticalIllness, r.Benefit)
	}
	switch r.ContractType {
	case domain.Independent, domain.Bundled:
	default:
		return fmt.Errorf("contract type must be %q or %q, got %q", domain.Independent, domain.Bundled, r.ContractType)
	}
	switch r.Gender {
	case domain.GenderMale, domain.GenderFemale:
	default:
		return fmt.Errorf("gender must be %q or %q, got %q", domain.GenderMale, domain.GenderFemale, r.Gender)
	}
	if len(r.Packages) != domain.PackageTierCount {
		return fmt.Errorf("expected %d package amounts, got %d", domain.PackageTierCount, len(r.Packages))
	}
	for tier := 1; tier <= domain.PackageTierCount; tier++ {
		cell, _ := r.PackageAmount(tier)
		if _, err := money.ParseAmount(cell); err != nil {
			return fmt.Errorf("package %d: %w", tier, err)
		}
	}
	return nil
}

// LoadQuoteFromFile loads a quote request from a YAML file. Person
// fields stay permissive (a bad date of birth or package tier must
// still produce a zero quote), but the file has to name at least one
// person, and a reference date, when present, has to be a real date.
func (ip *InputParser) LoadQuoteFromFile(filename string) (*QuoteRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var req QuoteRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateQuoteRequest(&req); err != nil {
		return nil, fmt.Errorf("quote request validation failed: %w", err)
	}

	return &req, nil
}

// ValidateQuoteRequest validates the shape of a quote request.
func (ip *InputParser) ValidateQuoteRequest(req *QuoteRequest) error {
	if len(req.Household) == 0 {
		return fmt.Errorf("household must contain at least one person")
	}
	if req.ReferenceDate != "" && dateutil.Parse(req.ReferenceDate) == nil {
		return fmt.Errorf("reference date %q is not a valid DD/MM/YYYY date", req.ReferenceDate)
	}
	return nil
}
