package calculation

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/hmtran/pqgo/internal/domain"
	"github.com/hmtran/pqgo/internal/ratetable"
	"github.com/hmtran/pqgo/pkg/dateutil"
)

// Engine computes premium quotes against one immutable rate table. The
// table is supplied at construction and never replaced, so a single
// Engine may serve any number of computations concurrently.
type Engine struct {
	Table  *ratetable.Table
	Logger Logger
	Debug  bool
}

// NewEngine creates a premium engine over an already built rate table.
func NewEngine(table *ratetable.Table) *Engine {
	return &Engine{
		Table:  table,
		Logger: NopLogger{},
	}
}

// SetLogger replaces the engine logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// ComputePerson produces the full premium breakdown for one person.
// householdSize is the number of insured persons sharing the policy;
// exactly 1 selects the Independent rates, anything else (including 0)
// the Bundled rates.
//
// Malformed input never errors here: an unparseable date of birth
// yields age 0, an unparseable or out-of-range package tier yields
// absent rates, and the result is a structurally valid all-zero
// breakdown. The only error is a corrupt amount cell in the dataset.
func (e *Engine) ComputePerson(input domain.PersonInput, householdSize int, refDate dateutil.Date) (*domain.PremiumBreakdown, error) {
	age := dateutil.InsuranceAge(input.DateOfBirth, refDate)
	independent := householdSize == 1
	tier := parseTier(input.Package)

	if e.Debug {
		e.Logger.Debugf("computing premium: age=%d independent=%t tier=%d gender=%s",
			age, independent, tier, domain.NormalizeGender(input.Gender))
	}

	mainRate, err := ratetable.FindRate(e.Table, age, domain.MainBenefit, input.Gender, independent, tier)
	if err != nil {
		return nil, fmt.Errorf("main benefit: %w", err)
	}
	mainAmount := decimal.Zero
	if mainRate != nil {
		mainAmount = *mainRate
	}

	// An unselected rider is a plain zero, not an absent rate: only
	// "selected but the table has nothing" reports absent.
	zero := decimal.Zero
	ciRate := &zero
	if input.CriticalIllness {
		ciRate, err = ratetable.FindRate(e.Table, age, domain.CriticalIllness, input.Gender, independent, tier)
		if err != nil {
			return nil, fmt.Errorf("critical illness rider: %w", err)
		}
	}
	ciAmount := decimal.Zero
	if ciRate != nil {
		ciAmount = *ciRate
	}

	maternity := decimal.Zero
	if input.Maternity &&
		domain.NormalizeGender(input.Gender) == domain.GenderFemale &&
		age >= MaternityMinAge && age <= MaternityMaxAge &&
		tier >= MaternityMinTier {
		maternity = MaternityFixedAmount
	}

	return &domain.PremiumBreakdown{
		Name:                  input.Name,
		Age:                   age,
		Independent:           independent,
		MainRate:              mainRate,
		MainAmount:            mainAmount,
		CriticalIllnessRate:   ciRate,
		CriticalIllnessAmount: ciAmount,
		MaternityAmount:       maternity,
		Total:                 mainAmount.Add(ciAmount).Add(maternity),
		PackageLabel:          fmt.Sprintf("Package %d", tier),
	}, nil
}

// ComputeHousehold quotes every person of one household independently
// and sums the totals. The household size is the list length; it feeds
// each person's independent/bundled determination and nothing else.
func (e *Engine) ComputeHousehold(persons []domain.PersonInput, refDate dateutil.Date) (*domain.HouseholdQuote, error) {
	quote := &domain.HouseholdQuote{
		ReferenceDate: refDate,
		Persons:       make([]domain.PremiumBreakdown, 0, len(persons)),
		GrandTotal:    decimal.Zero,
	}
	for i, p := range persons {
		breakdown, err := e.ComputePerson(p, len(persons), refDate)
		if err != nil {
			return nil, fmt.Errorf("person %d (%s): %w", i+1, p.Name, err)
		}
		quote.Persons = append(quote.Persons, *breakdown)
		quote.GrandTotal = quote.GrandTotal.Add(breakdown.Total)
	}
	return quote, nil
}

// parseTier reads the raw package tier. Unparseable values become 0,
// which no rate table column matches, so bad tiers resolve to absent
// further down rather than erroring here.
func parseTier(raw string) int {
	tier, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return tier
}
