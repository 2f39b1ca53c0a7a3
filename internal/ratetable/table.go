package ratetable

import (
	"github.com/hmtran/pqgo/internal/domain"
)

// Key is the composite lookup key of the published table. Equality over
// the four fields carries the same semantics as the insurer's
// concatenated string key: exact match, no normalization beyond the
// canonical enum values.
type Key struct {
	Age          int
	Benefit      domain.Benefit
	ContractType domain.ContractType
	Gender       domain.Gender
}

// Table is an immutable index over the published rate records. Build it
// once at startup; afterwards any number of calculations may share it
// without coordination, since nothing ever mutates it.
type Table struct {
	records map[Key]domain.RateRecord
}

// Build indexes the records in a single pass. When two records collide
// on the same key the later one wins; the dataset is assumed not to
// contain collisions, and DuplicateKeys exists to check that assumption
// offline. An empty input yields a valid empty table.
func Build(records []domain.RateRecord) *Table {
	t := &Table{records: make(map[Key]domain.RateRecord, len(records))}
	for _, r := range records {
		t.records[keyOf(r)] = r
	}
	return t
}

func keyOf(r domain.RateRecord) Key {
	return Key{Age: r.Age, Benefit: r.Benefit, ContractType: r.ContractType, Gender: r.Gender}
}

// Lookup returns the record for the exact coordinates, or nil when the
// table has no such row. There is no nearest-age fallback: an uncovered
// age is simply not offered.
func (t *Table) Lookup(age int, benefit domain.Benefit, contract domain.ContractType, gender domain.Gender) *domain.RateRecord {
	r, ok := t.records[Key{Age: age, Benefit: benefit, ContractType: contract, Gender: gender}]
	if !ok {
		return nil
	}
	return &r
}

// Len reports the number of indexed rows.
func (t *Table) Len() int {
	return len(t.records)
}

// DuplicateKeys reports every key that appears more than once in the
// input, in input order. Collisions are tolerated at build time
// (last-write-wins) but indicate a data-entry mistake worth surfacing.
func DuplicateKeys(records []domain.RateRecord) []Key {
	seen := make(map[Key]int, len(records))
	var dups []Key
	for _, r := range records {
		k := keyOf(r)
		seen[k]++
		if seen[k] == 2 {
			dups = append(dups, k)
		}
	}
	return dups
}
