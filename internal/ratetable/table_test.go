package ratetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmtran/pqgo/internal/domain"
)

func record(age int, benefit domain.Benefit, contract domain.ContractType, gender domain.Gender, packages ...string) domain.RateRecord {
	return domain.RateRecord{
		Age:          age,
		Benefit:      benefit,
		ContractType: contract,
		Gender:       gender,
		Packages:     packages,
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	table := Build(nil)

	require.NotNil(t, table, "Empty input yields a valid empty table")
	assert.Equal(t, 0, table.Len())
	assert.Nil(t, table.Lookup(25, domain.MainBenefit, domain.Independent, domain.GenderFemale))
}

func TestBuild_IndexesByCompositeKey(t *testing.T) {
	table := Build([]domain.RateRecord{
		record(25, domain.MainBenefit, domain.Independent, domain.GenderFemale, "963,000", "1,152,000", "1,423,000", "1,768,000", "2,194,000"),
		record(25, domain.MainBenefit, domain.Bundled, domain.GenderFemale, "842,000", "1,008,000", "1,245,000", "1,547,000", "1,920,000"),
		record(25, domain.CriticalIllness, domain.Independent, domain.GenderFemale, "215,000", "258,000", "319,000", "396,000", "491,000"),
	})

	assert.Equal(t, 3, table.Len(), "Each distinct 4-tuple gets one row")

	rec := table.Lookup(25, domain.MainBenefit, domain.Bundled, domain.GenderFemale)
	require.NotNil(t, rec, "Exact key should be found")
	assert.Equal(t, "842,000", rec.Packages[0])

	assert.Nil(t, table.Lookup(25, domain.MainBenefit, domain.Independent, domain.GenderMale),
		"Gender is part of the key")
	assert.Nil(t, table.Lookup(26, domain.MainBenefit, domain.Independent, domain.GenderFemale),
		"No nearest-age fallback")
	assert.Nil(t, table.Lookup(0, domain.MainBenefit, domain.Independent, domain.GenderFemale),
		"Age 0 is never covered")
}

func TestBuild_LastWriteWinsOnCollision(t *testing.T) {
	table := Build([]domain.RateRecord{
		record(30, domain.MainBenefit, domain.Independent, domain.GenderMale, "1", "2", "3", "4", "5"),
		record(30, domain.MainBenefit, domain.Independent, domain.GenderMale, "10", "20", "30", "40", "50"),
	})

	assert.Equal(t, 1, table.Len())
	rec := table.Lookup(30, domain.MainBenefit, domain.Independent, domain.GenderMale)
	require.NotNil(t, rec)
	assert.Equal(t, "10", rec.Packages[0], "Later record silently overwrites the earlier")
}

func TestDuplicateKeys(t *testing.T) {
	records := []domain.RateRecord{
		record(30, domain.MainBenefit, domain.Independent, domain.GenderMale, "1", "2", "3", "4", "5"),
		record(31, domain.MainBenefit, domain.Independent, domain.GenderMale, "1", "2", "3", "4", "5"),
		record(30, domain.MainBenefit, domain.Independent, domain.GenderMale, "9", "9", "9", "9", "9"),
		record(30, domain.MainBenefit, domain.Independent, domain.GenderMale, "8", "8", "8", "8", "8"),
	}

	dups := DuplicateKeys(records)
	require.Len(t, dups, 1, "Triple occurrence reports one duplicate key")
	assert.Equal(t, Key{Age: 30, Benefit: domain.MainBenefit, ContractType: domain.Independent, Gender: domain.GenderMale}, dups[0])

	assert.Empty(t, DuplicateKeys(records[:2]), "Distinct keys report nothing")
}

func TestLookup_ReturnsCopy(t *testing.T) {
	table := Build([]domain.RateRecord{
		record(25, domain.MainBenefit, domain.Independent, domain.GenderFemale, "963,000", "1,152,000", "1,423,000", "1,768,000", "2,194,000"),
	})

	rec := table.Lookup(25, domain.MainBenefit, domain.Independent, domain.GenderFemale)
	require.NotNil(t, rec)
	rec.Age = 99

	again := table.Lookup(25, domain.MainBenefit, domain.Independent, domain.GenderFemale)
	require.NotNil(t, again)
	assert.Equal(t, 25, again.Age, "Callers cannot mutate the table through lookup results")
}
