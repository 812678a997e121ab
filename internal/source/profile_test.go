package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileTable() *Table {
	return &Table{
		Columns: []string{"Carrier Name", "Status", "Phone"},
		Rows: []Row{
			{Line: 2, Cells: []string{"Acme", "Onboarded", "5551234567"}},
			{Line: 3, Cells: []string{"Borden", "Onboarded", ""}},
			{Line: 4, Cells: []string{"", "Not Onboarded", "5559876543"}},
			{Line: 5, Cells: []string{"Calder", "  ", "5550001111"}},
		},
	}
}

func TestProfile(t *testing.T) {
	profiles := Profile(profileTable(), []string{"Carrier Name", "Phone", "Safety Rating"}, 2)

	require.Len(t, profiles, 2, "columns missing from the header are omitted")

	assert.Equal(t, "Carrier Name", profiles[0].Name)
	assert.Equal(t, 3, profiles[0].NonNull)
	assert.Equal(t, []string{"Acme", "Borden"}, profiles[0].Samples, "samples are capped")

	assert.Equal(t, "Phone", profiles[1].Name)
	assert.Equal(t, 3, profiles[1].NonNull)
}

func TestValueCounts(t *testing.T) {
	counts := ValueCounts(profileTable(), "Status")

	require.Len(t, counts, 2, "blank cells are not counted")
	assert.Equal(t, ValueCount{Value: "Onboarded", Count: 2}, counts[0])
	assert.Equal(t, ValueCount{Value: "Not Onboarded", Count: 1}, counts[1])

	assert.Nil(t, ValueCounts(profileTable(), "Safety Rating"))
}
