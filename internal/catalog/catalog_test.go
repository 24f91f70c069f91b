package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsukihara/workshelf/internal/catalog"
)

/*
TestMemoryLookup_CaseInsensitive verifies that a catalog containing "DLsite"
matches a scraped name "dlsite" while preserving the stored display casing.
*/
func TestMemoryLookup_CaseInsensitive(t *testing.T) {
	lookup := catalog.NewMemoryLookup()
	added := lookup.Add(catalog.KindCompany, "DLsite")

	found, err := lookup.FindByName(context.Background(), catalog.KindCompany, "dlsite")
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, added.ID, found.ID)
	assert.Equal(t, "DLsite", found.Name)
}

/*
TestMemoryLookup_KindScoped verifies that names are only matched within their
entity kind.
*/
func TestMemoryLookup_KindScoped(t *testing.T) {
	lookup := catalog.NewMemoryLookup()
	lookup.Add(catalog.KindGenre, "Fantasy")

	found, err := lookup.FindByName(context.Background(), catalog.KindSeries, "Fantasy")
	require.NoError(t, err)
	assert.Nil(t, found)
}

/*
TestMemoryLookup_Absent verifies absence returns nil, nil rather than an error.
*/
func TestMemoryLookup_Absent(t *testing.T) {
	lookup := catalog.NewMemoryLookup()

	found, err := lookup.FindByName(context.Background(), catalog.KindGenre, "Unknown")
	require.NoError(t, err)
	assert.Nil(t, found)
}
