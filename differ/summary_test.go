package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	changes := []Change{
		{Category: CategoryEndpoint, Type: ChangeTypeAdded},
		{Category: CategoryEndpoint, Type: ChangeTypeAdded},
		{Category: CategoryEndpoint, Type: ChangeTypeDeprecated},
		{Category: CategoryParameter, Type: ChangeTypeModified},
		{Category: CategorySchemaProperty, Type: ChangeTypeRemoved},
		{Category: CategorySecurity, Type: ChangeTypeRemoved},
		{Category: Category("UNKNOWN"), Type: ChangeTypeAdded},
	}

	s := Summarize(changes)
	assert.Equal(t, CategoryCounts{Added: 2, Deprecated: 1}, s.Endpoints)
	assert.Equal(t, CategoryCounts{Modified: 1}, s.For(CategoryParameter))
	assert.Equal(t, 1, s.SchemaProperties.Removed)
	assert.Equal(t, 1, s.Security.Removed)
	assert.Equal(t, CategoryCounts{}, s.For(Category("UNKNOWN")))

	total := 0
	for _, c := range Categories() {
		total += s.For(c).Total()
	}
	assert.Equal(t, 6, total, "changes in unknown categories are not counted")
}
