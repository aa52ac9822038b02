package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// marker returns a stage that records its execution order.
func marker(order *[]string, name string) Stage {
	return func(db *gorm.DB) *gorm.DB {
		*order = append(*order, name)
		return db
	}
}

func TestPipelineApplyOrder(t *testing.T) {
	var order []string
	pl := NewPipeline(
		marker(&order, "filter"),
		marker(&order, "sort"),
	)
	pl.Apply(nil)
	assert.Equal(t, []string{"filter", "sort"}, order)
}

func TestPipelineAppendDoesNotAlias(t *testing.T) {
	var order []string
	base := NewPipeline(marker(&order, "match"))

	withSearch := base.Append(marker(&order, "search"))
	withScope := base.Append(marker(&order, "scope"))

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, withSearch.Len())
	assert.Equal(t, 2, withScope.Len())

	// Each derived pipeline runs its own tail, never a sibling's.
	order = order[:0]
	withSearch.Apply(nil)
	assert.Equal(t, []string{"match", "search"}, order)

	order = order[:0]
	withScope.Apply(nil)
	assert.Equal(t, []string{"match", "scope"}, order)
}

func TestEmptyPipeline(t *testing.T) {
	pl := NewPipeline()
	assert.Zero(t, pl.Len())
	assert.Nil(t, pl.Apply(nil))
}
