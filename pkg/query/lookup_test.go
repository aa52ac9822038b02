package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeIDs(t *testing.T) {
	assert.Equal(t, []int64{3, 1, 2}, dedupeIDs([]int64{3, 1, 3, 2, 1}))
	assert.Empty(t, dedupeIDs([]int64{0, -1}))
	assert.Empty(t, dedupeIDs(nil))
}
