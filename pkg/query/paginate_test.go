package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		limit      int
		totalPages int64
		hasNext    bool
		hasPrev    bool
	}{
		{"empty result", 0, 1, 10, 0, false, false},
		{"single partial page", 7, 1, 10, 1, false, false},
		{"exact multiple", 20, 1, 10, 2, true, false},
		{"middle page", 35, 2, 10, 4, true, true},
		{"last page", 35, 4, 10, 4, false, true},
		{"page past the end", 10, 5, 10, 1, false, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPage([]int{}, c.total, c.page, c.limit)
			assert.Equal(t, c.total, p.TotalDocs)
			assert.Equal(t, c.totalPages, p.TotalPages)
			assert.Equal(t, c.hasNext, p.HasNextPage)
			assert.Equal(t, c.hasPrev, p.HasPrevPage)
			assert.Equal(t, c.page, p.Page)
			assert.Equal(t, c.limit, p.Limit)
		})
	}
}
