package query

import (
	"testing"

	"videotube/pkg/constants"
	"videotube/pkg/errno"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListOptions(t *testing.T) {
	sortable := []string{"created_at", "title", "views"}

	t.Run("defaults", func(t *testing.T) {
		opts, err := ParseListOptions(RawListOptions{}, sortable)
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultPage, opts.Page)
		assert.Equal(t, constants.DefaultLimit, opts.Limit)
		assert.Empty(t, opts.SortBy)
		assert.Zero(t, opts.UserId)
	})

	t.Run("non-numeric page and limit fall back", func(t *testing.T) {
		opts, err := ParseListOptions(RawListOptions{Page: "abc", Limit: "-3"}, sortable)
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultPage, opts.Page)
		assert.Equal(t, constants.DefaultLimit, opts.Limit)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		opts, err := ParseListOptions(RawListOptions{Limit: "5000"}, sortable)
		require.NoError(t, err)
		assert.Equal(t, constants.MaxLimit, opts.Limit)
	})

	t.Run("valid sort passes through", func(t *testing.T) {
		opts, err := ParseListOptions(RawListOptions{SortBy: "views", SortType: "desc"}, sortable)
		require.NoError(t, err)
		assert.Equal(t, "views", opts.SortBy)
		assert.Equal(t, SortDesc, opts.SortType)
	})

	t.Run("unknown sort column is rejected", func(t *testing.T) {
		_, err := ParseListOptions(RawListOptions{SortBy: "password"}, sortable)
		assert.True(t, errors.Is(err, errno.ParamErr))
	})

	t.Run("bad sort direction is rejected", func(t *testing.T) {
		_, err := ParseListOptions(RawListOptions{SortType: "sideways"}, sortable)
		assert.True(t, errors.Is(err, errno.ParamErr))
	})

	t.Run("userId parses", func(t *testing.T) {
		opts, err := ParseListOptions(RawListOptions{UserId: "7"}, sortable)
		require.NoError(t, err)
		assert.Equal(t, int64(7), opts.UserId)
	})

	t.Run("malformed userId is rejected", func(t *testing.T) {
		_, err := ParseListOptions(RawListOptions{UserId: "-1"}, sortable)
		assert.True(t, errors.Is(err, errno.ParamErr))
	})
}
