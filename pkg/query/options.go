package query

import (
	"strconv"

	"videotube/pkg/constants"
	"videotube/pkg/errno"
	"videotube/pkg/utils"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// RawListOptions carries list-endpoint query parameters as received.
type RawListOptions struct {
	Page     string `query:"page"`
	Limit    string `query:"limit"`
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserId   string `query:"userId"`
}

// ListOptions is the validated per-endpoint option set. Nothing reaches
// the pipeline builder without passing through ParseListOptions.
type ListOptions struct {
	Page     int
	Limit    int
	Query    string
	SortBy   string
	SortType string
	UserId   int64
}

// ParseListOptions validates raw parameters against the endpoint's
// sortable column whitelist. Non-numeric or missing page/limit fall back
// to the defaults; a malformed sort or userId is a validation error, not
// something to silently drop.
func ParseListOptions(raw RawListOptions, sortable []string) (ListOptions, error) {
	opts := ListOptions{
		Page:  constants.DefaultPage,
		Limit: constants.DefaultLimit,
		Query: raw.Query,
	}

	if p, err := strconv.Atoi(raw.Page); err == nil && p >= 1 {
		opts.Page = p
	}
	if l, err := strconv.Atoi(raw.Limit); err == nil && l >= 1 {
		opts.Limit = l
	}
	if opts.Limit > constants.MaxLimit {
		opts.Limit = constants.MaxLimit
	}

	switch raw.SortType {
	case "", SortAsc, SortDesc:
		opts.SortType = raw.SortType
	default:
		return opts, errno.ParamErr.WithMessage("sortType must be asc or desc")
	}

	if raw.SortBy != "" {
		ok := false
		for _, col := range sortable {
			if raw.SortBy == col {
				ok = true
				break
			}
		}
		if !ok {
			return opts, errno.ParamErr.WithMessage("unsupported sortBy field: " + raw.SortBy)
		}
		opts.SortBy = raw.SortBy
	}

	if raw.UserId != "" {
		id, ok := utils.ParseID(raw.UserId)
		if !ok {
			return opts, errno.ParamErr.WithMessage("invalid userId")
		}
		opts.UserId = id
	}

	return opts, nil
}
