package query

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Page is the pagination envelope, shaped after the aggregate-paginate
// result the API's consumers already expect.
type Page struct {
	Docs        interface{} `json:"docs"`
	TotalDocs   int64       `json:"totalDocs"`
	Limit       int         `json:"limit"`
	Page        int         `json:"page"`
	TotalPages  int64       `json:"totalPages"`
	HasNextPage bool        `json:"hasNextPage"`
	HasPrevPage bool        `json:"hasPrevPage"`
}

// NewPage computes the window bookkeeping for a fetched slice.
func NewPage(docs interface{}, totalDocs int64, page, limit int) *Page {
	totalPages := totalDocs / int64(limit)
	if totalDocs%int64(limit) != 0 {
		totalPages++
	}
	return &Page{
		Docs:        docs,
		TotalDocs:   totalDocs,
		Limit:       limit,
		Page:        page,
		TotalPages:  totalPages,
		HasNextPage: int64(page) < totalPages,
		HasPrevPage: page > 1 && totalDocs > 0,
	}
}

// Paginate runs pl twice against fresh sessions of base: once for the
// total count and once for the windowed fetch into dest. Both runs share
// the identical stage set, so the count always agrees with the filters
// the window was cut from.
func Paginate(base *gorm.DB, pl Pipeline, page, limit int, dest interface{}) (*Page, error) {
	var total int64
	if err := pl.Apply(base.Session(&gorm.Session{})).Count(&total).Error; err != nil {
		return nil, errors.WithMessage(err, "paginate count failed")
	}

	offset := (page - 1) * limit
	if err := pl.Apply(base.Session(&gorm.Session{})).Offset(offset).Limit(limit).Find(dest).Error; err != nil {
		return nil, errors.WithMessage(err, "paginate fetch failed")
	}
	return NewPage(dest, total, page, limit), nil
}
