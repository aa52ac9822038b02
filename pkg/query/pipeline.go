package query

import (
	"strings"

	"videotube/pkg/constants"

	"gorm.io/gorm"
)

// Stage is one step of a composed query. Stages compose left to right;
// filters and sorts run before any owner join, which happens after the
// window fetch (see lookup.go).
type Stage func(db *gorm.DB) *gorm.DB

// Pipeline is an immutable ordered stage sequence. Append copies, so a
// half-built pipeline handed to two queries never aliases stages.
type Pipeline struct {
	stages []Stage
}

func NewPipeline(stages ...Stage) Pipeline {
	return Pipeline{stages: stages}
}

func (p Pipeline) Append(stages ...Stage) Pipeline {
	next := make([]Stage, 0, len(p.stages)+len(stages))
	next = append(next, p.stages...)
	next = append(next, stages...)
	return Pipeline{stages: next}
}

func (p Pipeline) Len() int {
	return len(p.stages)
}

// Apply executes the stage sequence against db once, in order.
func (p Pipeline) Apply(db *gorm.DB) *gorm.DB {
	for _, stage := range p.stages {
		db = stage(db)
	}
	return db
}

// TextSearch matches q case-insensitively as a substring of any of the
// given columns, OR-combined.
func TextSearch(q string, columns ...string) Stage {
	return func(db *gorm.DB) *gorm.DB {
		if q == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + strings.ToLower(q) + "%"
		conds := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns))
		for _, col := range columns {
			conds = append(conds, "LOWER("+col+") LIKE ?")
			args = append(args, pattern)
		}
		return db.Where(strings.Join(conds, " OR "), args...)
	}
}

// OwnerScope restricts results to rows owned by userId. A zero id is a
// no-op so callers can pass the parsed option straight through.
func OwnerScope(column string, userId int64) Stage {
	return func(db *gorm.DB) *gorm.DB {
		if userId <= 0 {
			return db
		}
		return db.Where(column+" = ?", userId)
	}
}

// Match adds a plain equality filter stage.
func Match(column string, value interface{}) Stage {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

// OrderBy sorts by a whitelisted column and direction. With no sort
// requested the newest rows come first.
func OrderBy(sortBy, sortType string) Stage {
	return func(db *gorm.DB) *gorm.DB {
		if sortBy == "" {
			return db.Order(constants.DefaultSortColumn + " DESC")
		}
		dir := "ASC"
		if sortType == SortDesc {
			dir = "DESC"
		}
		return db.Order(sortBy + " " + dir)
	}
}
