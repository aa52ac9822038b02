package query

import (
	"context"

	"videotube/cmd/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Lookup describes a foreign-key join: resolve LocalKey values from the
// source table's ForeignKey column, projecting only Fields. Joins run
// after filter/sort/window for list queries, one batched IN query per
// page, and always collapse to one-or-none per id.
type Lookup struct {
	From       string
	LocalKey   string
	ForeignKey string
	Fields     []string
}

// OwnerLookup resolves owner references into the public user projection.
// Every owner join in the system goes through this one descriptor.
var OwnerLookup = Lookup{
	From:       "users",
	LocalKey:   "user_id",
	ForeignKey: "user_id",
	Fields:     []string{"user_id", "username", "full_name", "avatar"},
}

// ResolveOwners maps each id to its projection, or to nothing when the
// referenced user is gone. Callers attach map misses as nil owners; a
// dangling owner id must never drop the owning entity from a result.
func (l Lookup) ResolveOwners(ctx context.Context, db *gorm.DB, ids []int64) (map[int64]*model.UserInfo, error) {
	owners := make(map[int64]*model.UserInfo, len(ids))
	uniq := dedupeIDs(ids)
	if len(uniq) == 0 {
		return owners, nil
	}

	var infos []*model.UserInfo
	err := db.WithContext(ctx).
		Table(l.From).
		Select(l.Fields).
		Where(l.ForeignKey+" IN ?", uniq).
		Find(&infos).Error
	if err != nil {
		return nil, errors.WithMessage(err, "owner lookup failed")
	}
	for _, info := range infos {
		owners[info.UserId] = info
	}
	return owners, nil
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	uniq := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}
	return uniq
}
