package db

import (
	"context"

	"videotube/cmd/model"
	"videotube/pkg/errno"
	"videotube/pkg/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SortableColumns is the whitelist list endpoints may sort videos on.
var SortableColumns = []string{"created_at", "title", "duration", "views"}

// QueryVideos runs the list pipeline: text filter over title and
// description, optional owner scope, optional published-only scope, sort
// (newest first by default), then the consistent count + window fetch.
func QueryVideos(ctx context.Context, opts query.ListOptions, publishedOnly bool) (*query.Page, []*model.Video, error) {
	pl := query.NewPipeline(
		query.TextSearch(opts.Query, "title", "description"),
		query.OwnerScope("user_id", opts.UserId),
	)
	if publishedOnly {
		pl = pl.Append(query.Match("is_published", true))
	}
	pl = pl.Append(query.OrderBy(opts.SortBy, opts.SortType))

	var videos []*model.Video
	base := DB.WithContext(ctx).Model(&model.Video{})
	page, err := query.Paginate(base, pl, opts.Page, opts.Limit, &videos)
	if err != nil {
		return nil, nil, err
	}
	return page, videos, nil
}

func GetVideoById(ctx context.Context, videoId int64) (*model.Video, error) {
	video := new(model.Video)
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).First(video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("video not found")
		}
		return nil, errors.WithMessage(err, "get video failed")
	}
	return video, nil
}

// GetVideosByIds fetches a batch; the caller reorders as needed.
func GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	var videos []*model.Video
	if len(videoIds) == 0 {
		return videos, nil
	}
	if err := DB.WithContext(ctx).Where("video_id IN ?", videoIds).Find(&videos).Error; err != nil {
		return nil, errors.WithMessage(err, "get videos failed")
	}
	return videos, nil
}

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.WithMessage(err, "insert video failed")
	}
	return nil
}

// UpdateVideo applies updates to a video the owner holds. Zero rows means
// the row vanished between the ownership check and the update.
func UpdateVideo(ctx context.Context, videoId, ownerId int64, updates map[string]interface{}) error {
	result := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ? AND user_id = ?", videoId, ownerId).
		Updates(updates)
	if result.Error != nil {
		return errors.WithMessage(result.Error, "update video failed")
	}
	if result.RowsAffected == 0 {
		return errno.NotFoundErr.WithMessage("video not found")
	}
	return nil
}

func DeleteVideo(ctx context.Context, videoId, ownerId int64) error {
	result := DB.WithContext(ctx).
		Where("video_id = ? AND user_id = ?", videoId, ownerId).
		Delete(&model.Video{})
	if result.Error != nil {
		return errors.WithMessage(result.Error, "delete video failed")
	}
	if result.RowsAffected == 0 {
		return errno.NotFoundErr.WithMessage("video not found")
	}
	return nil
}

// IncrementViews bumps the counter atomically in the store. Callers fire
// and forget; a failed bump never fails the read it rode in on.
func IncrementViews(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
		return errors.WithMessage(err, "increment views failed")
	}
	return nil
}

// TogglePublish flips is_published in a single filter-based update, so
// concurrent toggles each observe a full flip.
func TogglePublish(ctx context.Context, videoId, ownerId int64) error {
	result := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ? AND user_id = ?", videoId, ownerId).
		UpdateColumn("is_published", gorm.Expr("NOT is_published"))
	if result.Error != nil {
		return errors.WithMessage(result.Error, "toggle publish failed")
	}
	if result.RowsAffected == 0 {
		return errno.NotFoundErr.WithMessage("video not found")
	}
	return nil
}

func CountVideosByOwner(ctx context.Context, ownerId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", ownerId).Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "count videos failed")
	}
	return count, nil
}

func SumViewsByOwner(ctx context.Context, ownerId int64) (int64, error) {
	var total int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", ownerId).
		Select("COALESCE(SUM(views), 0)").Scan(&total).Error; err != nil {
		return 0, errors.WithMessage(err, "sum views failed")
	}
	return total, nil
}

func VideoExists(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "check video failed")
	}
	return count > 0, nil
}
