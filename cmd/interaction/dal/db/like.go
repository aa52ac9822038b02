package db

import (
	"context"

	"videotube/cmd/model"
	"videotube/pkg/database"
	"videotube/pkg/errno"

	"github.com/pkg/errors"
)

func LikeExists(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userId, targetType, targetId).
		Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "check like failed")
	}
	return count > 0, nil
}

// CreateLike inserts an edge. A unique-index violation surfaces as
// ConflictErr so the toggle can reinterpret a lost race as success.
func CreateLike(ctx context.Context, like *model.Like) error {
	if err := DB.WithContext(ctx).Create(like).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return errno.ConflictErr.WithMessage("like already exists")
		}
		return errors.WithMessage(err, "create like failed")
	}
	return nil
}

// DeleteLike removes the edge for (subject, target) and reports how many
// rows went away. Zero rows means a concurrent toggle got there first.
func DeleteLike(ctx context.Context, userId int64, targetType string, targetId int64) (int64, error) {
	result := DB.WithContext(ctx).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userId, targetType, targetId).
		Delete(&model.Like{})
	if result.Error != nil {
		return 0, errors.WithMessage(result.Error, "delete like failed")
	}
	return result.RowsAffected, nil
}

// GetLikedVideoEdges lists a user's video-like edges newest first. This
// is the first stage of the liked-videos composite view.
func GetLikedVideoEdges(ctx context.Context, userId int64) ([]*model.Like, error) {
	var edges []*model.Like
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_type = ?", userId, model.TargetTypeVideo).
		Order("created_at DESC").
		Find(&edges).Error; err != nil {
		return nil, errors.WithMessage(err, "get liked video edges failed")
	}
	return edges, nil
}

// CountLikesOnOwnerVideos counts like edges pointing at any video the
// given user owns.
func CountLikesOnOwnerVideos(ctx context.Context, ownerId int64) (int64, error) {
	var count int64
	sub := DB.Model(&model.Video{}).Select("video_id").Where("user_id = ?", ownerId)
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? AND target_id IN (?)", model.TargetTypeVideo, sub).
		Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "count owner video likes failed")
	}
	return count, nil
}
