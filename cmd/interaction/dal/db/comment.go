package db

import (
	"context"

	"videotube/cmd/model"
	"videotube/pkg/errno"
	"videotube/pkg/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// QueryVideoComments pages a video's comments newest first.
func QueryVideoComments(ctx context.Context, videoId int64, page, limit int) (*query.Page, []*model.Comment, error) {
	pl := query.NewPipeline(
		query.Match("video_id", videoId),
		query.OrderBy("", ""),
	)
	var comments []*model.Comment
	base := DB.WithContext(ctx).Model(&model.Comment{})
	pageInfo, err := query.Paginate(base, pl, page, limit, &comments)
	if err != nil {
		return nil, nil, err
	}
	return pageInfo, comments, nil
}

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.WithMessage(err, "create comment failed")
	}
	return nil
}

func GetCommentById(ctx context.Context, commentId int64) (*model.Comment, error) {
	comment := new(model.Comment)
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).First(comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("comment not found")
		}
		return nil, errors.WithMessage(err, "get comment failed")
	}
	return comment, nil
}

// UpdateComment writes content through a filter carrying both id and
// owner, so ownership is re-checked at the moment of the write.
func UpdateComment(ctx context.Context, commentId, ownerId int64, content string) error {
	result := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ? AND user_id = ?", commentId, ownerId).
		Update("content", content)
	if result.Error != nil {
		return errors.WithMessage(result.Error, "update comment failed")
	}
	if result.RowsAffected == 0 {
		return errno.NotFoundErr.WithMessage("comment not found")
	}
	return nil
}

func DeleteComment(ctx context.Context, commentId, ownerId int64) error {
	result := DB.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentId, ownerId).
		Delete(&model.Comment{})
	if result.Error != nil {
		return errors.WithMessage(result.Error, "delete comment failed")
	}
	if result.RowsAffected == 0 {
		return errno.NotFoundErr.WithMessage("comment not found")
	}
	return nil
}

func CommentExists(ctx context.Context, commentId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "check comment failed")
	}
	return count > 0, nil
}
