package service

import (
	"context"
	"strings"

	"videotube/cmd/interaction/dal/db"
	"videotube/cmd/model"
	videodb "videotube/cmd/video/dal/db"
	"videotube/pkg/database"
	"videotube/pkg/errno"
	"videotube/pkg/query"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// ListVideoComments pages a video's comments, newest first, with owners
// collapsed to the public projection.
func (s *CommentService) ListVideoComments(ctx context.Context, videoId int64, page, limit int) (*query.Page, error) {
	pageInfo, comments, err := db.QueryVideoComments(ctx, videoId, page, limit)
	if err != nil {
		return nil, err
	}

	ownerIds := make([]int64, 0, len(comments))
	for _, comment := range comments {
		ownerIds = append(ownerIds, comment.UserId)
	}
	owners, err := query.OwnerLookup.ResolveOwners(ctx, database.DB, ownerIds)
	if err != nil {
		return nil, err
	}

	infos := make([]*model.CommentInfo, 0, len(comments))
	for _, comment := range comments {
		info := new(model.CommentInfo)
		if err := copier.Copy(info, comment); err != nil {
			return nil, errors.WithMessage(err, "comment projection failed")
		}
		info.Owner = owners[comment.UserId]
		infos = append(infos, info)
	}
	pageInfo.Docs = infos
	return pageInfo, nil
}

func (s *CommentService) AddComment(ctx context.Context, requesterId, videoId int64, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.ParamErr.WithMessage("content is required for comment")
	}
	exists, err := videodb.VideoExists(ctx, videoId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	comment := &model.Comment{
		VideoId: videoId,
		UserId:  requesterId,
		Content: content,
	}
	if err := db.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, requesterId, commentId int64, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.ParamErr.WithMessage("content is required for comment")
	}
	comment, err := db.GetCommentById(ctx, commentId)
	if err != nil {
		return nil, err
	}
	if comment.UserId != requesterId {
		return nil, errno.AuthorizationErr.WithMessage("you can only update your own comments")
	}
	if err := db.UpdateComment(ctx, commentId, requesterId, content); err != nil {
		return nil, err
	}
	return db.GetCommentById(ctx, commentId)
}

func (s *CommentService) DeleteComment(ctx context.Context, requesterId, commentId int64) error {
	comment, err := db.GetCommentById(ctx, commentId)
	if err != nil {
		return err
	}
	if comment.UserId != requesterId {
		return errno.AuthorizationErr.WithMessage("you can only delete your own comments")
	}
	return db.DeleteComment(ctx, commentId, requesterId)
}
