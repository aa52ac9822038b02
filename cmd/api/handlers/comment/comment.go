package handlers

import (
	"context"
	"strconv"

	base "videotube/cmd/api/handlers"
	"videotube/cmd/interaction/service"
	"videotube/pkg/constants"
	"videotube/pkg/errno"
	"videotube/pkg/jwt"
	"videotube/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
)

type CommentParam struct {
	Content string `json:"content" form:"content"`
}

// ListVideoComments pages a video's comments, newest first.
func ListVideoComments(ctx context.Context, c *app.RequestContext) {
	videoId, ok := utils.ParseID(c.Param("videoId"))
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid videoId"), nil)
		return
	}
	page, limit := pageParams(c)

	result, err := service.NewCommentService(ctx).ListVideoComments(ctx, videoId, page, limit)
	base.SendResponse(c, err, result)
}

func AddComment(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	videoId, ok := utils.ParseID(c.Param("videoId"))
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid videoId"), nil)
		return
	}
	var req CommentParam
	if err := c.Bind(&req); err != nil {
		base.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	comment, err := service.NewCommentService(ctx).AddComment(ctx, userId, videoId, req.Content)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	base.SendCreated(c, "comment added successfully", comment)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	commentId, ok := utils.ParseID(c.Param("commentId"))
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid commentId"), nil)
		return
	}
	var req CommentParam
	if err := c.Bind(&req); err != nil {
		base.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	comment, err := service.NewCommentService(ctx).UpdateComment(ctx, userId, commentId, req.Content)
	base.SendResponse(c, err, comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	commentId, ok := utils.ParseID(c.Param("commentId"))
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid commentId"), nil)
		return
	}
	err = service.NewCommentService(ctx).DeleteComment(ctx, userId, commentId)
	base.SendResponse(c, err, nil)
}

// pageParams reads plain page/limit query values with the list defaults.
func pageParams(c *app.RequestContext) (int, int) {
	page := constants.DefaultPage
	limit := constants.DefaultLimit
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p >= 1 {
		page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l >= 1 {
		limit = l
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	return page, limit
}
