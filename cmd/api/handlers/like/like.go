package handlers

import (
	"context"

	base "videotube/cmd/api/handlers"
	"videotube/cmd/interaction/service"
	"videotube/cmd/model"
	"videotube/pkg/errno"
	"videotube/pkg/jwt"
	"videotube/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
)

// ToggleVideoLike, ToggleCommentLike and ToggleTweetLike share one toggle
// path; the route fixes the target type.

func ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	toggle(ctx, c, model.TargetTypeVideo, "videoId")
}

func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	toggle(ctx, c, model.TargetTypeComment, "commentId")
}

func ToggleTweetLike(ctx context.Context, c *app.RequestContext) {
	toggle(ctx, c, model.TargetTypeTweet, "tweetId")
}

func toggle(ctx context.Context, c *app.RequestContext, targetType, param string) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	targetId, ok := utils.ParseID(c.Param(param))
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid "+param), nil)
		return
	}

	liked, err := service.NewLikeService(ctx).Toggle(ctx, userId, targetType, targetId)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	base.SendResponse(c, nil, map[string]interface{}{"isLiked": liked})
}

// GetLikedVideos lists the requester's liked videos, most recent like
// first.
func GetLikedVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	videos, err := service.NewLikeService(ctx).GetLikedVideos(ctx, userId)
	base.SendResponse(c, err, videos)
}
