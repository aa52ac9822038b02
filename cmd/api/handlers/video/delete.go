package handlers

import (
	"context"

	base "videotube/cmd/api/handlers"
	"videotube/cmd/video/service"
	"videotube/pkg/errno"
	"videotube/pkg/jwt"
	"videotube/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
)

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
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
	err = service.NewVideoService(ctx).DeleteVideo(ctx, userId, videoId)
	base.SendResponse(c, err, nil)
}
