package handlers

import (
	"context"

	base "videotube/cmd/api/handlers"
	"videotube/cmd/video/service"
	"videotube/pkg/errno"
	"videotube/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
)

// GetVideoById serves a single video with its owner, counting the view.
func GetVideoById(ctx context.Context, c *app.RequestContext) {
	videoId, ok := utils.ParseID(c.Param("videoId"))
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid videoId"), nil)
		return
	}
	video, err := service.NewVideoService(ctx).GetVideoById(ctx, videoId)
	base.SendResponse(c, err, video)
}
