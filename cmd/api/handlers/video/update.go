package handlers

import (
	"context"
	"os"

	base "videotube/cmd/api/handlers"
	"videotube/cmd/video/service"
	"videotube/pkg/errno"
	"videotube/pkg/jwt"
	"videotube/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
)

// UpdateVideo patches title, description and thumbnail. Absent fields
// keep their stored values.
func UpdateVideo(ctx context.Context, c *app.RequestContext) {
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
	var req UpdateVideoParam
	if err := c.Bind(&req); err != nil {
		base.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	update := service.UpdateVideoRequest{
		Title:       req.Title,
		Description: req.Description,
	}
	if path, sent, err := base.SaveTempFile(c, "thumbnail"); err != nil {
		base.SendResponse(c, err, nil)
		return
	} else if sent {
		defer os.Remove(path)
		update.ThumbnailPath = path
	}

	video, err := service.NewVideoService(ctx).UpdateVideo(ctx, userId, videoId, update)
	base.SendResponse(c, err, video)
}
