package handlers

import (
	"context"
	"os"

	base "videotube/cmd/api/handlers"
	"videotube/cmd/video/service"
	"videotube/pkg/errno"
	"videotube/pkg/jwt"

	"github.com/cloudwego/hertz/pkg/app"
)

// PublishVideo ingests a multipart upload: the video file and its
// thumbnail are spilled to disk, probed, and pushed to object storage.
func PublishVideo(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	var req PublishVideoParam
	if err := c.Bind(&req); err != nil {
		base.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	videoPath, ok, err := base.SaveTempFile(c, "videoFile")
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("videoFile is required"), nil)
		return
	}
	defer os.Remove(videoPath)

	// The thumbnail is optional; a frame is extracted from the video
	// when none is uploaded.
	thumbnailPath, ok, err := base.SaveTempFile(c, "thumbnail")
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	if ok {
		defer os.Remove(thumbnailPath)
	}

	video, err := service.NewVideoService(ctx).PublishVideo(ctx, userId, req.Title, req.Description, videoPath, thumbnailPath)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	base.SendCreated(c, "video published successfully", video)
}
