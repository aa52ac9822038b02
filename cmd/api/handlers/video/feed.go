package handlers

import (
	"context"

	base "videotube/cmd/api/handlers"
	videodb "videotube/cmd/video/dal/db"
	"videotube/cmd/video/service"
	"videotube/pkg/errno"
	"videotube/pkg/jwt"
	"videotube/pkg/query"

	"github.com/cloudwego/hertz/pkg/app"
)

// ListVideos serves the feed. Drafts only show up when the requester
// scopes the list to their own channel.
func ListVideos(ctx context.Context, c *app.RequestContext) {
	var raw query.RawListOptions
	if err := c.Bind(&raw); err != nil {
		base.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	opts, err := query.ParseListOptions(raw, videodb.SortableColumns)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	requesterId, _ := jwt.CurrentUserId(ctx, c)

	page, err := service.NewVideoService(ctx).ListVideos(ctx, opts, requesterId)
	base.SendResponse(c, err, page)
}
