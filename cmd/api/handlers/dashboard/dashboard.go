package handlers

import (
	"context"

	base "videotube/cmd/api/handlers"
	"videotube/cmd/dashboard/service"
	videodb "videotube/cmd/video/dal/db"
	"videotube/pkg/errno"
	"videotube/pkg/jwt"
	"videotube/pkg/query"

	"github.com/cloudwego/hertz/pkg/app"
)

// GetChannelStats serves the requester's own channel totals.
func GetChannelStats(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	stats, err := service.NewDashboardService(ctx).GetChannelStats(ctx, userId)
	base.SendResponse(c, err, stats)
}

// GetChannelVideos lists the requester's own videos, drafts included.
func GetChannelVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
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

	page, err := service.NewDashboardService(ctx).GetChannelVideos(ctx, userId, opts)
	base.SendResponse(c, err, page)
}
