package handlers

import (
	"context"
	"strconv"

	base "videotube/cmd/api/handlers"
	"videotube/cmd/relation/service"
	"videotube/pkg/constants"
	"videotube/pkg/errno"
	"videotube/pkg/jwt"
	"videotube/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
)

// ToggleSubscription flips the requester's subscription to a channel.
func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	channelId, ok := utils.ParseID(c.Param("channelId"))
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid channelId"), nil)
		return
	}

	subscribed, err := service.NewSubscriptionService(ctx).Toggle(ctx, userId, channelId)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	base.SendResponse(c, nil, map[string]interface{}{"subscribed": subscribed})
}

func GetChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	channelId, ok := utils.ParseID(c.Param("channelId"))
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid channelId"), nil)
		return
	}
	page, limit := pageParams(c)

	result, err := service.NewSubscriptionService(ctx).GetChannelSubscribers(ctx, channelId, page, limit)
	base.SendResponse(c, err, result)
}

func GetSubscribedChannels(ctx context.Context, c *app.RequestContext) {
	subscriberId, ok := utils.ParseID(c.Param("subscriberId"))
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid subscriberId"), nil)
		return
	}
	page, limit := pageParams(c)

	result, err := service.NewSubscriptionService(ctx).GetSubscribedChannels(ctx, subscriberId, page, limit)
	base.SendResponse(c, err, result)
}

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
