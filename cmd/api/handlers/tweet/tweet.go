package handlers

import (
	"context"

	base "videotube/cmd/api/handlers"
	"videotube/cmd/tweet/service"
	"videotube/pkg/errno"
	"videotube/pkg/jwt"
	"videotube/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
)

type TweetParam struct {
	Content string `json:"content" form:"content"`
}

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	var req TweetParam
	if err := c.Bind(&req); err != nil {
		base.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	tweet, err := service.NewTweetService(ctx).CreateTweet(ctx, userId, req.Content)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	base.SendCreated(c, "tweet created successfully", tweet)
}

func GetUserTweets(ctx context.Context, c *app.RequestContext) {
	userId, ok := utils.ParseID(c.Param("userId"))
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid userId"), nil)
		return
	}
	tweets, err := service.NewTweetService(ctx).GetUserTweets(ctx, userId)
	base.SendResponse(c, err, tweets)
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	tweetId, ok := utils.ParseID(c.Param("tweetId"))
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid tweetId"), nil)
		return
	}
	var req TweetParam
	if err := c.Bind(&req); err != nil {
		base.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	tweet, err := service.NewTweetService(ctx).UpdateTweet(ctx, userId, tweetId, req.Content)
	base.SendResponse(c, err, tweet)
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	tweetId, ok := utils.ParseID(c.Param("tweetId"))
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid tweetId"), nil)
		return
	}
	err = service.NewTweetService(ctx).DeleteTweet(ctx, userId, tweetId)
	base.SendResponse(c, err, nil)
}
