package service

import (
	"context"

	"videotube/cmd/model"
	"videotube/cmd/tweet/dal/db"
	"videotube/pkg/database"
	"videotube/pkg/errno"
	"videotube/pkg/query"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func (s *TweetService) CreateTweet(ctx context.Context, ownerId int64, content string) (*model.Tweet, error) {
	if content == "" {
		return nil, errno.ParamErr.WithMessage("content is required")
	}
	tweet := &model.Tweet{UserId: ownerId, Content: content}
	if err := db.CreateTweet(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

// GetUserTweets lists a user's tweets newest first, owner attached.
func (s *TweetService) GetUserTweets(ctx context.Context, userId int64) ([]*model.TweetInfo, error) {
	tweets, err := db.GetTweetsByOwner(ctx, userId)
	if err != nil {
		return nil, err
	}
	owners, err := query.OwnerLookup.ResolveOwners(ctx, database.DB, []int64{userId})
	if err != nil {
		return nil, err
	}

	infos := make([]*model.TweetInfo, 0, len(tweets))
	for _, tweet := range tweets {
		info := new(model.TweetInfo)
		if err := copier.Copy(info, tweet); err != nil {
			return nil, errors.WithMessage(err, "build tweet info failed")
		}
		info.Owner = owners[tweet.UserId]
		infos = append(infos, info)
	}
	return infos, nil
}

func (s *TweetService) UpdateTweet(ctx context.Context, requesterId, tweetId int64, content string) (*model.Tweet, error) {
	if content == "" {
		return nil, errno.ParamErr.WithMessage("content is required")
	}
	tweet, err := db.GetTweetById(ctx, tweetId)
	if err != nil {
		return nil, err
	}
	if tweet.UserId != requesterId {
		return nil, errno.AuthorizationErr.WithMessage("you cannot edit this tweet")
	}
	if err := db.UpdateTweet(ctx, tweetId, requesterId, content); err != nil {
		return nil, err
	}
	return db.GetTweetById(ctx, tweetId)
}

func (s *TweetService) DeleteTweet(ctx context.Context, requesterId, tweetId int64) error {
	tweet, err := db.GetTweetById(ctx, tweetId)
	if err != nil {
		return err
	}
	if tweet.UserId != requesterId {
		return errno.AuthorizationErr.WithMessage("you cannot delete this tweet")
	}
	return db.DeleteTweet(ctx, tweetId, requesterId)
}
