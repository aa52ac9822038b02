package db

import (
	"context"

	"videotube/cmd/model"
	"videotube/pkg/errno"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	if err := DB.WithContext(ctx).Create(tweet).Error; err != nil {
		return errors.WithMessage(err, "create tweet failed")
	}
	return nil
}

func GetTweetById(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	tweet := new(model.Tweet)
	if err := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).First(tweet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("tweet not found")
		}
		return nil, errors.WithMessage(err, "get tweet failed")
	}
	return tweet, nil
}

func GetTweetsByOwner(ctx context.Context, ownerId int64) ([]*model.Tweet, error) {
	var tweets []*model.Tweet
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("user_id = ?", ownerId).
		Order("created_at DESC").
		Find(&tweets).Error; err != nil {
		return nil, errors.WithMessage(err, "get tweets failed")
	}
	return tweets, nil
}

func UpdateTweet(ctx context.Context, tweetId, ownerId int64, content string) error {
	result := DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ? AND user_id = ?", tweetId, ownerId).
		Update("content", content)
	if result.Error != nil {
		return errors.WithMessage(result.Error, "update tweet failed")
	}
	if result.RowsAffected == 0 {
		return errno.NotFoundErr.WithMessage("tweet not found")
	}
	return nil
}

func DeleteTweet(ctx context.Context, tweetId, ownerId int64) error {
	result := DB.WithContext(ctx).
		Where("tweet_id = ? AND user_id = ?", tweetId, ownerId).
		Delete(&model.Tweet{})
	if result.Error != nil {
		return errors.WithMessage(result.Error, "delete tweet failed")
	}
	if result.RowsAffected == 0 {
		return errno.NotFoundErr.WithMessage("tweet not found")
	}
	return nil
}

func TweetExists(ctx context.Context, tweetId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ?", tweetId).Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "check tweet failed")
	}
	return count > 0, nil
}
