package db

import (
	"context"

	"videotube/cmd/model"
	"videotube/pkg/database"
	"videotube/pkg/errno"
	"videotube/pkg/query"

	"github.com/pkg/errors"
)

func SubscriptionExists(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "check subscription failed")
	}
	return count > 0, nil
}

// CreateSubscription inserts the edge; a duplicate-key failure comes back
// as ConflictErr for the toggle to converge on.
func CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	if err := DB.WithContext(ctx).Create(sub).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return errno.ConflictErr.WithMessage("subscription already exists")
		}
		return errors.WithMessage(err, "create subscription failed")
	}
	return nil
}

func DeleteSubscription(ctx context.Context, subscriberId, channelId int64) (int64, error) {
	result := DB.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return 0, errors.WithMessage(result.Error, "delete subscription failed")
	}
	return result.RowsAffected, nil
}

// QueryChannelSubscribers pages the subscriber edges of a channel,
// newest first.
func QueryChannelSubscribers(ctx context.Context, channelId int64, page, limit int) (*query.Page, []*model.Subscription, error) {
	pl := query.NewPipeline(
		query.Match("channel_id", channelId),
		query.OrderBy("", ""),
	)
	var subs []*model.Subscription
	base := DB.WithContext(ctx).Model(&model.Subscription{})
	pageInfo, err := query.Paginate(base, pl, page, limit, &subs)
	if err != nil {
		return nil, nil, err
	}
	return pageInfo, subs, nil
}

// QuerySubscribedChannels pages the channels a user subscribes to.
func QuerySubscribedChannels(ctx context.Context, subscriberId int64, page, limit int) (*query.Page, []*model.Subscription, error) {
	pl := query.NewPipeline(
		query.Match("subscriber_id", subscriberId),
		query.OrderBy("", ""),
	)
	var subs []*model.Subscription
	base := DB.WithContext(ctx).Model(&model.Subscription{})
	pageInfo, err := query.Paginate(base, pl, page, limit, &subs)
	if err != nil {
		return nil, nil, err
	}
	return pageInfo, subs, nil
}

func CountSubscribers(ctx context.Context, channelId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "count subscribers failed")
	}
	return count, nil
}

func CountSubscribedChannels(ctx context.Context, subscriberId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "count subscribed channels failed")
	}
	return count, nil
}
