package service

import (
	"context"

	"videotube/cmd/model"
	"videotube/cmd/relation/dal/db"
	userdb "videotube/cmd/user/dal/db"
	"videotube/pkg/database"
	"videotube/pkg/errno"
	"videotube/pkg/query"

	"github.com/pkg/errors"
)

// SubscriptionStore is the subscription edge store. Creating an edge that
// already exists must return ConflictErr.
type SubscriptionStore interface {
	Exists(ctx context.Context, subscriberId, channelId int64) (bool, error)
	Create(ctx context.Context, sub *model.Subscription) error
	Delete(ctx context.Context, subscriberId, channelId int64) (int64, error)
}

// ChannelChecker reports whether a channel (user) exists.
type ChannelChecker func(ctx context.Context, userId int64) (bool, error)

type SubscriptionService struct {
	ctx          context.Context
	store        SubscriptionStore
	channelCheck ChannelChecker
}

func NewSubscriptionService(ctx context.Context) *SubscriptionService {
	return &SubscriptionService{
		ctx:          ctx,
		store:        dalSubscriptionStore{},
		channelCheck: userdb.UserExists,
	}
}

// Toggle flips the subscriber→channel edge and returns the resulting
// state. Self-subscription is rejected before any existence lookup. Like
// the like toggle, a lost create race converges to subscribed.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	if subscriberId == channelId {
		return false, errno.AuthorizationErr.WithMessage("you cannot subscribe to yourself")
	}

	exists, err := s.channelCheck(ctx, channelId)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, errno.NotFoundErr.WithMessage("channel not found")
	}

	subscribed, err := s.store.Exists(ctx, subscriberId, channelId)
	if err != nil {
		return false, err
	}
	if subscribed {
		if _, err := s.store.Delete(ctx, subscriberId, channelId); err != nil {
			return false, err
		}
		return false, nil
	}

	err = s.store.Create(ctx, &model.Subscription{
		SubscriberId: subscriberId,
		ChannelId:    channelId,
	})
	if err != nil {
		if errors.Is(err, errno.ConflictErr) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// GetChannelSubscribers pages a channel's subscribers as public user
// projections.
func (s *SubscriptionService) GetChannelSubscribers(ctx context.Context, channelId int64, page, limit int) (*query.Page, error) {
	pageInfo, subs, err := db.QueryChannelSubscribers(ctx, channelId, page, limit)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.SubscriberId)
	}
	pageInfo.Docs, err = resolveUsers(ctx, ids)
	if err != nil {
		return nil, err
	}
	return pageInfo, nil
}

// GetSubscribedChannels pages the channels a user subscribes to.
func (s *SubscriptionService) GetSubscribedChannels(ctx context.Context, subscriberId int64, page, limit int) (*query.Page, error) {
	pageInfo, subs, err := db.QuerySubscribedChannels(ctx, subscriberId, page, limit)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.ChannelId)
	}
	pageInfo.Docs, err = resolveUsers(ctx, ids)
	if err != nil {
		return nil, err
	}
	return pageInfo, nil
}

// resolveUsers maps edge endpoints to projections, preserving edge order
// and skipping endpoints whose user is gone.
func resolveUsers(ctx context.Context, ids []int64) ([]*model.UserInfo, error) {
	owners, err := query.OwnerLookup.ResolveOwners(ctx, database.DB, ids)
	if err != nil {
		return nil, err
	}
	infos := make([]*model.UserInfo, 0, len(ids))
	for _, id := range ids {
		if info, ok := owners[id]; ok {
			infos = append(infos, info)
		}
	}
	return infos, nil
}

type dalSubscriptionStore struct{}

func (dalSubscriptionStore) Exists(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	return db.SubscriptionExists(ctx, subscriberId, channelId)
}

func (dalSubscriptionStore) Create(ctx context.Context, sub *model.Subscription) error {
	return db.CreateSubscription(ctx, sub)
}

func (dalSubscriptionStore) Delete(ctx context.Context, subscriberId, channelId int64) (int64, error) {
	return db.DeleteSubscription(ctx, subscriberId, channelId)
}
