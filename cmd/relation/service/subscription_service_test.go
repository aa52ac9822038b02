package service

import (
	"context"
	"sync"
	"testing"

	"videotube/cmd/model"
	"videotube/pkg/errno"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type edge struct {
	subscriber int64
	channel    int64
}

// memSubStore mimics the subscription table's unique edge index.
type memSubStore struct {
	mu    sync.Mutex
	edges map[edge]bool
}

func newMemSubStore() *memSubStore {
	return &memSubStore{edges: make(map[edge]bool)}
}

func (s *memSubStore) Exists(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edges[edge{subscriberId, channelId}], nil
}

func (s *memSubStore) Create(ctx context.Context, sub *model.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := edge{sub.SubscriberId, sub.ChannelId}
	if s.edges[k] {
		return errno.ConflictErr.WithMessage("subscription already exists")
	}
	s.edges[k] = true
	return nil
}

func (s *memSubStore) Delete(ctx context.Context, subscriberId, channelId int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := edge{subscriberId, channelId}
	if !s.edges[k] {
		return 0, nil
	}
	delete(s.edges, k)
	return 1, nil
}

func newTestSubscriptionService(store SubscriptionStore, check ChannelChecker) *SubscriptionService {
	return &SubscriptionService{
		ctx:          context.Background(),
		store:        store,
		channelCheck: check,
	}
}

func TestSubscriptionToggleParity(t *testing.T) {
	svc := newTestSubscriptionService(newMemSubStore(), func(ctx context.Context, id int64) (bool, error) {
		return true, nil
	})
	ctx := context.Background()

	subscribed, err := svc.Toggle(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, subscribed)

	subscribed, err = svc.Toggle(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, subscribed)
}

func TestSelfSubscriptionRejectedBeforeLookup(t *testing.T) {
	lookedUp := false
	svc := newTestSubscriptionService(newMemSubStore(), func(ctx context.Context, id int64) (bool, error) {
		lookedUp = true
		return true, nil
	})

	_, err := svc.Toggle(context.Background(), 7, 7)
	assert.True(t, errors.Is(err, errno.AuthorizationErr))
	assert.False(t, lookedUp, "self-subscription must fail before any existence check")
}

func TestSubscribeToMissingChannel(t *testing.T) {
	svc := newTestSubscriptionService(newMemSubStore(), func(ctx context.Context, id int64) (bool, error) {
		return false, nil
	})
	_, err := svc.Toggle(context.Background(), 1, 2)
	assert.True(t, errors.Is(err, errno.NotFoundErr))
}

type conflictSubStore struct {
	memSubStore
}

func (s *conflictSubStore) Exists(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	return false, nil
}

func (s *conflictSubStore) Create(ctx context.Context, sub *model.Subscription) error {
	return errno.ConflictErr.WithMessage("subscription already exists")
}

func TestSubscriptionToggleConvergesOnLostRace(t *testing.T) {
	store := &conflictSubStore{memSubStore{edges: make(map[edge]bool)}}
	svc := newTestSubscriptionService(store, func(ctx context.Context, id int64) (bool, error) {
		return true, nil
	})

	subscribed, err := svc.Toggle(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, subscribed)
}
