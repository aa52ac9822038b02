package service

import (
	"context"

	"videotube/cmd/interaction/dal/db"
	"videotube/cmd/model"
	tweetdb "videotube/cmd/tweet/dal/db"
	videodb "videotube/cmd/video/dal/db"
	videoservice "videotube/cmd/video/service"
	"videotube/pkg/errno"

	"github.com/pkg/errors"
)

// LikeStore is the like edge store: existence, creation, deletion.
// Creation of a duplicate edge must return ConflictErr.
type LikeStore interface {
	Exists(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error)
	Create(ctx context.Context, like *model.Like) error
	Delete(ctx context.Context, userId int64, targetType string, targetId int64) (int64, error)
}

// TargetChecker reports whether a like target exists.
type TargetChecker func(ctx context.Context, id int64) (bool, error)

type LikeService struct {
	ctx     context.Context
	store   LikeStore
	targets map[string]TargetChecker
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{
		ctx:   ctx,
		store: dalLikeStore{},
		targets: map[string]TargetChecker{
			model.TargetTypeVideo:   videodb.VideoExists,
			model.TargetTypeComment: db.CommentExists,
			model.TargetTypeTweet:   tweetdb.TweetExists,
		},
	}
}

// Toggle flips the like edge for (userId, targetType, targetId) and
// returns the resulting state. The edge is always attributed to the
// authenticated user passed in by the handler, never to a payload field.
//
// The check-then-act window is closed by the store's unique index: when
// a concurrent toggle wins the create, the duplicate-key conflict means
// the edge is on, so this call converges to true instead of erroring.
func (s *LikeService) Toggle(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error) {
	checker, ok := s.targets[targetType]
	if !ok {
		return false, errno.ParamErr.WithMessage("unknown like target type: " + targetType)
	}
	exists, err := checker(ctx, targetId)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, errno.NotFoundErr.WithMessage(targetType + " not found")
	}

	liked, err := s.store.Exists(ctx, userId, targetType, targetId)
	if err != nil {
		return false, err
	}
	if liked {
		if _, err := s.store.Delete(ctx, userId, targetType, targetId); err != nil {
			return false, err
		}
		return false, nil
	}

	err = s.store.Create(ctx, &model.Like{
		UserId:     userId,
		TargetType: targetType,
		TargetId:   targetId,
	})
	if err != nil {
		if errors.Is(err, errno.ConflictErr) {
			// Lost the race to another toggle that turned it on.
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// GetLikedVideos resolves the liked-videos composite view: like edges
// scoped to the user, joined to videos, which join their owners. Edge
// order (newest like first) is preserved; a deleted video leaves the
// edge with a nil video rather than dropping it.
func (s *LikeService) GetLikedVideos(ctx context.Context, userId int64) ([]*model.LikedVideo, error) {
	edges, err := db.GetLikedVideoEdges(ctx, userId)
	if err != nil {
		return nil, err
	}

	videoIds := make([]int64, 0, len(edges))
	for _, edge := range edges {
		videoIds = append(videoIds, edge.TargetId)
	}
	videos, err := videodb.GetVideosByIds(ctx, videoIds)
	if err != nil {
		return nil, err
	}
	infos, err := videoservice.BuildVideoInfos(ctx, videos)
	if err != nil {
		return nil, err
	}
	infoById := make(map[int64]*model.VideoInfo, len(infos))
	for _, info := range infos {
		infoById[info.VideoId] = info
	}

	liked := make([]*model.LikedVideo, 0, len(edges))
	for _, edge := range edges {
		// nil video when the target was deleted after the like; the edge
		// is still reported.
		video := infoById[edge.TargetId]
		liked = append(liked, &model.LikedVideo{
			LikeId:  edge.LikeId,
			LikedAt: edge.CreatedAt,
			Video:   video,
		})
	}
	return liked, nil
}

// dalLikeStore backs LikeStore with the shared database.
type dalLikeStore struct{}

func (dalLikeStore) Exists(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error) {
	return db.LikeExists(ctx, userId, targetType, targetId)
}

func (dalLikeStore) Create(ctx context.Context, like *model.Like) error {
	return db.CreateLike(ctx, like)
}

func (dalLikeStore) Delete(ctx context.Context, userId int64, targetType string, targetId int64) (int64, error) {
	return db.DeleteLike(ctx, userId, targetType, targetId)
}
