package service

import (
	"context"

	interactiondb "videotube/cmd/interaction/dal/db"
	relationdb "videotube/cmd/relation/dal/db"
	videodb "videotube/cmd/video/dal/db"
	videoservice "videotube/cmd/video/service"
	"videotube/pkg/cache"
	"videotube/pkg/query"
)

type DashboardService struct {
	ctx context.Context
}

func NewDashboardService(ctx context.Context) *DashboardService {
	return &DashboardService{ctx: ctx}
}

// GetChannelStats aggregates a channel's totals, served from the redis
// cache when fresh. Stats may lag by the cache TTL.
func (s *DashboardService) GetChannelStats(ctx context.Context, channelId int64) (*cache.ChannelStats, error) {
	if stats, ok := cache.GetChannelStats(ctx, channelId); ok {
		return stats, nil
	}

	totalVideos, err := videodb.CountVideosByOwner(ctx, channelId)
	if err != nil {
		return nil, err
	}
	totalViews, err := videodb.SumViewsByOwner(ctx, channelId)
	if err != nil {
		return nil, err
	}
	totalSubscribers, err := relationdb.CountSubscribers(ctx, channelId)
	if err != nil {
		return nil, err
	}
	totalLikes, err := interactiondb.CountLikesOnOwnerVideos(ctx, channelId)
	if err != nil {
		return nil, err
	}

	stats := &cache.ChannelStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalSubscribers: totalSubscribers,
		TotalLikes:       totalLikes,
	}
	cache.SetChannelStats(ctx, channelId, stats)
	return stats, nil
}

// GetChannelVideos lists every video the channel owns, drafts included.
func (s *DashboardService) GetChannelVideos(ctx context.Context, channelId int64, opts query.ListOptions) (*query.Page, error) {
	opts.UserId = channelId
	pageInfo, videos, err := videodb.QueryVideos(ctx, opts, false)
	if err != nil {
		return nil, err
	}
	infos, err := videoservice.BuildVideoInfos(ctx, videos)
	if err != nil {
		return nil, err
	}
	pageInfo.Docs = infos
	return pageInfo, nil
}
