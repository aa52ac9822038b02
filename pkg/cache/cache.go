package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"videotube/config"
	"videotube/pkg/constants"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var rdb *redis.Client

func Init() {
	rdb = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       config.ConfigInfo.Redis.DB,
	})
}

// ChannelStats is the dashboard aggregate cached per channel.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}

func channelStatsKey(userId int64) string {
	return fmt.Sprintf("stats:channel:%d", userId)
}

// GetChannelStats returns the cached stats and whether the lookup hit.
// Any redis failure is treated as a miss; the store remains the source
// of truth.
func GetChannelStats(ctx context.Context, userId int64) (*ChannelStats, bool) {
	if rdb == nil {
		return nil, false
	}
	raw, err := rdb.Get(ctx, channelStatsKey(userId)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.Warnf("channel stats cache read failed: %v", err)
		}
		return nil, false
	}
	stats := new(ChannelStats)
	if err := json.Unmarshal(raw, stats); err != nil {
		return nil, false
	}
	return stats, true
}

// SetChannelStats writes through with a short TTL, fire-and-forget.
func SetChannelStats(ctx context.Context, userId int64, stats *ChannelStats) {
	if rdb == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := rdb.Set(ctx, channelStatsKey(userId), raw, constants.ChannelStatsTTL).Err(); err != nil {
		logrus.Warnf("channel stats cache write failed: %v", err)
	}
}
