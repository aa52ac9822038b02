package db

import (
	"context"

	"videotube/cmd/model"
	"videotube/pkg/database"
	"videotube/pkg/errno"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := DB.WithContext(ctx).Create(playlist).Error; err != nil {
		return errors.WithMessage(err, "create playlist failed")
	}
	return nil
}

func GetPlaylistById(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	playlist := new(model.Playlist)
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).First(playlist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("playlist not found")
		}
		return nil, errors.WithMessage(err, "get playlist failed")
	}
	return playlist, nil
}

func GetPlaylistsByOwner(ctx context.Context, ownerId int64) ([]*model.Playlist, error) {
	var playlists []*model.Playlist
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("user_id = ?", ownerId).
		Order("created_at DESC").
		Find(&playlists).Error; err != nil {
		return nil, errors.WithMessage(err, "get playlists failed")
	}
	return playlists, nil
}

func UpdatePlaylist(ctx context.Context, playlistId, ownerId int64, updates map[string]interface{}) error {
	result := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ? AND user_id = ?", playlistId, ownerId).
		Updates(updates)
	if result.Error != nil {
		return errors.WithMessage(result.Error, "update playlist failed")
	}
	if result.RowsAffected == 0 {
		return errno.NotFoundErr.WithMessage("playlist not found")
	}
	return nil
}

// DeletePlaylist removes the playlist and its membership rows in one
// transaction so a failure cannot leave orphaned memberships.
func DeletePlaylist(ctx context.Context, playlistId, ownerId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("playlist_id = ? AND user_id = ?", playlistId, ownerId).
			Delete(&model.Playlist{})
		if result.Error != nil {
			return errors.WithMessage(result.Error, "delete playlist failed")
		}
		if result.RowsAffected == 0 {
			return errno.NotFoundErr.WithMessage("playlist not found")
		}
		if err := tx.
			Where("playlist_id = ?", playlistId).
			Delete(&model.PlaylistVideo{}).Error; err != nil {
			return errors.WithMessage(err, "delete playlist memberships failed")
		}
		return nil
	})
}

// MemberStore is the membership half of the playlist store: the ordered,
// duplicate-free video set of a playlist.
type MemberStore interface {
	AddVideo(ctx context.Context, playlistId, videoId int64) error
	RemoveVideo(ctx context.Context, playlistId, videoId int64) (int64, error)
	VideoIds(ctx context.Context, playlistId int64) ([]int64, error)
	CountForPlaylists(ctx context.Context, playlistIds []int64) (map[int64]int64, error)
}

type memberStore struct{}

func NewMemberStore() MemberStore {
	return memberStore{}
}

// AddVideo appends a membership entry. The composite unique index turns
// a duplicate add into ConflictErr; a racing position read only costs a
// tied position, never a duplicate member.
func (memberStore) AddVideo(ctx context.Context, playlistId, videoId int64) error {
	var position int64
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).
		Select("COALESCE(MAX(position), 0)").Scan(&position).Error; err != nil {
		return errors.WithMessage(err, "read playlist position failed")
	}

	entry := &model.PlaylistVideo{
		PlaylistId: playlistId,
		VideoId:    videoId,
		Position:   position + 1,
	}
	if err := DB.WithContext(ctx).Create(entry).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return errno.ConflictErr.WithMessage("video already in playlist")
		}
		return errors.WithMessage(err, "add video to playlist failed")
	}
	return nil
}

func (memberStore) RemoveVideo(ctx context.Context, playlistId, videoId int64) (int64, error) {
	result := DB.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{})
	if result.Error != nil {
		return 0, errors.WithMessage(result.Error, "remove video from playlist failed")
	}
	return result.RowsAffected, nil
}

func (memberStore) VideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	videoIds := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).
		Order("position ASC").
		Select("video_id").Scan(&videoIds).Error; err != nil {
		return nil, errors.WithMessage(err, "get playlist video ids failed")
	}
	return videoIds, nil
}

// CountForPlaylists computes the derived video count for a batch of
// playlists in one grouped query.
func (memberStore) CountForPlaylists(ctx context.Context, playlistIds []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(playlistIds))
	if len(playlistIds) == 0 {
		return counts, nil
	}
	type row struct {
		PlaylistId int64
		Total      int64
	}
	var rows []row
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id IN ?", playlistIds).
		Select("playlist_id", "COUNT(*) AS total").
		Group("playlist_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.WithMessage(err, "count playlist videos failed")
	}
	for _, r := range rows {
		counts[r.PlaylistId] = r.Total
	}
	return counts, nil
}
