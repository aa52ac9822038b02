package service

import (
	"context"

	"videotube/cmd/model"
	"videotube/cmd/playlist/dal/db"
	videodb "videotube/cmd/video/dal/db"
	videoservice "videotube/cmd/video/service"
	"videotube/pkg/database"
	"videotube/pkg/errno"
	"videotube/pkg/query"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

type PlaylistService struct {
	ctx        context.Context
	members    db.MemberStore
	videoCheck func(ctx context.Context, videoId int64) (bool, error)
	byId       func(ctx context.Context, playlistId int64) (*model.Playlist, error)
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{
		ctx:        ctx,
		members:    db.NewMemberStore(),
		videoCheck: videodb.VideoExists,
		byId:       db.GetPlaylistById,
	}
}

func (s *PlaylistService) CreatePlaylist(ctx context.Context, ownerId int64, name, description string) (*model.Playlist, error) {
	if name == "" || description == "" {
		return nil, errno.ParamErr.WithMessage("name and description are required")
	}
	playlist := &model.Playlist{
		UserId:      ownerId,
		Name:        name,
		Description: description,
	}
	if err := db.CreatePlaylist(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// GetUserPlaylists lists a user's playlists with their derived video
// counts resolved in one grouped query.
func (s *PlaylistService) GetUserPlaylists(ctx context.Context, userId int64) ([]*model.PlaylistSummary, error) {
	playlists, err := db.GetPlaylistsByOwner(ctx, userId)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(playlists))
	for _, p := range playlists {
		ids = append(ids, p.PlaylistId)
	}
	counts, err := s.members.CountForPlaylists(ctx, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]*model.PlaylistSummary, 0, len(playlists))
	for _, p := range playlists {
		summary := new(model.PlaylistSummary)
		if err := copier.Copy(summary, p); err != nil {
			return nil, errors.WithMessage(err, "build playlist summary failed")
		}
		summary.TotalVideos = counts[p.PlaylistId]
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetPlaylistById resolves the detail view: owner plus member videos in
// playlist order, each video carrying its own owner.
func (s *PlaylistService) GetPlaylistById(ctx context.Context, playlistId int64) (*model.PlaylistInfo, error) {
	playlist, err := s.byId(ctx, playlistId)
	if err != nil {
		return nil, err
	}

	videoIds, err := s.members.VideoIds(ctx, playlistId)
	if err != nil {
		return nil, err
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
	// Batch fetch breaks the stored order; reassemble by position.
	ordered := make([]*model.VideoInfo, 0, len(videoIds))
	for _, id := range videoIds {
		if info, ok := infoById[id]; ok {
			ordered = append(ordered, info)
		}
	}

	owners, err := query.OwnerLookup.ResolveOwners(ctx, database.DB, []int64{playlist.UserId})
	if err != nil {
		return nil, err
	}

	info := new(model.PlaylistInfo)
	if err := copier.Copy(info, playlist); err != nil {
		return nil, errors.WithMessage(err, "build playlist info failed")
	}
	info.Owner = owners[playlist.UserId]
	info.Videos = ordered
	info.TotalVideos = int64(len(ordered))
	return info, nil
}

func (s *PlaylistService) AddVideo(ctx context.Context, requesterId, playlistId, videoId int64) error {
	exists, err := s.videoCheck(ctx, videoId)
	if err != nil {
		return err
	}
	if !exists {
		return errno.NotFoundErr.WithMessage("video not found")
	}

	playlist, err := s.byId(ctx, playlistId)
	if err != nil {
		return err
	}
	if playlist.UserId != requesterId {
		return errno.AuthorizationErr.WithMessage("you cannot modify this playlist")
	}

	return s.members.AddVideo(ctx, playlistId, videoId)
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, requesterId, playlistId, videoId int64) error {
	playlist, err := s.byId(ctx, playlistId)
	if err != nil {
		return err
	}
	if playlist.UserId != requesterId {
		return errno.AuthorizationErr.WithMessage("you cannot modify this playlist")
	}

	removed, err := s.members.RemoveVideo(ctx, playlistId, videoId)
	if err != nil {
		return err
	}
	if removed == 0 {
		return errno.ParamErr.WithMessage("video not in playlist")
	}
	return nil
}

// UpdatePlaylistRequest carries optional fields. A nil pointer keeps the
// stored value; an empty description clears it, an empty name is invalid.
type UpdatePlaylistRequest struct {
	Name        *string
	Description *string
}

func (s *PlaylistService) UpdatePlaylist(ctx context.Context, requesterId, playlistId int64, req *UpdatePlaylistRequest) (*model.Playlist, error) {
	playlist, err := s.byId(ctx, playlistId)
	if err != nil {
		return nil, err
	}
	if playlist.UserId != requesterId {
		return nil, errno.AuthorizationErr.WithMessage("you cannot modify this playlist")
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		if *req.Name == "" {
			return nil, errno.ParamErr.WithMessage("name cannot be empty")
		}
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return playlist, nil
	}

	if err := db.UpdatePlaylist(ctx, playlistId, requesterId, updates); err != nil {
		return nil, err
	}
	return s.byId(ctx, playlistId)
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, requesterId, playlistId int64) error {
	playlist, err := s.byId(ctx, playlistId)
	if err != nil {
		return err
	}
	if playlist.UserId != requesterId {
		return errno.AuthorizationErr.WithMessage("you cannot delete this playlist")
	}
	return db.DeletePlaylist(ctx, playlistId, requesterId)
}
