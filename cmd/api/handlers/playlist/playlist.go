package handlers

import (
	"context"

	base "videotube/cmd/api/handlers"
	"videotube/cmd/playlist/service"
	"videotube/pkg/errno"
	"videotube/pkg/jwt"
	"videotube/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
)

type CreatePlaylistParam struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

type UpdatePlaylistParam struct {
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
}

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	var req CreatePlaylistParam
	if err := c.Bind(&req); err != nil {
		base.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(ctx, userId, req.Name, req.Description)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	base.SendCreated(c, "playlist created successfully", playlist)
}

// GetUserPlaylists lists a user's playlists with derived video counts.
func GetUserPlaylists(ctx context.Context, c *app.RequestContext) {
	userId, ok := utils.ParseID(c.Param("userId"))
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid userId"), nil)
		return
	}
	playlists, err := service.NewPlaylistService(ctx).GetUserPlaylists(ctx, userId)
	base.SendResponse(c, err, playlists)
}

func GetPlaylistById(ctx context.Context, c *app.RequestContext) {
	playlistId, ok := utils.ParseID(c.Param("playlistId"))
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid playlistId"), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).GetPlaylistById(ctx, playlistId)
	base.SendResponse(c, err, playlist)
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	userId, playlistId, videoId, ok := memberParams(ctx, c)
	if !ok {
		return
	}
	err := service.NewPlaylistService(ctx).AddVideo(ctx, userId, playlistId, videoId)
	base.SendResponse(c, err, nil)
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	userId, playlistId, videoId, ok := memberParams(ctx, c)
	if !ok {
		return
	}
	err := service.NewPlaylistService(ctx).RemoveVideo(ctx, userId, playlistId, videoId)
	base.SendResponse(c, err, nil)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	playlistId, ok := utils.ParseID(c.Param("playlistId"))
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid playlistId"), nil)
		return
	}
	var req UpdatePlaylistParam
	if err := c.Bind(&req); err != nil {
		base.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(ctx, userId, playlistId, &service.UpdatePlaylistRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	base.SendResponse(c, err, playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	playlistId, ok := utils.ParseID(c.Param("playlistId"))
	if !ok {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid playlistId"), nil)
		return
	}
	err = service.NewPlaylistService(ctx).DeletePlaylist(ctx, userId, playlistId)
	base.SendResponse(c, err, nil)
}

// memberParams pulls the requester and both path ids for the membership
// endpoints, replying on failure.
func memberParams(ctx context.Context, c *app.RequestContext) (userId, playlistId, videoId int64, ok bool) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return 0, 0, 0, false
	}
	playlistId, idOk := utils.ParseID(c.Param("playlistId"))
	if !idOk {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid playlistId"), nil)
		return 0, 0, 0, false
	}
	videoId, idOk = utils.ParseID(c.Param("videoId"))
	if !idOk {
		base.SendResponse(c, errno.ParamErr.WithMessage("invalid videoId"), nil)
		return 0, 0, 0, false
	}
	return userId, playlistId, videoId, true
}
