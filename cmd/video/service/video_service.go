package service

import (
	"context"
	"os"
	"strings"

	"videotube/cmd/model"
	"videotube/cmd/video/dal/db"
	"videotube/pkg/database"
	"videotube/pkg/errno"
	"videotube/pkg/oss"
	"videotube/pkg/query"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type VideoService struct {
	ctx context.Context
}

func NewVideoService(ctx context.Context) *VideoService {
	return &VideoService{ctx: ctx}
}

// ListVideos serves the video feed. Scoping the list to the requester's
// own channel includes drafts; any other scope sees published videos
// only.
func (s *VideoService) ListVideos(ctx context.Context, opts query.ListOptions, requesterId int64) (*query.Page, error) {
	publishedOnly := opts.UserId == 0 || opts.UserId != requesterId
	page, videos, err := db.QueryVideos(ctx, opts, publishedOnly)
	if err != nil {
		return nil, err
	}
	infos, err := BuildVideoInfos(ctx, videos)
	if err != nil {
		return nil, err
	}
	page.Docs = infos
	return page, nil
}

// PublishVideo uploads the media pair, derives duration from the video
// file, and creates the record owned by the requester. Upload failures
// surface immediately.
func (s *VideoService) PublishVideo(ctx context.Context, ownerId int64, title, description, videoPath, thumbnailPath string) (*model.VideoInfo, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, errno.ParamErr.WithMessage("title and description are required")
	}

	duration, err := oss.ProbeDuration(videoPath)
	if err != nil {
		return nil, errno.UpstreamErr.WithMessage("video file unreadable: " + err.Error())
	}
	if thumbnailPath == "" {
		// No thumbnail uploaded, grab the first frame instead.
		frameDir, err := os.MkdirTemp("", "thumbnail-*")
		if err != nil {
			return nil, errors.WithMessage(err, "thumbnail workspace failed")
		}
		defer os.RemoveAll(frameDir)
		thumbnailPath, err = oss.ExtractThumbnail(videoPath, frameDir)
		if err != nil {
			return nil, errno.UpstreamErr.WithMessage("thumbnail extraction failed: " + err.Error())
		}
	}
	videoUrl, err := oss.UploadVideo(ctx, videoPath)
	if err != nil {
		return nil, err
	}
	thumbnailUrl, err := oss.UploadImage(ctx, thumbnailPath)
	if err != nil {
		return nil, err
	}

	video := &model.Video{
		UserId:       ownerId,
		Title:        title,
		Description:  description,
		VideoUrl:     videoUrl,
		ThumbnailUrl: thumbnailUrl,
		Duration:     duration,
		IsPublished:  true,
	}
	if err := db.InsertVideo(ctx, video); err != nil {
		return nil, err
	}
	return s.GetVideoById(ctx, video.VideoId)
}

// GetVideoById increments the view counter and returns the enriched
// record. The bump is fire-and-forget: its failure is logged, never
// propagated, and reads may trail other in-flight bumps.
func (s *VideoService) GetVideoById(ctx context.Context, videoId int64) (*model.VideoInfo, error) {
	if err := db.IncrementViews(ctx, videoId); err != nil {
		logrus.Warnf("view increment for video %d failed: %v", videoId, err)
	}

	video, err := db.GetVideoById(ctx, videoId)
	if err != nil {
		return nil, err
	}
	infos, err := BuildVideoInfos(ctx, []*model.Video{video})
	if err != nil {
		return nil, err
	}
	return infos[0], nil
}

/// UpdateVideoRequest distinguishes absent fields from explicit clears:
// nil leaves the stored value alone, a pointed-to value replaces it.
type UpdateVideoRequest struct {
	Title         *string
	Description   *string
	ThumbnailPath string
}

func (s *VideoService) UpdateVideo(ctx context.Context, requesterId, videoId int64, req UpdateVideoRequest) (*model.VideoInfo, error) {
	if req.Title == nil && req.Description == nil && req.ThumbnailPath == "" {
		return nil, errno.ParamErr.WithMessage("at least one field is required to update")
	}

	video, err := db.GetVideoById(ctx, videoId)
	if err != nil {
		return nil, err
	}
	if video.UserId != requesterId {
		return nil, errno.AuthorizationErr.WithMessage("you can only update your own videos")
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, errno.ParamErr.WithMessage("title cannot be empty")
		}
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		// An explicit empty description clears the field.
		updates["description"] = *req.Description
	}
	if req.ThumbnailPath != "" {
		thumbnailUrl, err := oss.UploadImage(ctx, req.ThumbnailPath)
		if err != nil {
			return nil, err
		}
		updates["thumbnail_url"] = thumbnailUrl
	}

	if err := db.UpdateVideo(ctx, videoId, requesterId, updates); err != nil {
		return nil, err
	}

	video, err = db.GetVideoById(ctx, videoId)
	if err != nil {
		return nil, err
	}
	infos, err := BuildVideoInfos(ctx, []*model.Video{video})
	if err != nil {
		return nil, err
	}
	return infos[0], nil
}

func (s *VideoService) DeleteVideo(ctx context.Context, requesterId, videoId int64) error {
	video, err := db.GetVideoById(ctx, videoId)
	if err != nil {
		return err
	}
	if video.UserId != requesterId {
		return errno.AuthorizationErr.WithMessage("you can only delete your own videos")
	}
	return db.DeleteVideo(ctx, videoId, requesterId)
}

// TogglePublishStatus flips visibility and returns the updated record.
func (s *VideoService) TogglePublishStatus(ctx context.Context, requesterId, videoId int64) (*model.Video, error) {
	video, err := db.GetVideoById(ctx, videoId)
	if err != nil {
		return nil, err
	}
	if video.UserId != requesterId {
		return nil, errno.AuthorizationErr.WithMessage("you can only toggle publish status of your own videos")
	}
	if err := db.TogglePublish(ctx, videoId, requesterId); err != nil {
		return nil, err
	}
	return db.GetVideoById(ctx, videoId)
}

// BuildVideoInfos collapses owner references for a batch of videos in a
// single lookup. A missing owner becomes nil; the video stays.
func BuildVideoInfos(ctx context.Context, videos []*model.Video) ([]*model.VideoInfo, error) {
	ownerIds := make([]int64, 0, len(videos))
	for _, video := range videos {
		ownerIds = append(ownerIds, video.UserId)
	}
	owners, err := query.OwnerLookup.ResolveOwners(ctx, database.DB, ownerIds)
	if err != nil {
		return nil, err
	}
	return assembleVideoInfos(videos, owners)
}

func assembleVideoInfos(videos []*model.Video, owners map[int64]*model.UserInfo) ([]*model.VideoInfo, error) {
	infos := make([]*model.VideoInfo, 0, len(videos))
	for _, video := range videos {
		info := new(model.VideoInfo)
		if err := copier.Copy(info, video); err != nil {
			return nil, errors.WithMessage(err, "video projection failed")
		}
		info.Owner = owners[video.UserId]
		infos = append(infos, info)
	}
	return infos, nil
}
