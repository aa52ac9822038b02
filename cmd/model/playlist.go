package model

import "time"

type Playlist struct {
	PlaylistId  int64     `gorm:"primaryKey;autoIncrement" json:"playlistId"`
	UserId      int64     `gorm:"not null;index" json:"userId"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo is one membership entry. The composite unique index keeps
// a video from appearing twice in the same playlist; Position preserves
// insertion order.
type PlaylistVideo struct {
	PlaylistId int64     `gorm:"not null;uniqueIndex:uk_playlist_video,priority:1" json:"playlistId"`
	VideoId    int64     `gorm:"not null;uniqueIndex:uk_playlist_video,priority:2" json:"videoId"`
	Position   int64     `gorm:"not null" json:"position"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}

// PlaylistSummary is the list-endpoint projection with the derived count.
type PlaylistSummary struct {
	PlaylistId  int64     `json:"playlistId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TotalVideos int64     `json:"totalVideos"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlaylistInfo is the detail projection: owner collapsed to UserInfo and
// member videos resolved in playlist order, each with its own owner.
type PlaylistInfo struct {
	PlaylistId  int64        `json:"playlistId"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	TotalVideos int64        `json:"totalVideos"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Owner       *UserInfo    `json:"owner"`
	Videos      []*VideoInfo `json:"videos"`
}
