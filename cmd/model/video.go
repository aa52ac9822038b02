package model

import "time"

type Video struct {
	VideoId      int64     `gorm:"primaryKey;autoIncrement" json:"videoId"`
	UserId       int64     `gorm:"not null;index" json:"userId"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	VideoUrl     string    `gorm:"size:512;not null" json:"videoUrl"`
	ThumbnailUrl string    `gorm:"size:512;not null" json:"thumbnailUrl"`
	Duration     float64   `json:"duration"`
	Views        int64     `gorm:"not null;default:0" json:"views"`
	IsPublished  bool      `gorm:"not null;default:true" json:"isPublished"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Video) TableName() string {
	return "videos"
}

// VideoInfo is a Video with its owner reference collapsed to the public
// projection. Owner is nil when the owning user no longer exists.
type VideoInfo struct {
	VideoId      int64     `json:"videoId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoUrl     string    `json:"videoUrl"`
	ThumbnailUrl string    `json:"thumbnailUrl"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	IsPublished  bool      `json:"isPublished"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Owner        *UserInfo `json:"owner"`
}
