package model

import "time"

type Comment struct {
	CommentId int64     `gorm:"primaryKey;autoIncrement" json:"commentId"`
	VideoId   int64     `gorm:"not null;index" json:"videoId"`
	UserId    int64     `gorm:"not null;index" json:"userId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}

type CommentInfo struct {
	CommentId int64     `json:"commentId"`
	VideoId   int64     `json:"videoId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Owner     *UserInfo `json:"owner"`
}
