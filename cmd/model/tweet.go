package model

import "time"

type Tweet struct {
	TweetId   int64     `gorm:"primaryKey;autoIncrement" json:"tweetId"`
	UserId    int64     `gorm:"not null;index" json:"userId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Tweet) TableName() string {
	return "tweets"
}

type TweetInfo struct {
	TweetId   int64     `json:"tweetId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Owner     *UserInfo `json:"owner"`
}
