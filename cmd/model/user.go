package model

import "time"

type User struct {
	UserId           int64     `gorm:"primaryKey;autoIncrement" json:"userId"`
	Username         string    `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email            string    `gorm:"size:128;not null;uniqueIndex" json:"email"`
	FullName         string    `gorm:"size:128;not null" json:"fullName"`
	Avatar           string    `gorm:"size:512" json:"avatar"`
	CoverImage       string    `gorm:"size:512" json:"coverImage"`
	Password         string    `gorm:"size:128;not null" json:"-"`
	RefreshToken     string    `gorm:"size:128;index" json:"-"`
	RefreshExpiresAt time.Time `json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// UserInfo is the public owner projection. Foreign owner references are
// only ever exposed in this shape, never as a full User row.
type UserInfo struct {
	UserId   int64  `gorm:"column:user_id" json:"userId"`
	Username string `gorm:"column:username" json:"username"`
	FullName string `gorm:"column:full_name" json:"fullName"`
	Avatar   string `gorm:"column:avatar" json:"avatar"`
}
