package model

import "time"

// Like target kinds. A like edge points at exactly one of these.
const (
	TargetTypeVideo   = "video"
	TargetTypeComment = "comment"
	TargetTypeTweet   = "tweet"
)

func ValidTargetType(t string) bool {
	switch t {
	case TargetTypeVideo, TargetTypeComment, TargetTypeTweet:
		return true
	}
	return false
}

// Like is a tagged relation edge: (subject, target type, target id).
// The composite unique index is the only guard against double-liking;
// concurrent toggles rely on it rather than on application locks.
type Like struct {
	LikeId     int64     `gorm:"primaryKey;autoIncrement" json:"likeId"`
	UserId     int64     `gorm:"not null;uniqueIndex:uk_like_edge,priority:1" json:"userId"`
	TargetType string    `gorm:"size:16;not null;uniqueIndex:uk_like_edge,priority:2" json:"targetType"`
	TargetId   int64     `gorm:"not null;uniqueIndex:uk_like_edge,priority:3;index" json:"targetId"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}

// LikedVideo is one entry of the liked-videos composite view: the edge
// plus the resolved video, which itself carries a resolved owner.
type LikedVideo struct {
	LikeId  int64      `json:"likeId"`
	LikedAt time.Time  `json:"likedAt"`
	Video   *VideoInfo `json:"video"`
}
