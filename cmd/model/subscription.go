package model

import "time"

// Subscription is the subscriber→channel edge. Subscriber and channel are
// never the same user; the composite unique index enforces at most one
// edge per pair.
type Subscription struct {
	SubscriptionId int64     `gorm:"primaryKey;autoIncrement" json:"subscriptionId"`
	SubscriberId   int64     `gorm:"not null;uniqueIndex:uk_sub_edge,priority:1" json:"subscriberId"`
	ChannelId      int64     `gorm:"not null;uniqueIndex:uk_sub_edge,priority:2;index" json:"channelId"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
