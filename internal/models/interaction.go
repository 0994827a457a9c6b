package models

import (
	"time"
)

// Interaction records an external reply to a post. UserID is copied from
// the post at creation time so listings and stats never need a join; it
// is not re-synced afterwards.
type Interaction struct {
	InteractionID string     `bson:"interactionId" json:"interactionId"`
	PostID        string     `bson:"postId" json:"postId"`
	UserID        string     `bson:"userId" json:"userId"`
	ReplyContent  string     `bson:"replyContent" json:"replyContent"`
	Platform      *string    `bson:"platform" json:"platform"`
	Response      *string    `bson:"response" json:"response"`
	RespondedAt   *time.Time `bson:"respondedAt" json:"respondedAt"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
}

// InteractionStats is the responded/pending split for a user.
// Total is always Responded + Pending.
type InteractionStats struct {
	Total     int64 `json:"total"`
	Responded int64 `json:"responded"`
	Pending   int64 `json:"pending"`
}
