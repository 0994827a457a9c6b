package models

import (
	"time"
)

// Post statuses. Pending is the initial state; Rejected, Posted and
// PublishFailed are terminal.
const (
	StatusPending       = "Pending"
	StatusApproved      = "Approved"
	StatusRejected      = "Rejected"
	StatusPosted        = "Posted"
	StatusPublishFailed = "PublishFailed"
)

// PostContent is the generated bundle: one variant per target channel.
type PostContent struct {
	Micro string `bson:"micro" json:"micro"`
	Short string `bson:"short" json:"short"`
	Long  string `bson:"long" json:"long"`
}

// Post is a generated content item awaiting approval. Content is
// immutable after creation; only the status fields change.
type Post struct {
	PostID    string      `bson:"postId" json:"postId"`
	UserID    string      `bson:"userId" json:"userId"`
	Content   PostContent `bson:"content" json:"content"`
	ImageURL  *string     `bson:"imageUrl" json:"imageUrl"`
	Status    string      `bson:"status" json:"status"`
	Platform  *string     `bson:"platform" json:"platform"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt"`
	PostedAt  *time.Time  `bson:"postedAt" json:"postedAt"`
}

// CanTransition reports whether a post may move from one status to
// another. Transitions are only ever triggered by the approve/reject
// operations, so the table is small: everything past Pending is either
// the publish pipeline or terminal.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected
	case StatusApproved:
		return to == StatusPosted || to == StatusPublishFailed
	default:
		// Rejected, Posted and PublishFailed are terminal.
		return false
	}
}
