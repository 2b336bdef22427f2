package entity

import "time"

// Like records that a user liked a community post. A (UserID, PostID) pair
// has at most one Like.
type Like struct {
	ID        string    `bson:"_id,omitempty" json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `bson:"user_id" json:"user_id" gorm:"size:128;not null;uniqueIndex:idx_like_user_post"`
	PostID    string    `bson:"post_id" json:"post_id" gorm:"size:64;not null;uniqueIndex:idx_like_user_post;index"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// LikeStatus is the outcome of asking whether the current caller likes a post.
type LikeStatus string

const (
	LikeStatusLiked           LikeStatus = "liked"
	LikeStatusNotLiked        LikeStatus = "not_liked"
	LikeStatusUnauthenticated LikeStatus = "unauthenticated"
	LikeStatusError           LikeStatus = "error"
)

// LikeEventType names the events published when a like changes.
type LikeEventType string

const (
	LikeEventLiked   LikeEventType = "post.liked"
	LikeEventUnliked LikeEventType = "post.unliked"
)

// LikeEvent is emitted after a like is created or removed.
type LikeEvent struct {
	Type       LikeEventType `json:"type"`
	UserID     string        `json:"user_id"`
	PostID     string        `json:"post_id"`
	LikeCount  int64         `json:"like_count"`
	OccurredAt time.Time     `json:"occurred_at"`
}
