package entity

import "time"

// CommunityPost is a user-authored post shown in the community feed.
type CommunityPost struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	AuthorID  string    `bson:"author_id" json:"author_id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Category  string    `bson:"category,omitempty" json:"category,omitempty"`
	ImageURLs []string  `bson:"image_urls,omitempty" json:"image_urls,omitempty"`
	LikeCount int       `bson:"like_count" json:"like_count"`
	IsDeleted bool      `bson:"is_deleted" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// PostFilterOption selects the ordering used by the filtered feed.
type PostFilterOption string

const (
	PostFilterLatest    PostFilterOption = "latest"
	PostFilterOldest    PostFilterOption = "oldest"
	PostFilterMostLiked PostFilterOption = "most_liked"
)

// IsValid reports whether o is one of the known filter options.
func (o PostFilterOption) IsValid() bool {
	switch o {
	case PostFilterLatest, PostFilterOldest, PostFilterMostLiked:
		return true
	}
	return false
}
