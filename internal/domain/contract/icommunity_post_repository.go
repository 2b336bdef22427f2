package contract

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

// ErrPostNotFound is returned when a post does not exist or has been deleted.
var ErrPostNotFound = errors.New("community post not found")

// ICommunityPostRepository provides persistence for community posts.
type ICommunityPostRepository interface {
	CreatePost(ctx context.Context, post *entity.CommunityPost) error
	GetPostByID(ctx context.Context, postID string) (*entity.CommunityPost, error)
	GetPosts(ctx context.Context, opts *PostFilterOptions) ([]*entity.CommunityPost, int64, error)
	SoftDeletePost(ctx context.Context, postID string) error
	SetLikeCount(ctx context.Context, postID string, count int64) error
}

// PostFilterOptions encapsulates filtering, pagination, and sorting for post listing.
type PostFilterOptions struct {
	Page      int
	PageSize  int
	SortBy    string // "created_at" or "like_count"
	SortOrder string // "asc" or "desc"
	AuthorID  *string
	Category  *string
}
