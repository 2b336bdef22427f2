package contract

import (
	"context"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

// IPostCache defines caching operations for post details and like counters.
type IPostCache interface {
	GetPost(ctx context.Context, postID string) (*entity.CommunityPost, bool, error)
	SetPost(ctx context.Context, post *entity.CommunityPost) error
	InvalidatePost(ctx context.Context, postID string) error

	GetLikeCount(ctx context.Context, postID string) (int64, bool, error)
	SetLikeCount(ctx context.Context, postID string, count int64) error
}
