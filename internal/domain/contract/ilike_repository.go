package contract

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

// ErrLikeNotFound is returned when no like exists for a (user, post) pair.
var ErrLikeNotFound = errors.New("like not found")

// ILikeRepository defines the interface for like persistence. Implementations
// must keep at most one like per (user, post) pair.
type ILikeRepository interface {
	// CreateLike inserts the like, or leaves the existing one in place.
	CreateLike(ctx context.Context, like *entity.Like) error
	DeleteLike(ctx context.Context, userID, postID string) error
	// GetLikeByUserAndPost returns the first like matching the pair, or ErrLikeNotFound.
	GetLikeByUserAndPost(ctx context.Context, userID, postID string) (*entity.Like, error)
	CountLikesByPostID(ctx context.Context, postID string) (int64, error)
}
