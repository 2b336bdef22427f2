package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

type ILikeUseCase interface {
	// IsLiked reports whether the caller in ctx likes the post. It never fails:
	// every error collapses to false.
	IsLiked(ctx context.Context, postID string) bool
	LikeStatus(ctx context.Context, postID string) (entity.LikeStatus, error)
	ToggleLike(ctx context.Context, userID, postID string) (bool, error)
	GetLikeCount(ctx context.Context, postID string) (int64, error)
}
