package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	"github.com/mikiasgoitom/Commune/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
)

// LikeUsecase handles the business logic for liking community posts.
type LikeUsecase struct {
	likeRepo  contract.ILikeRepository
	postRepo  contract.ICommunityPostRepository
	identity  usecasecontract.IIdentityResolver
	uuidgen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
	postCache contract.IPostCache
	publisher contract.IEventPublisher
}

// NewLikeUsecase creates and returns a new LikeUsecase instance.
func NewLikeUsecase(
	likeRepo contract.ILikeRepository,
	postRepo contract.ICommunityPostRepository,
	identity usecasecontract.IIdentityResolver,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *LikeUsecase {
	return &LikeUsecase{
		likeRepo: likeRepo,
		postRepo: postRepo,
		identity: identity,
		uuidgen:  uuidgen,
		logger:   logger,
	}
}

var _ usecasecontract.ILikeUseCase = (*LikeUsecase)(nil)

func (u *LikeUsecase) SetPostCache(cache contract.IPostCache) {
	u.postCache = cache
}

func (u *LikeUsecase) SetEventPublisher(publisher contract.IEventPublisher) {
	u.publisher = publisher
}

// LikeStatus reports whether the caller in ctx likes postID. A missing or
// rejected session yields LikeStatusUnauthenticated with a nil error; any
// other failure yields LikeStatusError together with the cause.
func (u *LikeUsecase) LikeStatus(ctx context.Context, postID string) (status entity.LikeStatus, err error) {
	defer func() { metrics.IncLikeStatus(string(status)) }()

	principal, err := u.identity.ResolvePrincipal(ctx)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			return entity.LikeStatusUnauthenticated, nil
		}
		return entity.LikeStatusError, fmt.Errorf("failed to resolve caller: %w", err)
	}

	if _, err := u.likeRepo.GetLikeByUserAndPost(ctx, principal.UserID, postID); err != nil {
		if errors.Is(err, contract.ErrLikeNotFound) {
			return entity.LikeStatusNotLiked, nil
		}
		return entity.LikeStatusError, fmt.Errorf("failed to look up like: %w", err)
	}
	return entity.LikeStatusLiked, nil
}

// IsLiked is the boolean form of LikeStatus used by the mobile client.
// "Not liked", "not signed in" and "lookup failed" all read as false; the
// last one is logged since the caller cannot see it.
func (u *LikeUsecase) IsLiked(ctx context.Context, postID string) bool {
	status, err := u.LikeStatus(ctx, postID)
	if err != nil {
		u.logger.Warnf("like check for post %s reported as not liked: %v", postID, err)
		return false
	}
	return status == entity.LikeStatusLiked
}

// ToggleLike likes the post for userID, or removes the like if one exists.
// It returns the resulting state.
func (u *LikeUsecase) ToggleLike(ctx context.Context, userID, postID string) (bool, error) {
	if userID == "" {
		return false, ErrUnauthenticated
	}
	if _, err := u.postRepo.GetPostByID(ctx, postID); err != nil {
		return false, err
	}

	var liked bool
	_, err := u.likeRepo.GetLikeByUserAndPost(ctx, userID, postID)
	switch {
	case err == nil:
		if err := u.likeRepo.DeleteLike(ctx, userID, postID); err != nil && !errors.Is(err, contract.ErrLikeNotFound) {
			return false, fmt.Errorf("failed to remove like: %w", err)
		}
	case errors.Is(err, contract.ErrLikeNotFound):
		like := &entity.Like{
			ID:        u.uuidgen.NewUUID(),
			UserID:    userID,
			PostID:    postID,
			CreatedAt: time.Now(),
		}
		if err := u.likeRepo.CreateLike(ctx, like); err != nil {
			return false, fmt.Errorf("failed to create like: %w", err)
		}
		liked = true
	default:
		return false, fmt.Errorf("failed to retrieve existing like: %w", err)
	}

	metrics.IncLikeToggle(liked)
	u.afterToggle(ctx, userID, postID, liked)
	return liked, nil
}

// afterToggle refreshes the denormalised counter, the cache and notifies
// subscribers. Failures here do not undo the toggle.
func (u *LikeUsecase) afterToggle(ctx context.Context, userID, postID string, liked bool) {
	count, err := u.likeRepo.CountLikesByPostID(ctx, postID)
	if err != nil {
		u.logger.Warnf("failed to count likes for post %s: %v", postID, err)
		return
	}
	if err := u.postRepo.SetLikeCount(ctx, postID, count); err != nil {
		u.logger.Warnf("failed to update like_count for post %s: %v", postID, err)
	}
	if u.postCache != nil {
		_ = u.postCache.SetLikeCount(ctx, postID, count)
		_ = u.postCache.InvalidatePost(ctx, postID)
	}
	if u.publisher != nil {
		event := entity.LikeEvent{
			Type:       entity.LikeEventUnliked,
			UserID:     userID,
			PostID:     postID,
			LikeCount:  count,
			OccurredAt: time.Now(),
		}
		if liked {
			event.Type = entity.LikeEventLiked
		}
		if err := u.publisher.PublishLikeEvent(ctx, event); err != nil {
			u.logger.Warnf("failed to publish %s for post %s: %v", event.Type, postID, err)
		}
	}
}

// GetLikeCount returns the number of likes on postID.
func (u *LikeUsecase) GetLikeCount(ctx context.Context, postID string) (int64, error) {
	if u.postCache != nil {
		if count, found, err := u.postCache.GetLikeCount(ctx, postID); err == nil && found {
			metrics.IncLikeCountHit()
			return count, nil
		}
		metrics.IncLikeCountMiss()
	}

	count, err := u.likeRepo.CountLikesByPostID(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes for post %s: %w", postID, err)
	}
	if u.postCache != nil {
		_ = u.postCache.SetLikeCount(ctx, postID, count)
	}
	return count, nil
}
