package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	"github.com/mikiasgoitom/Commune/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// CommunityPostUsecase implements the ICommunityPostUseCase interface
type CommunityPostUsecase struct {
	postRepo  contract.ICommunityPostRepository
	uuidgen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
	postCache contract.IPostCache
}

// NewCommunityPostUsecase creates a new instance of CommunityPostUsecase
func NewCommunityPostUsecase(postRepo contract.ICommunityPostRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *CommunityPostUsecase {
	return &CommunityPostUsecase{
		postRepo: postRepo,
		uuidgen:  uuidgen,
		logger:   logger,
	}
}

var _ usecasecontract.ICommunityPostUseCase = (*CommunityPostUsecase)(nil)

// SetPostCache enables the read-through detail cache.
func (uc *CommunityPostUsecase) SetPostCache(cache contract.IPostCache) {
	uc.postCache = cache
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func (uc *CommunityPostUsecase) listPosts(ctx context.Context, opts *contract.PostFilterOptions, page, pageSize int) ([]entity.CommunityPost, int, int, int, error) {
	opts.Page, opts.PageSize = normalizePage(page, pageSize)

	posts, total, err := uc.postRepo.GetPosts(ctx, opts)
	if err != nil {
		uc.logger.Errorf("failed to list community posts: %v", err)
		return nil, 0, 0, 0, fmt.Errorf("failed to list community posts: %w", err)
	}

	result := make([]entity.CommunityPost, 0, len(posts))
	for _, p := range posts {
		if p != nil {
			result = append(result, *p)
		}
	}
	totalPages := int((total + int64(opts.PageSize) - 1) / int64(opts.PageSize))
	return result, int(total), opts.Page, totalPages, nil
}

// GetCommunityPosts returns the newest posts first.
func (uc *CommunityPostUsecase) GetCommunityPosts(ctx context.Context, page, pageSize int) ([]entity.CommunityPost, int, int, int, error) {
	return uc.listPosts(ctx, &contract.PostFilterOptions{SortBy: "created_at", SortOrder: "desc"}, page, pageSize)
}

// GetCommunityPostsByUser returns the posts authored by userID, newest first.
func (uc *CommunityPostUsecase) GetCommunityPostsByUser(ctx context.Context, userID string, page, pageSize int) ([]entity.CommunityPost, int, int, int, error) {
	if userID == "" {
		return nil, 0, 0, 0, fmt.Errorf("%w: user ID is required", ErrInvalidInput)
	}
	opts := &contract.PostFilterOptions{
		SortBy:    "created_at",
		SortOrder: "desc",
		AuthorID:  &userID,
	}
	return uc.listPosts(ctx, opts, page, pageSize)
}

// CreateCommunityPost creates a new post authored by authorID.
func (uc *CommunityPostUsecase) CreateCommunityPost(ctx context.Context, authorID, title, content, category string, imageURLs []string) (*entity.CommunityPost, error) {
	content = strings.TrimSpace(content)
	if authorID == "" {
		return nil, fmt.Errorf("%w: author ID is required", ErrInvalidInput)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	now := time.Now()
	post := &entity.CommunityPost{
		ID:        uc.uuidgen.NewUUID(),
		AuthorID:  authorID,
		Title:     strings.TrimSpace(title),
		Content:   content,
		Category:  strings.ToLower(strings.TrimSpace(category)),
		ImageURLs: imageURLs,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.postRepo.CreatePost(ctx, post); err != nil {
		uc.logger.Errorf("failed to create community post: %v", err)
		return nil, fmt.Errorf("failed to create community post: %w", err)
	}
	return post, nil
}

// DeleteCommunityPost soft-deletes a post. Only its author or an admin may do so.
func (uc *CommunityPostUsecase) DeleteCommunityPost(ctx context.Context, postID, userID string, isAdmin bool) error {
	post, err := uc.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID && !isAdmin {
		return ErrForbidden
	}

	if err := uc.postRepo.SoftDeletePost(ctx, postID); err != nil {
		uc.logger.Errorf("failed to delete community post %s: %v", postID, err)
		return fmt.Errorf("failed to delete community post: %w", err)
	}

	if uc.postCache != nil {
		if err := uc.postCache.InvalidatePost(ctx, postID); err != nil {
			uc.logger.Warnf("cache error: invalidate post id=%s err=%v", postID, err)
		}
	}
	return nil
}

// GetCommunityPostByID returns a single post, reading through the cache when one is set.
func (uc *CommunityPostUsecase) GetCommunityPostByID(ctx context.Context, postID string) (*entity.CommunityPost, error) {
	if uc.postCache != nil {
		t0 := time.Now()
		cached, found, err := uc.postCache.GetPost(ctx, postID)
		elapsed := time.Since(t0)
		switch {
		case err == nil && found && cached != nil:
			metrics.IncDetailHit()
			metrics.AddHitDuration(elapsed.Seconds())
			uc.logger.Debugf("cache hit: post id=%s took=%s", postID, elapsed)
			return cached, nil
		case err == nil:
			metrics.IncDetailMiss()
			metrics.AddMissDuration(elapsed.Seconds())
		default:
			uc.logger.Warningf("cache error: post id=%s err=%v took=%s", postID, err, elapsed)
		}
	}

	post, err := uc.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if uc.postCache != nil {
		if err := uc.postCache.SetPost(ctx, post); err != nil {
			uc.logger.Warnf("cache error: set post id=%s err=%v", postID, err)
		}
	}
	return post, nil
}

// GetCommunityPostsByFilterOption lists posts ordered by option, optionally
// restricted to a category. An empty option means latest first.
func (uc *CommunityPostUsecase) GetCommunityPostsByFilterOption(ctx context.Context, option entity.PostFilterOption, category string, page, pageSize int) ([]entity.CommunityPost, int, int, int, error) {
	if option == "" {
		option = entity.PostFilterLatest
	}
	if !option.IsValid() {
		return nil, 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidFilterOption, option)
	}

	opts := &contract.PostFilterOptions{}
	switch option {
	case entity.PostFilterLatest:
		opts.SortBy, opts.SortOrder = "created_at", "desc"
	case entity.PostFilterOldest:
		opts.SortBy, opts.SortOrder = "created_at", "asc"
	case entity.PostFilterMostLiked:
		opts.SortBy, opts.SortOrder = "like_count", "desc"
	}
	if c := strings.ToLower(strings.TrimSpace(category)); c != "" {
		opts.Category = &c
	}
	return uc.listPosts(ctx, opts, page, pageSize)
}
