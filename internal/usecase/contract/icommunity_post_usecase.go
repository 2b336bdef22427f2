package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

// ICommunityPostUseCase defines community post business logic. The list
// operations return (posts, totalCount, currentPage, totalPages, err).
type ICommunityPostUseCase interface {
	GetCommunityPosts(ctx context.Context, page, pageSize int) ([]entity.CommunityPost, int, int, int, error)
	GetCommunityPostsByUser(ctx context.Context, userID string, page, pageSize int) ([]entity.CommunityPost, int, int, int, error)
	CreateCommunityPost(ctx context.Context, authorID, title, content, category string, imageURLs []string) (*entity.CommunityPost, error)
	DeleteCommunityPost(ctx context.Context, postID, userID string, isAdmin bool) error
	GetCommunityPostByID(ctx context.Context, postID string) (*entity.CommunityPost, error)
	GetCommunityPostsByFilterOption(ctx context.Context, option entity.PostFilterOption, category string, page, pageSize int) ([]entity.CommunityPost, int, int, int, error)
}
