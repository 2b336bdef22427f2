// Package legacy keeps the pre-rename "post" API alive for older clients.
// Every method forwards to the community post use case unchanged.
package legacy

import (
	"context"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
)

// IPostUseCase is the old name set of ICommunityPostUseCase.
type IPostUseCase interface {
	GetPosts(ctx context.Context, page, pageSize int) ([]entity.CommunityPost, int, int, int, error)
	GetPostsByUser(ctx context.Context, userID string, page, pageSize int) ([]entity.CommunityPost, int, int, int, error)
	CreatePost(ctx context.Context, authorID, title, content, category string, imageURLs []string) (*entity.CommunityPost, error)
	DeletePost(ctx context.Context, postID, userID string, isAdmin bool) error
	GetPostByID(ctx context.Context, postID string) (*entity.CommunityPost, error)
	GetPostsByFilterOption(ctx context.Context, option entity.PostFilterOption, category string, page, pageSize int) ([]entity.CommunityPost, int, int, int, error)
}

type PostUsecase struct {
	community usecasecontract.ICommunityPostUseCase
}

var _ IPostUseCase = (*PostUsecase)(nil)

func NewPostUsecase(community usecasecontract.ICommunityPostUseCase) *PostUsecase {
	return &PostUsecase{community: community}
}

func (p *PostUsecase) GetPosts(ctx context.Context, page, pageSize int) ([]entity.CommunityPost, int, int, int, error) {
	return p.community.GetCommunityPosts(ctx, page, pageSize)
}

func (p *PostUsecase) GetPostsByUser(ctx context.Context, userID string, page, pageSize int) ([]entity.CommunityPost, int, int, int, error) {
	return p.community.GetCommunityPostsByUser(ctx, userID, page, pageSize)
}

func (p *PostUsecase) CreatePost(ctx context.Context, authorID, title, content, category string, imageURLs []string) (*entity.CommunityPost, error) {
	return p.community.CreateCommunityPost(ctx, authorID, title, content, category, imageURLs)
}

func (p *PostUsecase) DeletePost(ctx context.Context, postID, userID string, isAdmin bool) error {
	return p.community.DeleteCommunityPost(ctx, postID, userID, isAdmin)
}

func (p *PostUsecase) GetPostByID(ctx context.Context, postID string) (*entity.CommunityPost, error) {
	return p.community.GetCommunityPostByID(ctx, postID)
}

func (p *PostUsecase) GetPostsByFilterOption(ctx context.Context, option entity.PostFilterOption, category string, page, pageSize int) ([]entity.CommunityPost, int, int, int, error) {
	return p.community.GetCommunityPostsByFilterOption(ctx, option, category, page, pageSize)
}
