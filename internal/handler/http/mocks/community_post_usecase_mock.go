package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	"github.com/mikiasgoitom/Commune/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
)

// MockCommunityPostUsecase is a mock implementation of ICommunityPostUseCase.
// It records the arguments of the last call so tests can check what the
// handler passed through.
type MockCommunityPostUsecase struct {
	ShouldFailList   bool
	ShouldFailCreate bool
	PostNotFound     bool
	ForbidDelete     bool

	MockPosts []entity.CommunityPost

	LastMethod   string
	LastUserID   string
	LastPostID   string
	LastIsAdmin  bool
	LastOption   entity.PostFilterOption
	LastCategory string
	LastPage     int
	LastPageSize int
}

var _ usecasecontract.ICommunityPostUseCase = (*MockCommunityPostUsecase)(nil)

func NewMockCommunityPostUsecase() *MockCommunityPostUsecase {
	return &MockCommunityPostUsecase{
		MockPosts: []entity.CommunityPost{
			{ID: "post-1", AuthorID: "author-1", Title: "First", Content: "hello", LikeCount: 2},
			{ID: "post-2", AuthorID: "author-2", Title: "Second", Content: "world"},
		},
	}
}

func (m *MockCommunityPostUsecase) list(method string, page, pageSize int) ([]entity.CommunityPost, int, int, int, error) {
	m.LastMethod, m.LastPage, m.LastPageSize = method, page, pageSize
	if m.ShouldFailList {
		return nil, 0, 0, 0, errors.New("list failed")
	}
	return m.MockPosts, len(m.MockPosts), page, 1, nil
}

func (m *MockCommunityPostUsecase) GetCommunityPosts(ctx context.Context, page, pageSize int) ([]entity.CommunityPost, int, int, int, error) {
	return m.list("GetCommunityPosts", page, pageSize)
}

func (m *MockCommunityPostUsecase) GetCommunityPostsByUser(ctx context.Context, userID string, page, pageSize int) ([]entity.CommunityPost, int, int, int, error) {
	m.LastUserID = userID
	return m.list("GetCommunityPostsByUser", page, pageSize)
}

func (m *MockCommunityPostUsecase) CreateCommunityPost(ctx context.Context, authorID, title, content, category string, imageURLs []string) (*entity.CommunityPost, error) {
	m.LastMethod, m.LastUserID, m.LastCategory = "CreateCommunityPost", authorID, category
	if m.ShouldFailCreate {
		return nil, errors.New("create failed")
	}
	return &entity.CommunityPost{
		ID:        "new-post",
		AuthorID:  authorID,
		Title:     title,
		Content:   content,
		Category:  category,
		ImageURLs: imageURLs,
	}, nil
}

func (m *MockCommunityPostUsecase) DeleteCommunityPost(ctx context.Context, postID, userID string, isAdmin bool) error {
	m.LastMethod, m.LastPostID, m.LastUserID, m.LastIsAdmin = "DeleteCommunityPost", postID, userID, isAdmin
	if m.PostNotFound {
		return contract.ErrPostNotFound
	}
	if m.ForbidDelete && !isAdmin {
		return usecase.ErrForbidden
	}
	return nil
}

func (m *MockCommunityPostUsecase) GetCommunityPostByID(ctx context.Context, postID string) (*entity.CommunityPost, error) {
	m.LastMethod, m.LastPostID = "GetCommunityPostByID", postID
	if m.PostNotFound {
		return nil, contract.ErrPostNotFound
	}
	post := m.MockPosts[0]
	post.ID = postID
	return &post, nil
}

func (m *MockCommunityPostUsecase) GetCommunityPostsByFilterOption(ctx context.Context, option entity.PostFilterOption, category string, page, pageSize int) ([]entity.CommunityPost, int, int, int, error) {
	m.LastOption, m.LastCategory = option, category
	return m.list("GetCommunityPostsByFilterOption", page, pageSize)
}
