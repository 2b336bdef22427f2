package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	"github.com/mikiasgoitom/Commune/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
)

// MockLikeUsecase is a mock implementation of ILikeUseCase.
type MockLikeUsecase struct {
	ShouldFailToggle bool
	ShouldFailCount  bool

	Liked      bool
	Status     entity.LikeStatus
	StatusErr  error
	LikeCount  int64
	LastUserID string
	LastPostID string
}

var _ usecasecontract.ILikeUseCase = (*MockLikeUsecase)(nil)

func NewMockLikeUsecase() *MockLikeUsecase {
	return &MockLikeUsecase{Status: entity.LikeStatusNotLiked}
}

func (m *MockLikeUsecase) IsLiked(ctx context.Context, postID string) bool {
	m.LastPostID = postID
	return m.Liked
}

func (m *MockLikeUsecase) LikeStatus(ctx context.Context, postID string) (entity.LikeStatus, error) {
	m.LastPostID = postID
	return m.Status, m.StatusErr
}

func (m *MockLikeUsecase) ToggleLike(ctx context.Context, userID, postID string) (bool, error) {
	m.LastUserID, m.LastPostID = userID, postID
	if userID == "" {
		return false, usecase.ErrUnauthenticated
	}
	if m.ShouldFailToggle {
		return false, errors.New("toggle failed")
	}
	m.Liked = !m.Liked
	return m.Liked, nil
}

func (m *MockLikeUsecase) GetLikeCount(ctx context.Context, postID string) (int64, error) {
	m.LastPostID = postID
	if m.ShouldFailCount {
		return 0, errors.New("count failed")
	}
	return m.LikeCount, nil
}
