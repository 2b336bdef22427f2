package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	"github.com/mikiasgoitom/Commune/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailCreateUser bool
	UserAlreadyExists    bool
	ShouldFailLogin      bool
	ShouldFailGetByID    bool

	// Return values
	MockUser        entity.User
	MockAccessToken string
}

var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Username: "testuser",
			Email:    "test@example.com",
			Role:     entity.UserRoleUser,
			IsActive: true,
		},
		MockAccessToken: "mock_access_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, username, email, password, displayName string) (*entity.User, error) {
	if m.UserAlreadyExists {
		return nil, usecase.ErrUserExists
	}
	if m.ShouldFailCreateUser {
		return nil, errors.New("user creation failed")
	}
	user := m.MockUser
	user.Username, user.Email = username, email
	return &user, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, identifier, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", usecase.ErrInvalidCredentials
	}
	return &m.MockUser, m.MockAccessToken, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, contract.ErrUserNotFound
	}
	user := m.MockUser
	user.ID = userID
	return &user, nil
}
