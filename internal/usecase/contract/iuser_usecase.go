package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	Register(ctx context.Context, username, email, password, displayName string) (*entity.User, error)
	Login(ctx context.Context, identifier, password string) (*entity.User, string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
}
