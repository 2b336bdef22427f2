package contract

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

type IUUIDGenerator interface {
	NewUUID() string
}

type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}

// ErrInvalidToken is wrapped by verifiers when a credential is malformed,
// expired, revoked or signed by someone else.
var ErrInvalidToken = errors.New("invalid or expired token")

// ITokenVerifier turns a bearer credential into the caller it belongs to.
type ITokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*entity.Principal, error)
}

// IEventPublisher publishes domain events to the message bus.
type IEventPublisher interface {
	PublishLikeEvent(ctx context.Context, event entity.LikeEvent) error
}
