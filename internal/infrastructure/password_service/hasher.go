package passwordservice

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
)

// ErrPasswordMismatch is returned when a password does not match its hash.
var ErrPasswordMismatch = errors.New("password verification failed")

// Hasher hashes user passwords with bcrypt.
type Hasher struct {
	cost int
}

var _ contract.IHasher = (*Hasher)(nil)

func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// NewHasherWithCost is used by tests to keep hashing fast.
func NewHasherWithCost(cost int) *Hasher {
	return &Hasher{cost: cost}
}

func (h *Hasher) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (h *Hasher) ComparePasswordHash(password, hashedPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("failed to check password hash: %w", err)
	}
	return nil
}
