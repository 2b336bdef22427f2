package uuidgen

import (
	"github.com/google/uuid"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
)

// Generator hands out random (version 4) UUIDs for posts, likes and users.
type Generator struct{}

var _ contract.IUUIDGenerator = (*Generator)(nil)

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) NewUUID() string {
	return uuid.NewString()
}
