package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

// IIdentityResolver resolves the authenticated caller of the current request.
type IIdentityResolver interface {
	ResolvePrincipal(ctx context.Context) (*entity.Principal, error)
}
