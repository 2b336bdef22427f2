package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
)

type accessTokenKey struct{}

// WithAccessToken returns a copy of ctx carrying the caller's bearer token.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFromContext returns the bearer token stored by WithAccessToken.
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey{}).(string)
	return token, ok && token != ""
}

// SessionResolver resolves the caller from the token carried in the context.
type SessionResolver struct {
	verifier contract.ITokenVerifier
}

var _ usecasecontract.IIdentityResolver = (*SessionResolver)(nil)

func NewSessionResolver(verifier contract.ITokenVerifier) *SessionResolver {
	return &SessionResolver{verifier: verifier}
}

// ResolvePrincipal returns ErrUnauthenticated when no token is present and
// ErrInvalidSession when the verifier rejects it. Any other verifier failure
// is returned as is.
func (r *SessionResolver) ResolvePrincipal(ctx context.Context) (*entity.Principal, error) {
	token, ok := AccessTokenFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	principal, err := r.verifier.VerifyToken(ctx, token)
	if err != nil {
		if errors.Is(err, contract.ErrInvalidToken) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
		}
		return nil, fmt.Errorf("failed to verify session: %w", err)
	}
	if principal == nil || principal.UserID == "" {
		return nil, ErrInvalidSession
	}
	return principal, nil
}
