package firebase

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

type stubClient struct {
	token *auth.Token
	err   error
}

func (s *stubClient) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	return s.token, s.err
}

var errCertFetch = errors.New("certificate fetch failed")

func newVerifier(c *stubClient) *TokenVerifier {
	v := NewTokenVerifier(c)
	v.isInternal = func(err error) bool { return errors.Is(err, errCertFetch) }
	return v
}

func TestVerifyToken_MapsUIDAndRole(t *testing.T) {
	v := newVerifier(&stubClient{token: &auth.Token{UID: "fb-uid", Claims: map[string]interface{}{"role": "admin"}}})

	p, err := v.VerifyToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "fb-uid", p.UserID)
	assert.Equal(t, entity.UserRoleAdmin, p.Role)
	assert.Equal(t, entity.AuthProviderFirebase, p.Provider)
}

func TestVerifyToken_DefaultRole(t *testing.T) {
	v := newVerifier(&stubClient{token: &auth.Token{UID: "fb-uid"}})

	p, err := v.VerifyToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleUser, p.Role)
}

func TestVerifyToken_RejectedToken(t *testing.T) {
	v := newVerifier(&stubClient{err: errors.New("ID token has expired")})

	_, err := v.VerifyToken(context.Background(), "id-token")
	assert.ErrorIs(t, err, contract.ErrInvalidToken)
}

func TestVerifyToken_PlatformFailureIsNotInvalidToken(t *testing.T) {
	v := newVerifier(&stubClient{err: errCertFetch})

	_, err := v.VerifyToken(context.Background(), "id-token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, contract.ErrInvalidToken)
	assert.ErrorIs(t, err, errCertFetch)
}
