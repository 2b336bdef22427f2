package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(NewJWTManager("secret", time.Minute))

	token, err := svc.GenerateAccessToken("user-1", entity.UserRoleAdmin)
	require.NoError(t, err)

	principal, err := svc.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", principal.UserID)
	assert.Equal(t, entity.UserRoleAdmin, principal.Role)
	assert.Equal(t, entity.AuthProviderJWT, principal.Provider)
	assert.True(t, principal.IsAdmin())
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuerSvc := NewJWTService(NewJWTManager("other-secret", time.Minute))
	token, err := issuerSvc.GenerateAccessToken("user-1", entity.UserRoleUser)
	require.NoError(t, err)

	svc := NewJWTService(NewJWTManager("secret", time.Minute))
	_, err = svc.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, contract.ErrInvalidToken)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	mgr := NewJWTManager("secret", time.Minute)
	mgr.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := mgr.GenerateAccessToken("user-1", "user")
	require.NoError(t, err)

	svc := NewJWTService(NewJWTManager("secret", time.Minute))
	_, err = svc.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, contract.ErrInvalidToken)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService(NewJWTManager("secret", time.Minute))
	_, err := svc.VerifyToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, contract.ErrInvalidToken)
}
