package jwt

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	"github.com/mikiasgoitom/Commune/internal/usecase"
)

// JWTServiceAdapter adapts JWTManager to the usecase.JWTService interface
// and to the contract.ITokenVerifier used for session resolution.
type JWTServiceAdapter struct {
	mgr *JWTManager
}

var (
	_ usecase.JWTService      = (*JWTServiceAdapter)(nil)
	_ contract.ITokenVerifier = (*JWTServiceAdapter)(nil)
)

// NewJWTService creates a new JWTServiceAdapter from JWTManager
func NewJWTService(mgr *JWTManager) *JWTServiceAdapter {
	return &JWTServiceAdapter{mgr: mgr}
}

// GenerateAccessToken issues an access token for a user.
func (a *JWTServiceAdapter) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	return a.mgr.GenerateAccessToken(userID, string(role))
}

// ParseAccessToken validates an access token and returns Claims.
func (a *JWTServiceAdapter) ParseAccessToken(tokenStr string) (*entity.Claims, error) {
	customClaims, err := a.mgr.VerifyToken(tokenStr)
	if err != nil {
		return nil, err
	}
	return &entity.Claims{
		UserID:           customClaims.Subject,
		Role:             entity.UserRole(customClaims.Role),
		RegisteredClaims: customClaims.RegisteredClaims,
	}, nil
}

// VerifyToken implements contract.ITokenVerifier. Every parse failure is a
// rejected credential; nothing here talks to the network.
func (a *JWTServiceAdapter) VerifyToken(_ context.Context, token string) (*entity.Principal, error) {
	claims, err := a.ParseAccessToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contract.ErrInvalidToken, err)
	}
	return &entity.Principal{
		UserID:   claims.UserID,
		Role:     claims.Role,
		Provider: entity.AuthProviderJWT,
	}, nil
}
