package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "commune"

// CustomClaims are the claims signed into access tokens.
type CustomClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HMAC-SHA256 access tokens.
type JWTManager struct {
	secret         []byte
	accessTokenTTL time.Duration
	now            func() time.Time
}

func NewJWTManager(secret string, accessTokenTTL time.Duration) *JWTManager {
	if accessTokenTTL <= 0 {
		accessTokenTTL = time.Hour
	}
	return &JWTManager{secret: []byte(secret), accessTokenTTL: accessTokenTTL, now: time.Now}
}

// GenerateAccessToken issues a token whose subject is userID.
func (m *JWTManager) GenerateAccessToken(userID, role string) (string, error) {
	now := m.now()
	claims := CustomClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses tokenStr and checks signature, issuer and expiry.
func (m *JWTManager) VerifyToken(tokenStr string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}
