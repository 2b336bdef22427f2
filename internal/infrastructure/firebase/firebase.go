package firebase

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

// IDTokenVerifier is the part of the Firebase auth client the verifier needs.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// TokenVerifier verifies Firebase ID tokens issued to the mobile client.
type TokenVerifier struct {
	client IDTokenVerifier
	// isInternal decides whether a verification error is a platform failure
	// rather than a bad token.
	isInternal func(error) bool
}

var _ contract.ITokenVerifier = (*TokenVerifier)(nil)

// NewAuthClient initializes the Firebase app and returns its auth client.
func NewAuthClient(ctx context.Context, credentialsPath string) (*auth.Client, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("firebase credentials path not provided")
	}
	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("firebase credentials file not found at %s", credentialsPath)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %w", err)
	}
	return client, nil
}

func NewTokenVerifier(client IDTokenVerifier) *TokenVerifier {
	return &TokenVerifier{client: client, isInternal: auth.IsCertificateFetchFailed}
}

// VerifyToken maps the Firebase UID to the principal's user ID. Custom claim
// "role" carries the application role.
func (v *TokenVerifier) VerifyToken(ctx context.Context, idToken string) (*entity.Principal, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		if v.isInternal(err) {
			return nil, fmt.Errorf("firebase verification unavailable: %w", err)
		}
		return nil, fmt.Errorf("%w: %v", contract.ErrInvalidToken, err)
	}

	role := entity.DefaultRole()
	if r, ok := token.Claims["role"].(string); ok && entity.UserRole(r) == entity.UserRoleAdmin {
		role = entity.UserRoleAdmin
	}
	return &entity.Principal{
		UserID:   token.UID,
		Role:     role,
		Provider: entity.AuthProviderFirebase,
	}, nil
}
