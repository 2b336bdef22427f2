package entity

import "github.com/golang-jwt/jwt/v5"

// Claims are the application claims carried by an access token.
type Claims struct {
	UserID string   `json:"user_id"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}

// AuthProvider identifies who issued the credential of a Principal.
type AuthProvider string

const (
	AuthProviderJWT      AuthProvider = "jwt"
	AuthProviderFirebase AuthProvider = "firebase"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID   string
	Role     UserRole
	Provider AuthProvider
}

// IsAdmin reports whether the principal carries the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == UserRoleAdmin
}
