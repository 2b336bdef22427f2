package entity

import (
	"time"
)

// User is an account that can author posts and like them.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         UserRole  `bson:"role" json:"role"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	DisplayName  *string   `bson:"display_name,omitempty" json:"display_name,omitempty"`
	AvatarURL    *string   `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}
