package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                     uuid.UUID  `json:"id" db:"user_id"`
	Email                  string     `json:"email" db:"email"`
	PasswordHash           string     `json:"-" db:"password_hash"`
	FullName               string     `json:"full_name" db:"full_name"`
	Username               *string    `json:"username,omitempty" db:"username"`
	Bio                    *string    `json:"bio,omitempty" db:"bio"`
	Location               *string    `json:"location,omitempty" db:"location"`
	AvatarURL              *string    `json:"avatar_url,omitempty" db:"avatar_url"`
	Role                   string     `json:"role" db:"role"`
	IsExpert               bool       `json:"is_expert" db:"is_expert"`
	IsActive               bool       `json:"is_active" db:"is_active"`
	PasswordResetToken     *string    `json:"-" db:"password_reset_token"`
	PasswordResetExpiresAt *time.Time `json:"-" db:"password_reset_expires_at"`
	CreatedAt              time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt              *time.Time `json:"-" db:"deleted_at"`
}

type CreateUserInput struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName string  `json:"full_name" validate:"required,min=2"`
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=30"`
}

type UpdateUserInput struct {
	FullName  *string `json:"full_name,omitempty" validate:"omitempty,min=2"`
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=30"`
	Bio       *string `json:"bio,omitempty"`
	Location  *string `json:"location,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleMember, RoleAdmin:
		return true
	default:
		return false
	}
}

func (u *User) HasRole(requiredRole string) bool {
	switch requiredRole {
	case "admin":
		return u.Role == "admin"
	case "member":
		return u.Role == "member" || u.Role == "admin"
	default:
		return false
	}
}

// PublicProfile is the shape exposed on another user's profile page.
type PublicProfile struct {
	ID        uuid.UUID `json:"id" db:"user_id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Username  *string   `json:"username,omitempty" db:"username"`
	Bio       *string   `json:"bio,omitempty" db:"bio"`
	Location  *string   `json:"location,omitempty" db:"location"`
	AvatarURL *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	IsExpert  bool      `json:"is_expert" db:"is_expert"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
