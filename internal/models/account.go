package models

import (
	"time"

	"github.com/google/uuid"
)

// Account roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// AccountDB represents an account record in the database
type AccountDB struct {
	AccountID    uuid.UUID `json:"account_id" db:"account_id"`       // Primary key
	Username     string    `json:"username" db:"username"`           // Unique username, lookup key
	Nickname     string    `json:"nickname" db:"nickname"`           // Display name
	Email        string    `json:"email" db:"email"`                 // User email, set at registration
	PasswordHash string    `json:"-" db:"password_hash"`             // Hashed password, never plaintext
	Role         string    `json:"role" db:"role"`                   // "user" or "admin"
	ProfileImage *string   `json:"profile_image" db:"profile_image"` // Stored image name, nil until first upload
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}

// AccountProfile is the cacheable public projection of an account
type AccountProfile struct {
	AccountID    uuid.UUID `json:"account_id"`
	Username     string    `json:"username"`
	Nickname     string    `json:"nickname"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ProfileImage *string   `json:"profile_image,omitempty"`
}

// Profile builds the public projection of an account record.
func (a *AccountDB) Profile() *AccountProfile {
	return &AccountProfile{
		AccountID:    a.AccountID,
		Username:     a.Username,
		Nickname:     a.Nickname,
		Email:        a.Email,
		Role:         a.Role,
		ProfileImage: a.ProfileImage,
	}
}
