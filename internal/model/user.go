package model

import "time"

// Role determines the capability set of a user.
type Role string

const (
	// RoleRegular users create posts and replies and edit their own bio.
	RoleRegular Role = "regular"
	// RoleAdmin users additionally see the aggregate admin listing.
	RoleAdmin Role = "admin"
	// RoleBot marks the non-interactive system account that authors
	// synthesized replies. It never logs in through normal credentials.
	RoleBot Role = "bot"
)

// User represents a forum member.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:16;not null;default:'regular'"`
	Bio          string    `json:"bio" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsBot reports whether the user is the system bot account.
func (u *User) IsBot() bool {
	return u.Role == RoleBot
}
