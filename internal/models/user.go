package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles assigned at account creation. Role is never mutated by this service.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User represents an account that can log time and, for admins, manage projects.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null;default:USER"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// Principal is the authenticated identity recovered from a bearer token.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
