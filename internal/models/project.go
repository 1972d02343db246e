package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID             uuid.UUID       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name           string          `json:"name" gorm:"not null"`
	Description    string          `json:"description"`
	CreatedAt      time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	ProjectMembers []ProjectMember `json:"projectMembers,omitempty" gorm:"foreignKey:ProjectID"`
	Count          *ProjectCount   `json:"_count,omitempty" gorm:"-"`
}

// ProjectCount carries the time-entry count attached to project listings.
// For non-admin callers it counts only the caller's own entries.
type ProjectCount struct {
	TimeEntries int64 `json:"timeEntries"`
}
