package models

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntry is a unit of logged work. An entry is "open" while EndTime is nil
// and closes exactly once, which also fixes Duration. Duration is whole
// minutes, present if and only if EndTime is present. IsActive marks entries
// created through the live-timer flow that are still running.
type TimeEntry struct {
	ID          uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID      uuid.UUID  `json:"userId" gorm:"type:uuid;not null;index:idx_time_entries_user_start"`
	ProjectID   uuid.UUID  `json:"projectId" gorm:"type:uuid;not null;index"`
	Description string     `json:"description" gorm:"not null"`
	StartTime   time.Time  `json:"startTime" gorm:"not null;index:idx_time_entries_user_start"`
	EndTime     *time.Time `json:"endTime"`
	Duration    *int64     `json:"duration"`
	IsActive    bool       `json:"isActive" gorm:"not null;default:false"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"autoCreateTime"`

	Project *ProjectRef `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	User    *UserRef    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// ProjectRef is the trimmed project annotation attached to time entries.
// Only the display fields serialize.
type ProjectRef struct {
	ID   uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Name string    `json:"name"`
}

func (ProjectRef) TableName() string { return "projects" }

// UserRef is the trimmed user annotation attached to time entries.
type UserRef struct {
	ID    uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func (UserRef) TableName() string { return "users" }

// DurationMinutes computes the rounded whole-minute duration between start and end.
func DurationMinutes(start, end time.Time) int64 {
	return int64(end.Sub(start).Round(time.Minute) / time.Minute)
}
