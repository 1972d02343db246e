package models

import (
	"github.com/google/uuid"
)

// ProjectMember grants a user visibility into a project and the right to log
// time against it. Membership is a set: the composite unique index makes
// repeated assignments idempotent.
type ProjectMember struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_project_members_project_user"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_project_members_project_user"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
