package models

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateProjectRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	UserIDs     []uuid.UUID `json:"userIds"`
}

type CreateTimeEntryRequest struct {
	ProjectID    *uuid.UUID `json:"projectId"`
	Description  string     `json:"description"`
	StartTime    *time.Time `json:"startTime"`
	EndTime      *time.Time `json:"endTime"`
	IsTimerEntry bool       `json:"isTimerEntry"`
}

// StopTimeEntryRequest closes a running entry.
type StopTimeEntryRequest struct {
	EndTime *time.Time `json:"endTime"`
}
