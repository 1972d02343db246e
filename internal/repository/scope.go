package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetrack-service/internal/models"
)

// EntryFilter narrows a time-entry query. All fields are optional; the date
// bounds apply inclusively to StartTime.
type EntryFilter struct {
	ProjectID *uuid.UUID
	UserID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// ForCaller applies the access policy for time entries: non-admin callers are
// always pinned to their own user id, whatever filter they asked for. This is
// the single place role-based scoping for entries is decided.
func (f EntryFilter) ForCaller(caller models.Principal) EntryFilter {
	if !caller.IsAdmin() {
		userID := caller.UserID
		f.UserID = &userID
	}
	return f
}

// Scope returns a GORM scope applying the filter.
func (f EntryFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.UserID != nil {
			db = db.Where("user_id = ?", *f.UserID)
		}
		if f.ProjectID != nil {
			db = db.Where("project_id = ?", *f.ProjectID)
		}
		return dateRange(db, f.StartDate, f.EndDate)
	}
}

func dateRange(db *gorm.DB, start, end *time.Time) *gorm.DB {
	if start != nil {
		db = db.Where("start_time >= ?", *start)
	}
	if end != nil {
		db = db.Where("start_time <= ?", *end)
	}
	return db
}
