package services

import (
	"time"

	"github.com/google/uuid"

	"timetrack-service/internal/models"
	"timetrack-service/internal/repository"
)

// TimeEntryService owns the timer lifecycle: entries start open, close exactly
// once, and are immutable after that except for deletion.
type TimeEntryService struct {
	entries  repository.TimeEntryRepository
	projects repository.ProjectRepository
}

func NewTimeEntryService(entries repository.TimeEntryRepository, projects repository.ProjectRepository) *TimeEntryService {
	return &TimeEntryService{entries: entries, projects: projects}
}

// ListEntries returns entries matching the filter, scoped to the caller.
// Non-admins only ever see their own entries.
func (s *TimeEntryService) ListEntries(caller models.Principal, filter repository.EntryFilter) ([]models.TimeEntry, error) {
	return s.entries.List(filter.ForCaller(caller))
}

// CreateEntry creates a time entry for the caller. Live-timer entries start
// open (isActive); manual entries arrive with both times and are created
// closed. Non-admins must be members of the target project. At most one live
// timer may run per user.
func (s *TimeEntryService) CreateEntry(caller models.Principal, req models.CreateTimeEntryRequest) (*models.TimeEntry, error) {
	if !caller.IsAdmin() {
		member, err := s.projects.IsMember(*req.ProjectID, caller.UserID)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, ErrProjectAccess
		}
	}

	start := *req.StartTime
	end := req.EndTime
	if end != nil && end.Before(start) {
		return nil, ErrEndBeforeStart
	}

	var duration *int64
	if end != nil {
		d := models.DurationMinutes(start, *end)
		duration = &d
	}

	isActive := req.IsTimerEntry && end == nil
	if isActive {
		running, err := s.entries.HasOpenEntry(caller.UserID)
		if err != nil {
			return nil, err
		}
		if running {
			return nil, ErrTimerRunning
		}
	}

	entry := &models.TimeEntry{
		UserID:      caller.UserID,
		ProjectID:   *req.ProjectID,
		Description: req.Description,
		StartTime:   start,
		EndTime:     end,
		Duration:    duration,
		IsActive:    isActive,
	}
	if err := s.entries.Create(entry); err != nil {
		return nil, err
	}
	// Reload so the response carries the project and user annotations.
	return s.entries.GetByID(entry.ID)
}

// StopEntry closes an open entry: sets the end time, computes the rounded
// minute duration and clears isActive. Closed entries cannot be stopped again.
func (s *TimeEntryService) StopEntry(caller models.Principal, id uuid.UUID, endTime time.Time) (*models.TimeEntry, error) {
	entry, err := s.entries.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != caller.UserID && !caller.IsAdmin() {
		return nil, ErrAccessDenied
	}
	if entry.EndTime != nil {
		return nil, ErrEntryStopped
	}
	if endTime.Before(entry.StartTime) {
		return nil, ErrEndBeforeStart
	}

	duration := models.DurationMinutes(entry.StartTime, endTime)
	entry.EndTime = &endTime
	entry.Duration = &duration
	entry.IsActive = false

	if err := s.entries.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteEntry removes an entry. Only the owner or an admin may delete it.
func (s *TimeEntryService) DeleteEntry(caller models.Principal, id uuid.UUID) error {
	entry, err := s.entries.GetByID(id)
	if err != nil {
		return err
	}
	if entry.UserID != caller.UserID && !caller.IsAdmin() {
		return ErrAccessDenied
	}
	return s.entries.Delete(id)
}
