package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetrack-service/internal/models"
)

// TimeEntryRepository defines database operations for time entries.
type TimeEntryRepository interface {
	Create(entry *models.TimeEntry) error
	GetByID(id uuid.UUID) (*models.TimeEntry, error)
	Update(entry *models.TimeEntry) error
	Delete(id uuid.UUID) error
	List(filter EntryFilter) ([]models.TimeEntry, error)
	HasOpenEntry(userID uuid.UUID) (bool, error)
}

// TimeEntryRepositoryImpl provides methods to interact with the TimeEntry model in the database.
type TimeEntryRepositoryImpl struct {
	db *gorm.DB
}

// NewTimeEntryRepository creates a new TimeEntryRepositoryImpl with the provided GORM database connection.
func NewTimeEntryRepository(db *gorm.DB) *TimeEntryRepositoryImpl {
	return &TimeEntryRepositoryImpl{db: db}
}

// Create creates a new TimeEntry in the database.
func (r *TimeEntryRepositoryImpl) Create(entry *models.TimeEntry) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves a TimeEntry by its ID with its project and user attached.
func (r *TimeEntryRepositoryImpl) GetByID(id uuid.UUID) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.Preload("Project").Preload("User").First(&entry, "id = ?", id).Error
	return &entry, err
}

// Update updates an existing TimeEntry in the database.
func (r *TimeEntryRepositoryImpl) Update(entry *models.TimeEntry) error {
	return r.db.Save(entry).Error
}

// Delete removes a TimeEntry by its ID from the database.
func (r *TimeEntryRepositoryImpl) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TimeEntry{}, "id = ?", id).Error
}

// List retrieves TimeEntries matching the filter, newest start time first,
// each annotated with its project and owning user.
func (r *TimeEntryRepositoryImpl) List(filter EntryFilter) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := r.db.Scopes(filter.Scope()).
		Preload("Project").Preload("User").
		Order("start_time DESC").
		Find(&entries).Error
	return entries, err
}

// HasOpenEntry reports whether the user has a live timer still running.
func (r *TimeEntryRepositoryImpl) HasOpenEntry(userID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.Model(&models.TimeEntry{}).
		Where("user_id = ? AND is_active = ? AND end_time IS NULL", userID, true).
		Count(&n).Error
	return n > 0, err
}
