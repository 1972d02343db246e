package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetrack-service/internal/models"
)

// ProjectRepository defines database operations for projects and memberships.
type ProjectRepository interface {
	CreateWithMembers(project *models.Project, userIDs []uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetWithMembers(id uuid.UUID) (*models.Project, error)
	ListAll() ([]models.Project, error)
	ListForUser(userID uuid.UUID) ([]models.Project, error)
	CountEntries(projectIDs []uuid.UUID, userID *uuid.UUID) (map[uuid.UUID]int64, error)
	IsMember(projectID, userID uuid.UUID) (bool, error)
}

// ProjectRepositoryImpl provides methods to interact with the Project model in the database.
type ProjectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepositoryImpl with the provided GORM database connection.
func NewProjectRepository(db *gorm.DB) *ProjectRepositoryImpl {
	return &ProjectRepositoryImpl{db: db}
}

// CreateWithMembers creates a Project and one membership row per user id in a
// single transaction. All rows are created or none.
func (r *ProjectRepositoryImpl) CreateWithMembers(project *models.Project, userIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		for _, userID := range userIDs {
			member := models.ProjectMember{ProjectID: project.ID, UserID: userID}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a Project by its ID from the database.
func (r *ProjectRepositoryImpl) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	return &project, err
}

// GetWithMembers retrieves a Project by its ID along with its member list.
func (r *ProjectRepositoryImpl) GetWithMembers(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("ProjectMembers").Preload("ProjectMembers.User").
		First(&project, "id = ?", id).Error
	return &project, err
}

// ListAll retrieves all Projects with their member lists, newest first.
func (r *ProjectRepositoryImpl) ListAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("ProjectMembers").Preload("ProjectMembers.User").
		Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// ListForUser retrieves only the Projects the given user is a member of, newest first.
func (r *ProjectRepositoryImpl) ListForUser(userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Joins("JOIN project_members ON project_members.project_id = projects.id").
		Where("project_members.user_id = ?", userID).
		Order("projects.created_at DESC").
		Find(&projects).Error
	return projects, err
}

// CountEntries returns the number of time entries per project. When userID is
// non-nil only that user's entries are counted.
func (r *ProjectRepositoryImpl) CountEntries(projectIDs []uuid.UUID, userID *uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(projectIDs))
	if len(projectIDs) == 0 {
		return counts, nil
	}

	type row struct {
		ProjectID uuid.UUID
		Total     int64
	}
	var rows []row

	q := r.db.Model(&models.TimeEntry{}).
		Select("project_id, COUNT(*) AS total").
		Where("project_id IN ?", projectIDs)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if err := q.Group("project_id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, rw := range rows {
		counts[rw.ProjectID] = rw.Total
	}
	return counts, nil
}

// IsMember reports whether a membership row exists for (projectID, userID).
func (r *ProjectRepositoryImpl) IsMember(projectID, userID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.Model(&models.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&n).Error
	return n > 0, err
}
