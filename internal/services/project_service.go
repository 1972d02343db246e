package services

import (
	"github.com/google/uuid"

	"timetrack-service/internal/models"
	"timetrack-service/internal/repository"
)

// ProjectService handles project listing and creation with role-scoped access.
type ProjectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// ListProjects returns the projects visible to the caller. Admins see every
// project with its member list and a count over all time entries; regular
// users see only projects they are a member of, with the count restricted to
// their own entries.
func (s *ProjectService) ListProjects(caller models.Principal) ([]models.Project, error) {
	var (
		projects []models.Project
		scopeTo  *uuid.UUID
		err      error
	)

	if caller.IsAdmin() {
		projects, err = s.repo.ListAll()
	} else {
		userID := caller.UserID
		scopeTo = &userID
		projects, err = s.repo.ListForUser(userID)
	}
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(projects))
	for i := range projects {
		ids[i] = projects[i].ID
	}
	counts, err := s.repo.CountEntries(ids, scopeTo)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Count = &models.ProjectCount{TimeEntries: counts[projects[i].ID]}
	}
	return projects, nil
}

// CreateProject creates a project and its membership rows atomically and
// returns it with the member list resolved. Duplicate user ids collapse to a
// single membership.
func (s *ProjectService) CreateProject(req models.CreateProjectRequest) (*models.Project, error) {
	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.CreateWithMembers(project, dedupe(req.UserIDs)); err != nil {
		return nil, err
	}
	return s.repo.GetWithMembers(project.ID)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
