package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetrack-service/internal/models"
	"timetrack-service/internal/repository"
)

// In-memory fakes for the repository interfaces.

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) List() ([]models.User, error) {
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeUserRepo) Count() (int64, error) {
	return int64(len(f.users)), nil
}

type fakeProjectRepo struct {
	projects []models.Project
	members  []models.ProjectMember

	// recorded by CountEntries for scope assertions
	lastCountUserID *uuid.UUID
	entryCounts     map[uuid.UUID]int64
}

func (f *fakeProjectRepo) CreateWithMembers(project *models.Project, userIDs []uuid.UUID) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	project.CreatedAt = time.Now()
	f.projects = append(f.projects, *project)
	for _, userID := range userIDs {
		f.members = append(f.members, models.ProjectMember{
			ID:        uuid.New(),
			ProjectID: project.ID,
			UserID:    userID,
		})
	}
	return nil
}

func (f *fakeProjectRepo) GetByID(id uuid.UUID) (*models.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			p := f.projects[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProjectRepo) GetWithMembers(id uuid.UUID) (*models.Project, error) {
	project, err := f.GetByID(id)
	if err != nil {
		return nil, err
	}
	for _, m := range f.members {
		if m.ProjectID == id {
			project.ProjectMembers = append(project.ProjectMembers, m)
		}
	}
	return project, nil
}

func (f *fakeProjectRepo) ListAll() ([]models.Project, error) {
	return append([]models.Project(nil), f.projects...), nil
}

func (f *fakeProjectRepo) ListForUser(userID uuid.UUID) ([]models.Project, error) {
	var out []models.Project
	for _, p := range f.projects {
		for _, m := range f.members {
			if m.ProjectID == p.ID && m.UserID == userID {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) CountEntries(projectIDs []uuid.UUID, userID *uuid.UUID) (map[uuid.UUID]int64, error) {
	f.lastCountUserID = userID
	counts := make(map[uuid.UUID]int64, len(projectIDs))
	for _, id := range projectIDs {
		counts[id] = f.entryCounts[id]
	}
	return counts, nil
}

func (f *fakeProjectRepo) IsMember(projectID, userID uuid.UUID) (bool, error) {
	for _, m := range f.members {
		if m.ProjectID == projectID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProjectRepo) addMember(projectID, userID uuid.UUID) {
	f.members = append(f.members, models.ProjectMember{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    userID,
	})
}

type fakeEntryRepo struct {
	entries []models.TimeEntry

	// recorded by List for scope assertions
	lastFilter repository.EntryFilter
}

func (f *fakeEntryRepo) Create(entry *models.TimeEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeEntryRepo) GetByID(id uuid.UUID) (*models.TimeEntry, error) {
	for i := range f.entries {
		if f.entries[i].ID == id {
			e := f.entries[i]
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEntryRepo) Update(entry *models.TimeEntry) error {
	for i := range f.entries {
		if f.entries[i].ID == entry.ID {
			f.entries[i] = *entry
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeEntryRepo) Delete(id uuid.UUID) error {
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeEntryRepo) List(filter repository.EntryFilter) ([]models.TimeEntry, error) {
	f.lastFilter = filter
	var out []models.TimeEntry
	for _, e := range f.entries {
		if filter.UserID != nil && e.UserID != *filter.UserID {
			continue
		}
		if filter.ProjectID != nil && e.ProjectID != *filter.ProjectID {
			continue
		}
		if filter.StartDate != nil && e.StartTime.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && e.StartTime.After(*filter.EndDate) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEntryRepo) HasOpenEntry(userID uuid.UUID) (bool, error) {
	for _, e := range f.entries {
		if e.UserID == userID && e.IsActive && e.EndTime == nil {
			return true, nil
		}
	}
	return false, nil
}

type fakeReportRepo struct {
	userRows    []repository.AggregateRow
	projectRows []repository.AggregateRow
}

func (f *fakeReportRepo) SummarizeByUser(start, end *time.Time) ([]repository.AggregateRow, error) {
	return f.userRows, nil
}

func (f *fakeReportRepo) SummarizeByProject(start, end *time.Time) ([]repository.AggregateRow, error) {
	return f.projectRows, nil
}

func adminPrincipal() models.Principal {
	return models.Principal{UserID: uuid.New(), Role: models.RoleAdmin}
}

func userPrincipal() models.Principal {
	return models.Principal{UserID: uuid.New(), Role: models.RoleUser}
}
