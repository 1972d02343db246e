package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetrack-service/internal/middleware"
	"timetrack-service/internal/models"
	"timetrack-service/internal/repository"
	"timetrack-service/internal/services"
)

// Minimal in-memory repositories backing real services under test.

type memProjectRepo struct {
	projects []models.Project
	members  []models.ProjectMember
}

func (m *memProjectRepo) CreateWithMembers(project *models.Project, userIDs []uuid.UUID) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	project.CreatedAt = time.Now()
	m.projects = append(m.projects, *project)
	for _, userID := range userIDs {
		m.members = append(m.members, models.ProjectMember{ID: uuid.New(), ProjectID: project.ID, UserID: userID})
	}
	return nil
}

func (m *memProjectRepo) GetByID(id uuid.UUID) (*models.Project, error) {
	for i := range m.projects {
		if m.projects[i].ID == id {
			p := m.projects[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memProjectRepo) GetWithMembers(id uuid.UUID) (*models.Project, error) {
	project, err := m.GetByID(id)
	if err != nil {
		return nil, err
	}
	for _, member := range m.members {
		if member.ProjectID == id {
			project.ProjectMembers = append(project.ProjectMembers, member)
		}
	}
	return project, nil
}

func (m *memProjectRepo) ListAll() ([]models.Project, error) {
	return append([]models.Project(nil), m.projects...), nil
}

func (m *memProjectRepo) ListForUser(userID uuid.UUID) ([]models.Project, error) {
	var out []models.Project
	for _, p := range m.projects {
		for _, member := range m.members {
			if member.ProjectID == p.ID && member.UserID == userID {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (m *memProjectRepo) CountEntries(projectIDs []uuid.UUID, userID *uuid.UUID) (map[uuid.UUID]int64, error) {
	return map[uuid.UUID]int64{}, nil
}

func (m *memProjectRepo) IsMember(projectID, userID uuid.UUID) (bool, error) {
	for _, member := range m.members {
		if member.ProjectID == projectID && member.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

type memEntryRepo struct {
	entries []models.TimeEntry
}

func (m *memEntryRepo) Create(entry *models.TimeEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memEntryRepo) GetByID(id uuid.UUID) (*models.TimeEntry, error) {
	for i := range m.entries {
		if m.entries[i].ID == id {
			e := m.entries[i]
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memEntryRepo) Update(entry *models.TimeEntry) error {
	for i := range m.entries {
		if m.entries[i].ID == entry.ID {
			m.entries[i] = *entry
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memEntryRepo) Delete(id uuid.UUID) error {
	for i := range m.entries {
		if m.entries[i].ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memEntryRepo) List(filter repository.EntryFilter) ([]models.TimeEntry, error) {
	var out []models.TimeEntry
	for _, e := range m.entries {
		if filter.UserID != nil && e.UserID != *filter.UserID {
			continue
		}
		if filter.ProjectID != nil && e.ProjectID != *filter.ProjectID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *memEntryRepo) HasOpenEntry(userID uuid.UUID) (bool, error) {
	for _, e := range m.entries {
		if e.UserID == userID && e.IsActive && e.EndTime == nil {
			return true, nil
		}
	}
	return false, nil
}

// testEnv wires real handlers and services over the in-memory repos, with a
// fixed principal injected instead of the auth middleware.
type testEnv struct {
	app      *fiber.App
	entries  *memEntryRepo
	projects *memProjectRepo
}

func newTestEnv(principal models.Principal) *testEnv {
	entries := &memEntryRepo{}
	projects := &memProjectRepo{}

	entryHandler := NewTimeEntryHandler(services.NewTimeEntryService(entries, projects))
	projectHandler := NewProjectHandler(services.NewProjectService(projects))

	app := fiber.New()
	app.Use(middleware.WithPrincipal(principal))
	app.Get("/api/time-entries", entryHandler.ListTimeEntries)
	app.Post("/api/time-entries", entryHandler.CreateTimeEntry)
	app.Put("/api/time-entries/:id", entryHandler.StopTimeEntry)
	app.Delete("/api/time-entries/:id", entryHandler.DeleteTimeEntry)
	app.Get("/api/projects", projectHandler.ListProjects)
	app.Post("/api/projects", projectHandler.CreateProject)

	return &testEnv{app: app, entries: entries, projects: projects}
}

func (e *testEnv) request(t *testing.T, method, path string, body any) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	fields := map[string]json.RawMessage{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &fields); err != nil {
			t.Fatalf("decode body %q: %v", raw, err)
		}
	}
	return resp, fields
}

func errorMessage(t *testing.T, fields map[string]json.RawMessage) string {
	t.Helper()
	var message string
	if err := json.Unmarshal(fields["error"], &message); err != nil {
		t.Fatalf("decode error field: %v", err)
	}
	return message
}
