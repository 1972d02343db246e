package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"

	"timetrack-service/internal/models"
)

func TestCreateTimeEntryRejectsMissingFields(t *testing.T) {
	env := newTestEnv(models.Principal{UserID: uuid.New(), Role: models.RoleAdmin})

	resp, fields := env.request(t, http.MethodPost, "/api/time-entries", map[string]any{
		"description": "no project or start time",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if got := errorMessage(t, fields); got != "Project, description, and start time are required" {
		t.Errorf("unexpected error message: %q", got)
	}
	if len(env.entries.entries) != 0 {
		t.Errorf("no entry should be created on validation failure")
	}
}

func TestCreateTimeEntryForbiddenForNonMember(t *testing.T) {
	caller := models.Principal{UserID: uuid.New(), Role: models.RoleUser}
	env := newTestEnv(caller)

	project := &models.Project{Name: "Acme"}
	env.projects.CreateWithMembers(project, nil)

	resp, fields := env.request(t, http.MethodPost, "/api/time-entries", map[string]any{
		"projectId":   project.ID,
		"description": "sneaky",
		"startTime":   time.Now().UTC().Format(time.RFC3339),
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	if got := errorMessage(t, fields); got != "Access denied to this project" {
		t.Errorf("unexpected error message: %q", got)
	}
	if len(env.entries.entries) != 0 {
		t.Errorf("no entry should be created for a non-member")
	}
}

func TestTimerStartAndStopFlow(t *testing.T) {
	caller := models.Principal{UserID: uuid.New(), Role: models.RoleUser}
	env := newTestEnv(caller)

	project := &models.Project{Name: "Acme"}
	env.projects.CreateWithMembers(project, []uuid.UUID{caller.UserID})

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	resp, fields := env.request(t, http.MethodPost, "/api/time-entries", map[string]any{
		"projectId":    project.ID,
		"description":  "morning work",
		"startTime":    start.Format(time.RFC3339),
		"isTimerEntry": true,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", resp.StatusCode, fields)
	}

	var created models.TimeEntry
	if err := json.Unmarshal(fields["timeEntry"], &created); err != nil {
		t.Fatalf("decode created entry: %v", err)
	}
	if !created.IsActive || created.EndTime != nil || created.Duration != nil {
		t.Fatalf("timer entry should be open: %+v", created)
	}

	end := start.Add(95 * time.Minute)
	resp, fields = env.request(t, http.MethodPut, "/api/time-entries/"+created.ID.String(), map[string]any{
		"endTime": end.Format(time.RFC3339),
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on stop, got %d: %v", resp.StatusCode, fields)
	}

	var stopped models.TimeEntry
	if err := json.Unmarshal(fields["timeEntry"], &stopped); err != nil {
		t.Fatalf("decode stopped entry: %v", err)
	}
	if stopped.IsActive {
		t.Error("stopped entry should not be active")
	}
	if stopped.Duration == nil || *stopped.Duration != 95 {
		t.Errorf("expected duration 95, got %v", stopped.Duration)
	}

	// A second stop must be rejected.
	resp, fields = env.request(t, http.MethodPut, "/api/time-entries/"+created.ID.String(), map[string]any{
		"endTime": end.Add(time.Hour).Format(time.RFC3339),
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 on double stop, got %d", resp.StatusCode)
	}
}

func TestStopTimeEntryValidation(t *testing.T) {
	env := newTestEnv(models.Principal{UserID: uuid.New(), Role: models.RoleUser})

	resp, fields := env.request(t, http.MethodPut, "/api/time-entries/not-a-uuid", map[string]any{
		"endTime": time.Now().UTC().Format(time.RFC3339),
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if got := errorMessage(t, fields); got != "Invalid UUID" {
		t.Errorf("unexpected error message: %q", got)
	}

	resp, fields = env.request(t, http.MethodPut, "/api/time-entries/"+uuid.NewString(), map[string]any{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if got := errorMessage(t, fields); got != "End time is required" {
		t.Errorf("unexpected error message: %q", got)
	}

	resp, _ = env.request(t, http.MethodPut, "/api/time-entries/"+uuid.NewString(), map[string]any{
		"endTime": time.Now().UTC().Format(time.RFC3339),
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown entry, got %d", resp.StatusCode)
	}
}

func TestListTimeEntriesRejectsBadFilter(t *testing.T) {
	env := newTestEnv(models.Principal{UserID: uuid.New(), Role: models.RoleUser})

	resp, fields := env.request(t, http.MethodGet, "/api/time-entries?projectId=banana", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if got := errorMessage(t, fields); got != "Invalid filter format" {
		t.Errorf("unexpected error message: %q", got)
	}
}

func TestDeleteTimeEntry(t *testing.T) {
	caller := models.Principal{UserID: uuid.New(), Role: models.RoleUser}
	env := newTestEnv(caller)

	project := &models.Project{Name: "Acme"}
	env.projects.CreateWithMembers(project, []uuid.UUID{caller.UserID})

	entry := &models.TimeEntry{
		ProjectID:   project.ID,
		UserID:      caller.UserID,
		Description: "scrap this",
		StartTime:   time.Now().UTC(),
	}
	env.entries.Create(entry)

	resp, fields := env.request(t, http.MethodDelete, "/api/time-entries/"+entry.ID.String(), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var message string
	if err := json.Unmarshal(fields["message"], &message); err != nil {
		t.Fatalf("decode message: %v", err)
	}
	if message != "Time entry deleted successfully" {
		t.Errorf("unexpected message: %q", message)
	}
	if len(env.entries.entries) != 0 {
		t.Errorf("entry should be gone")
	}
}
