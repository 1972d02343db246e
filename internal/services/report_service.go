package services

import (
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"timetrack-service/internal/config"
	"timetrack-service/internal/models"
	"timetrack-service/internal/repository"
	"timetrack-service/internal/storage"
)

const summaryCacheTTL = 60 * time.Second

// ReportService aggregates closed time entries per user and per project.
type ReportService struct {
	reports  repository.ReportRepository
	users    repository.UserRepository
	projects repository.ProjectRepository
	cache    *storage.RedisClient // nil when Redis is not configured
}

func NewReportService(reports repository.ReportRepository, users repository.UserRepository, projects repository.ProjectRepository, cache *storage.RedisClient) *ReportService {
	return &ReportService{reports: reports, users: users, projects: projects, cache: cache}
}

// Summary computes grouped totals over closed entries in the date range.
// Aggregate rows whose user or project has since been deleted keep a null
// reference instead of being dropped, so totals stay reconcilable.
func (s *ReportService) Summary(start, end *time.Time) (*models.SummaryResponse, error) {
	key := summaryCacheKey(start, end)
	if s.cache != nil {
		var cached models.SummaryResponse
		hit, err := s.cache.GetJSON(key, &cached)
		if err != nil {
			config.Logger.Warnw("report cache read failed", "key", key, "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	userRows, err := s.reports.SummarizeByUser(start, end)
	if err != nil {
		return nil, errors.Wrap(err, "could not summarize by user")
	}
	projectRows, err := s.reports.SummarizeByProject(start, end)
	if err != nil {
		return nil, errors.Wrap(err, "could not summarize by project")
	}

	summary := &models.SummaryResponse{
		UserSummary:    make([]models.UserSummaryRow, 0, len(userRows)),
		ProjectSummary: make([]models.ProjectSummaryRow, 0, len(projectRows)),
	}

	for _, row := range userRows {
		user, err := s.users.GetByID(row.GroupID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			user = nil
		}
		summary.UserSummary = append(summary.UserSummary, models.UserSummaryRow{
			User:         user,
			TotalMinutes: row.TotalMinutes,
			TotalHours:   RoundHours(row.TotalMinutes),
			EntryCount:   row.EntryCount,
		})
	}

	for _, row := range projectRows {
		project, err := s.projects.GetByID(row.GroupID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			project = nil
		}
		summary.ProjectSummary = append(summary.ProjectSummary, models.ProjectSummaryRow{
			Project:      project,
			TotalMinutes: row.TotalMinutes,
			TotalHours:   RoundHours(row.TotalMinutes),
			EntryCount:   row.EntryCount,
		})
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(key, summary, summaryCacheTTL); err != nil {
			config.Logger.Warnw("report cache write failed", "key", key, "error", err)
		}
	}
	return summary, nil
}

// RoundHours converts minutes to hours rounded to two decimal places.
func RoundHours(minutes int64) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}

func summaryCacheKey(start, end *time.Time) string {
	from, to := "-", "-"
	if start != nil {
		from = start.UTC().Format(time.RFC3339)
	}
	if end != nil {
		to = end.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("reports:summary:%s:%s", from, to)
}
