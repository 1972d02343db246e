package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetrack-service/internal/models"
)

// AggregateRow is one grouped total over closed time entries.
type AggregateRow struct {
	GroupID      uuid.UUID `gorm:"column:group_id"`
	TotalMinutes int64     `gorm:"column:total_minutes"`
	EntryCount   int64     `gorm:"column:entry_count"`
}

// ReportRepository defines the grouped aggregation queries behind the summary report.
type ReportRepository interface {
	SummarizeByUser(start, end *time.Time) ([]AggregateRow, error)
	SummarizeByProject(start, end *time.Time) ([]AggregateRow, error)
}

// ReportRepositoryImpl computes report aggregates directly in SQL.
type ReportRepositoryImpl struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepositoryImpl with the provided GORM database connection.
func NewReportRepository(db *gorm.DB) *ReportRepositoryImpl {
	return &ReportRepositoryImpl{db: db}
}

// SummarizeByUser groups closed entries in the date range by user.
func (r *ReportRepositoryImpl) SummarizeByUser(start, end *time.Time) ([]AggregateRow, error) {
	return r.summarize("user_id", start, end)
}

// SummarizeByProject groups closed entries in the date range by project.
func (r *ReportRepositoryImpl) SummarizeByProject(start, end *time.Time) ([]AggregateRow, error) {
	return r.summarize("project_id", start, end)
}

func (r *ReportRepositoryImpl) summarize(column string, start, end *time.Time) ([]AggregateRow, error) {
	var rows []AggregateRow
	q := r.db.Model(&models.TimeEntry{}).
		Select(column + " AS group_id, COALESCE(SUM(duration), 0) AS total_minutes, COUNT(*) AS entry_count").
		Where("end_time IS NOT NULL")
	q = dateRange(q, start, end)
	err := q.Group(column).Scan(&rows).Error
	return rows, err
}
