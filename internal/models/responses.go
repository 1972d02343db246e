package models

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// UserSummaryRow is one per-user aggregate in the report summary. User is nil
// when the referenced account no longer exists; the row is still emitted so
// totals stay reconcilable.
type UserSummaryRow struct {
	User         *User   `json:"user"`
	TotalMinutes int64   `json:"totalMinutes"`
	TotalHours   float64 `json:"totalHours"`
	EntryCount   int64   `json:"entryCount"`
}

// ProjectSummaryRow is one per-project aggregate in the report summary.
type ProjectSummaryRow struct {
	Project      *Project `json:"project"`
	TotalMinutes int64    `json:"totalMinutes"`
	TotalHours   float64  `json:"totalHours"`
	EntryCount   int64    `json:"entryCount"`
}

// SummaryResponse is the report payload for GET /api/reports/summary.
type SummaryResponse struct {
	UserSummary    []UserSummaryRow    `json:"userSummary"`
	ProjectSummary []ProjectSummaryRow `json:"projectSummary"`
}
