package models

import "time"

// TimePeriod represents one node of the planning calendar.
type TimePeriod struct {
	PeriodID  string    `db:"period_id"`
	Label     string    `db:"label"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	ParentID  *string   `db:"parent_id"`
	Depth     int       `db:"depth"`
	AuditFields
}
