package models

import "github.com/shopspring/decimal"

// Cell represents one stored value of the sparse planning grid. Value is
// nullable: a stored NULL is distinct from the row being absent.
type Cell struct {
	NodeID    string           `db:"node_id"`
	MeasureID string           `db:"measure_id"`
	PeriodID  string           `db:"period_id"`
	VersionID string           `db:"version_id"`
	Value     *decimal.Decimal `db:"value"`
	AuditFields
}
