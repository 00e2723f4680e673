package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SpreadMode selects the apportionment policy for one disaggregation call.
// It is a per-edit user choice, not a property of the measure.
type SpreadMode string

const (
	SpreadProportional SpreadMode = "PROPORTIONAL"
	SpreadEven         SpreadMode = "EVEN"
	SpreadWeighted     SpreadMode = "WEIGHTED"
)

// Cell is one fact of the sparse planning cube. A missing row means "no
// value"; a stored nil Value is a persisted null and must never be read
// back as zero.
type Cell struct {
	NodeID    string
	MeasureID string
	PeriodID  string
	VersionID string
	Value     *decimal.Decimal
	AuditFields
}

// CellKey builds the flat "{node}:{measure}:{period}" key used by batch
// reads and by the grid payload. The version is carried separately since a
// batch always targets a single version.
func CellKey(nodeID, measureID, periodID string) string {
	return fmt.Sprintf("%s:%s:%s", nodeID, measureID, periodID)
}

// Key returns the cell's flat key within its version.
func (c Cell) Key() string {
	return CellKey(c.NodeID, c.MeasureID, c.PeriodID)
}
