package dto

import (
	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EditCellRequest is one planner edit to a single grid cell. SpreadMode
// defaults to PROPORTIONAL when omitted; WeightMeasureID is only consulted
// for WEIGHTED spreads and falls back to the measure's configured weight
// measure.
type EditCellRequest struct {
	NodeID          string            `json:"nodeID" binding:"required"`
	MeasureID       string            `json:"measureID" binding:"required"`
	PeriodID        string            `json:"periodID" binding:"required"`
	VersionID       string            `json:"versionID" binding:"required"`
	Value           decimal.Decimal   `json:"value" binding:"required"`
	SpreadMode      domain.SpreadMode `json:"spreadMode" binding:"omitempty,spreadmode"`
	WeightMeasureID *string           `json:"weightMeasureID"`
}

// GridParams defines query parameters for reading the grid.
type GridParams struct {
	RootNodeID string `form:"rootNodeID"`
	VersionID  string `form:"versionID" binding:"required"`
}

// GridResponse is the full grid payload for a scope/version: the hierarchy
// subtree, the calendar, the measure catalog, and a flat cell mapping keyed
// "{nodeID}:{measureID}:{periodID}". Every visible node x measure x leaf
// period combination is present; absent cells map to null.
type GridResponse struct {
	VersionID string                      `json:"versionID"`
	Nodes     []NodeResponse              `json:"nodes"`
	Periods   []PeriodResponse            `json:"periods"`
	Measures  []MeasureResponse           `json:"measures"`
	Cells     map[string]*decimal.Decimal `json:"cells"`
}
