package services

import (
	"context"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
	"github.com/shopspring/decimal"
)

// SpreadSvcFacade is the disaggregation engine: it pushes a value assigned
// at an internal node down to every leaf-reachable descendant.
type SpreadSvcFacade interface {
	// Spread apportions newValue across the node's descendants per the
	// chosen mode and persists the result in one transaction. It returns
	// the IDs of every descendant node it wrote, in traversal order.
	// A node without children is a no-op returning no IDs.
	Spread(ctx context.Context, tree *domain.HierarchyTree, mode domain.SpreadMode, nodeID, measureID, periodID, versionID string, newValue decimal.Decimal, weightMeasureID *string, editorID string) ([]string, error)
}

// RollupSvcFacade is the aggregation engine: two independent upward sweeps,
// one along the node hierarchy and one along the time calendar. They are
// never combined into a single traversal.
type RollupSvcFacade interface {
	// AggregateUp recomputes ancestor values bottom-up through the node
	// hierarchy per the measure's aggregation policy. It writes only the
	// ancestor chain, never siblings or descendants.
	AggregateUp(ctx context.Context, tree *domain.HierarchyTree, nodeID string, measure domain.Measure, periodID, versionID, editorID string) error

	// AggregateTimeUp recomputes ancestor period values bottom-up through
	// the calendar. WEIGHTED_AVG deliberately degrades to AVG here: weights
	// are defined per node cohort, not per time cohort.
	AggregateTimeUp(ctx context.Context, periods *domain.PeriodTree, nodeID string, measure domain.Measure, periodID, versionID, editorID string) error
}

// FormulaSvcFacade is the formula engine: it evaluates every derived
// measure at a node/period/version against the sibling measures.
type FormulaSvcFacade interface {
	// Recalculate evaluates each formula measure and persists the results
	// in one transaction. Absent and null inputs coerce to zero; any
	// evaluation failure stores null for that measure and never aborts the
	// batch.
	Recalculate(ctx context.Context, measures *domain.MeasureSet, nodeID, periodID, versionID, editorID string) error
}

// PlanningSvcFacade is the cell edit orchestrator consumed by the HTTP
// layer: one user edit in, one freshly re-read grid snapshot out.
type PlanningSvcFacade interface {
	// EditCell runs the Save -> Classify -> Disaggregate -> Recalc ->
	// AggregateNode -> AggregateTime -> Reload pipeline for a single edit.
	// Each stage commits independently; the response is always a fresh
	// read of persisted state.
	EditCell(ctx context.Context, req dto.EditCellRequest, editorID string) (*dto.GridResponse, error)

	// GetGrid reads the grid payload for a hierarchy scope and version.
	// An empty rootNodeID selects the whole forest.
	GetGrid(ctx context.Context, rootNodeID, versionID string) (*dto.GridResponse, error)
}
