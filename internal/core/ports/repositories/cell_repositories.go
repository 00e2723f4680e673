package repositories

import (
	"context"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CellValue is one read result from the sparse cell store. Present
// distinguishes a stored row (possibly with a null value) from no row at
// all; absence and stored null both exist and are not the same thing.
type CellValue struct {
	Value   *decimal.Decimal
	Present bool
}

// CellReader defines read operations against the sparse cell store.
type CellReader interface {
	// GetValue reads one cell. Present=false means no row exists.
	GetValue(ctx context.Context, nodeID, measureID, periodID, versionID string) (CellValue, error)

	// GetValues batch-reads the cross product of the given ids for one
	// version. The result map is keyed by domain.CellKey and only contains
	// entries for rows that exist.
	GetValues(ctx context.Context, nodeIDs, measureIDs, periodIDs []string, versionID string) (map[string]*decimal.Decimal, error)
}

// CellWriter defines write operations against the sparse cell store.
type CellWriter interface {
	// SaveCells upserts the given cells within a single database
	// transaction. A nil Value persists as SQL NULL, never as zero. Engines
	// rely on this being atomic: one engine sweep is one SaveCells call.
	SaveCells(ctx context.Context, cells []domain.Cell) error
}

// CellRepositoryFacade combines all cell store interfaces.
type CellRepositoryFacade interface {
	CellReader
	CellWriter
}
