package repositories

import (
	"context"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
)

// MeasureReader defines read operations for the measure catalog.
type MeasureReader interface {
	// FindMeasureByID retrieves a specific measure by its unique identifier.
	FindMeasureByID(ctx context.Context, measureID string) (*domain.Measure, error)

	// ListMeasures retrieves the whole catalog in catalog order.
	ListMeasures(ctx context.Context) ([]domain.Measure, error)
}

// MeasureWriter defines write operations for the measure catalog.
type MeasureWriter interface {
	// SaveMeasure persists a new measure.
	SaveMeasure(ctx context.Context, measure domain.Measure) error

	// UpdateMeasure updates an existing measure's details.
	UpdateMeasure(ctx context.Context, measure domain.Measure) error

	// DeleteMeasure removes a measure. Cell rows cascade at the database level.
	DeleteMeasure(ctx context.Context, measureID string) error
}

// MeasureRepositoryFacade combines all measure repository interfaces.
type MeasureRepositoryFacade interface {
	MeasureReader
	MeasureWriter
}
