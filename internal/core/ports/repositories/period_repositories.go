package repositories

import (
	"context"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
)

// PeriodReader defines read operations for time periods.
type PeriodReader interface {
	// FindPeriodByID retrieves a specific period by its unique identifier.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.TimePeriod, error)

	// ListPeriods retrieves the full calendar forest ordered by start date.
	ListPeriods(ctx context.Context) ([]domain.TimePeriod, error)
}

// PeriodWriter defines write operations for time periods.
type PeriodWriter interface {
	// SavePeriod persists a new time period.
	SavePeriod(ctx context.Context, period domain.TimePeriod) error

	// UpdatePeriod updates an existing period's details.
	UpdatePeriod(ctx context.Context, period domain.TimePeriod) error

	// DeletePeriod removes a period. Cell rows cascade at the database level.
	DeletePeriod(ctx context.Context, periodID string) error
}

// PeriodRepositoryFacade combines all period repository interfaces.
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}
