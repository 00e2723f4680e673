package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/PlanSmiths/merch_planning_app/internal/apperrors"
	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	portsrepo "github.com/PlanSmiths/merch_planning_app/internal/core/ports/repositories"
	"github.com/PlanSmiths/merch_planning_app/internal/models"
	"github.com/PlanSmiths/merch_planning_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for calendar data.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

// SavePeriod inserts a new time period.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.TimePeriod) error {
	modelPeriod := mapping.ToModelTimePeriod(period)

	query := `
		INSERT INTO time_periods (period_id, label, start_date, end_date, parent_id, depth, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelPeriod.PeriodID,
		modelPeriod.Label,
		modelPeriod.StartDate,
		modelPeriod.EndDate,
		modelPeriod.ParentID,
		modelPeriod.Depth,
		modelPeriod.CreatedAt,
		modelPeriod.CreatedBy,
		modelPeriod.LastUpdatedAt,
		modelPeriod.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save time period %s: %w", modelPeriod.PeriodID, err)
	}
	return nil
}

// FindPeriodByID retrieves a period by its identifier.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.TimePeriod, error) {
	query := `
		SELECT period_id, label, start_date, end_date, parent_id, depth, created_at, created_by, last_updated_at, last_updated_by
		FROM time_periods
		WHERE period_id = $1;
	`
	var modelPeriod models.TimePeriod
	err := r.Pool.QueryRow(ctx, query, periodID).Scan(
		&modelPeriod.PeriodID,
		&modelPeriod.Label,
		&modelPeriod.StartDate,
		&modelPeriod.EndDate,
		&modelPeriod.ParentID,
		&modelPeriod.Depth,
		&modelPeriod.CreatedAt,
		&modelPeriod.CreatedBy,
		&modelPeriod.LastUpdatedAt,
		&modelPeriod.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find time period %s: %w", periodID, err)
	}

	domainPeriod := mapping.ToDomainTimePeriod(modelPeriod)
	return &domainPeriod, nil
}

// ListPeriods retrieves the full calendar ordered by start date.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context) ([]domain.TimePeriod, error) {
	query := `
		SELECT period_id, label, start_date, end_date, parent_id, depth, created_at, created_by, last_updated_at, last_updated_by
		FROM time_periods
		ORDER BY start_date, period_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query time periods: %w", err)
	}
	defer rows.Close()

	modelPeriods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TimePeriod, error) {
		var period models.TimePeriod
		err := row.Scan(
			&period.PeriodID,
			&period.Label,
			&period.StartDate,
			&period.EndDate,
			&period.ParentID,
			&period.Depth,
			&period.CreatedAt,
			&period.CreatedBy,
			&period.LastUpdatedAt,
			&period.LastUpdatedBy,
		)
		return period, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan time periods: %w", err)
	}

	return mapping.ToDomainTimePeriodSlice(modelPeriods), nil
}

// UpdatePeriod updates an existing period's mutable fields.
func (r *PgxPeriodRepository) UpdatePeriod(ctx context.Context, period domain.TimePeriod) error {
	modelPeriod := mapping.ToModelTimePeriod(period)

	query := `
		UPDATE time_periods
		SET label = $2, start_date = $3, end_date = $4, last_updated_at = $5, last_updated_by = $6
		WHERE period_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelPeriod.PeriodID,
		modelPeriod.Label,
		modelPeriod.StartDate,
		modelPeriod.EndDate,
		modelPeriod.LastUpdatedAt,
		modelPeriod.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update time period %s: %w", modelPeriod.PeriodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePeriod removes a period. Cell rows cascade via the schema.
func (r *PgxPeriodRepository) DeletePeriod(ctx context.Context, periodID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM time_periods WHERE period_id = $1;`, periodID)
	if err != nil {
		return fmt.Errorf("failed to delete time period %s: %w", periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
