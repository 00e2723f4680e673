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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMeasureRepository struct {
	BaseRepository
}

// newPgxMeasureRepository creates a new repository for the measure catalog.
func newPgxMeasureRepository(pool *pgxpool.Pool) portsrepo.MeasureRepositoryFacade {
	return &PgxMeasureRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MeasureRepositoryFacade = (*PgxMeasureRepository)(nil)

// SaveMeasure inserts a new measure. Short names are unique; a collision
// surfaces as ErrDuplicate.
func (r *PgxMeasureRepository) SaveMeasure(ctx context.Context, measure domain.Measure) error {
	modelMeasure := mapping.ToModelMeasure(measure)

	query := `
		INSERT INTO measures (measure_id, short_name, name, data_type, is_editable, formula, aggregation_type, weight_measure_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelMeasure.MeasureID,
		modelMeasure.ShortName,
		modelMeasure.Name,
		modelMeasure.DataType,
		modelMeasure.IsEditable,
		modelMeasure.Formula,
		modelMeasure.AggregationType,
		modelMeasure.WeightMeasureID,
		modelMeasure.CreatedAt,
		modelMeasure.CreatedBy,
		modelMeasure.LastUpdatedAt,
		modelMeasure.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: measure short name %s", apperrors.ErrDuplicate, modelMeasure.ShortName)
		}
		return fmt.Errorf("failed to save measure %s: %w", modelMeasure.MeasureID, err)
	}
	return nil
}

// FindMeasureByID retrieves a measure by its identifier.
func (r *PgxMeasureRepository) FindMeasureByID(ctx context.Context, measureID string) (*domain.Measure, error) {
	query := `
		SELECT measure_id, short_name, name, data_type, is_editable, formula, aggregation_type, weight_measure_id, created_at, created_by, last_updated_at, last_updated_by
		FROM measures
		WHERE measure_id = $1;
	`
	var modelMeasure models.Measure
	err := r.Pool.QueryRow(ctx, query, measureID).Scan(
		&modelMeasure.MeasureID,
		&modelMeasure.ShortName,
		&modelMeasure.Name,
		&modelMeasure.DataType,
		&modelMeasure.IsEditable,
		&modelMeasure.Formula,
		&modelMeasure.AggregationType,
		&modelMeasure.WeightMeasureID,
		&modelMeasure.CreatedAt,
		&modelMeasure.CreatedBy,
		&modelMeasure.LastUpdatedAt,
		&modelMeasure.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find measure %s: %w", measureID, err)
	}

	domainMeasure := mapping.ToDomainMeasure(modelMeasure)
	return &domainMeasure, nil
}

// ListMeasures retrieves the whole catalog in short name order.
func (r *PgxMeasureRepository) ListMeasures(ctx context.Context) ([]domain.Measure, error) {
	query := `
		SELECT measure_id, short_name, name, data_type, is_editable, formula, aggregation_type, weight_measure_id, created_at, created_by, last_updated_at, last_updated_by
		FROM measures
		ORDER BY short_name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query measures: %w", err)
	}
	defer rows.Close()

	modelMeasures, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Measure, error) {
		var measure models.Measure
		err := row.Scan(
			&measure.MeasureID,
			&measure.ShortName,
			&measure.Name,
			&measure.DataType,
			&measure.IsEditable,
			&measure.Formula,
			&measure.AggregationType,
			&measure.WeightMeasureID,
			&measure.CreatedAt,
			&measure.CreatedBy,
			&measure.LastUpdatedAt,
			&measure.LastUpdatedBy,
		)
		return measure, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan measures: %w", err)
	}

	return mapping.ToDomainMeasureSlice(modelMeasures), nil
}

// UpdateMeasure updates an existing measure's mutable fields.
func (r *PgxMeasureRepository) UpdateMeasure(ctx context.Context, measure domain.Measure) error {
	modelMeasure := mapping.ToModelMeasure(measure)

	query := `
		UPDATE measures
		SET name = $2, is_editable = $3, formula = $4, aggregation_type = $5, weight_measure_id = $6, last_updated_at = $7, last_updated_by = $8
		WHERE measure_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelMeasure.MeasureID,
		modelMeasure.Name,
		modelMeasure.IsEditable,
		modelMeasure.Formula,
		modelMeasure.AggregationType,
		modelMeasure.WeightMeasureID,
		modelMeasure.LastUpdatedAt,
		modelMeasure.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update measure %s: %w", modelMeasure.MeasureID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMeasure removes a measure. Cell rows cascade via the schema.
func (r *PgxMeasureRepository) DeleteMeasure(ctx context.Context, measureID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM measures WHERE measure_id = $1;`, measureID)
	if err != nil {
		return fmt.Errorf("failed to delete measure %s: %w", measureID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
