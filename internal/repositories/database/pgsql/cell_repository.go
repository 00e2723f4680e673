package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	portsrepo "github.com/PlanSmiths/merch_planning_app/internal/core/ports/repositories"
	"github.com/PlanSmiths/merch_planning_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCellRepository struct {
	BaseRepository
}

// newPgxCellRepository creates a new repository for the sparse cell store.
func newPgxCellRepository(pool *pgxpool.Pool) portsrepo.CellRepositoryFacade {
	return &PgxCellRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CellRepositoryFacade = (*PgxCellRepository)(nil)

// GetValue reads one cell. Present=false means no row exists, which is not
// the same as a stored NULL.
func (r *PgxCellRepository) GetValue(ctx context.Context, nodeID, measureID, periodID, versionID string) (portsrepo.CellValue, error) {
	query := `
		SELECT value
		FROM cells
		WHERE node_id = $1 AND measure_id = $2 AND period_id = $3 AND version_id = $4;
	`
	var value *decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, nodeID, measureID, periodID, versionID).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return portsrepo.CellValue{}, nil
		}
		return portsrepo.CellValue{}, fmt.Errorf("failed to read cell %s: %w", domain.CellKey(nodeID, measureID, periodID), err)
	}
	return portsrepo.CellValue{Value: value, Present: true}, nil
}

// GetValues batch-reads the cross product of the given ids for one version.
// One round trip regardless of how many cells the caller needs; the result
// map only holds rows that exist.
func (r *PgxCellRepository) GetValues(ctx context.Context, nodeIDs, measureIDs, periodIDs []string, versionID string) (map[string]*decimal.Decimal, error) {
	result := make(map[string]*decimal.Decimal)
	if len(nodeIDs) == 0 || len(measureIDs) == 0 || len(periodIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT node_id, measure_id, period_id, value
		FROM cells
		WHERE node_id = ANY($1) AND measure_id = ANY($2) AND period_id = ANY($3) AND version_id = $4;
	`
	rows, err := r.Pool.Query(ctx, query, nodeIDs, measureIDs, periodIDs, versionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cells: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var nodeID, measureID, periodID string
		var value *decimal.Decimal
		if err := rows.Scan(&nodeID, &measureID, &periodID, &value); err != nil {
			return nil, fmt.Errorf("failed to scan cell row: %w", err)
		}
		result[domain.CellKey(nodeID, measureID, periodID)] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cell rows: %w", err)
	}
	return result, nil
}

// SaveCells upserts the given cells within a single transaction, one batch
// round trip for the whole sweep. A nil Value persists as SQL NULL.
func (r *PgxCellRepository) SaveCells(ctx context.Context, cells []domain.Cell) error {
	if len(cells) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO cells (node_id, measure_id, period_id, version_id, value, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (node_id, measure_id, period_id, version_id) DO UPDATE SET
			value = EXCLUDED.value,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	batch := &pgx.Batch{}
	for _, cell := range cells {
		modelCell := mapping.ToModelCell(cell)
		batch.Queue(query,
			modelCell.NodeID,
			modelCell.MeasureID,
			modelCell.PeriodID,
			modelCell.VersionID,
			modelCell.Value,
			modelCell.CreatedAt,
			modelCell.CreatedBy,
			modelCell.LastUpdatedAt,
			modelCell.LastUpdatedBy,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for i := range cells {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to upsert cell %s: %w", cells[i].Key(), err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close cell batch: %w", err)
	}

	return r.Commit(ctx, tx)
}
