package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PlanSmiths/merch_planning_app/internal/apperrors"
	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	portsrepo "github.com/PlanSmiths/merch_planning_app/internal/core/ports/repositories"
	"github.com/PlanSmiths/merch_planning_app/internal/models"
	"github.com/PlanSmiths/merch_planning_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVersionRepository struct {
	BaseRepository
}

// newPgxVersionRepository creates a new repository for plan versions.
func newPgxVersionRepository(pool *pgxpool.Pool) portsrepo.VersionRepositoryFacade {
	return &PgxVersionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.VersionRepositoryFacade = (*PgxVersionRepository)(nil)

// SaveVersion inserts a new plan version.
func (r *PgxVersionRepository) SaveVersion(ctx context.Context, version domain.Version) error {
	modelVersion := mapping.ToModelVersion(version)

	query := `
		INSERT INTO versions (version_id, name, is_default, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelVersion.VersionID,
		modelVersion.Name,
		modelVersion.IsDefault,
		modelVersion.CreatedAt,
		modelVersion.CreatedBy,
		modelVersion.LastUpdatedAt,
		modelVersion.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save version %s: %w", modelVersion.VersionID, err)
	}
	return nil
}

// FindVersionByID retrieves a version by its identifier.
func (r *PgxVersionRepository) FindVersionByID(ctx context.Context, versionID string) (*domain.Version, error) {
	query := `
		SELECT version_id, name, is_default, created_at, created_by, last_updated_at, last_updated_by
		FROM versions
		WHERE version_id = $1;
	`
	var modelVersion models.Version
	err := r.Pool.QueryRow(ctx, query, versionID).Scan(
		&modelVersion.VersionID,
		&modelVersion.Name,
		&modelVersion.IsDefault,
		&modelVersion.CreatedAt,
		&modelVersion.CreatedBy,
		&modelVersion.LastUpdatedAt,
		&modelVersion.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find version %s: %w", versionID, err)
	}

	domainVersion := mapping.ToDomainVersion(modelVersion)
	return &domainVersion, nil
}

// ListVersions retrieves every version ordered by creation time.
func (r *PgxVersionRepository) ListVersions(ctx context.Context) ([]domain.Version, error) {
	query := `
		SELECT version_id, name, is_default, created_at, created_by, last_updated_at, last_updated_by
		FROM versions
		ORDER BY created_at, version_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query versions: %w", err)
	}
	defer rows.Close()

	modelVersions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Version, error) {
		var version models.Version
		err := row.Scan(
			&version.VersionID,
			&version.Name,
			&version.IsDefault,
			&version.CreatedAt,
			&version.CreatedBy,
			&version.LastUpdatedAt,
			&version.LastUpdatedBy,
		)
		return version, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan versions: %w", err)
	}

	return mapping.ToDomainVersionSlice(modelVersions), nil
}

// SetDefaultVersion clears the default flag everywhere and sets it on the
// given version, in one transaction so at most one row ever carries it.
func (r *PgxVersionRepository) SetDefaultVersion(ctx context.Context, versionID string, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `
		UPDATE versions
		SET is_default = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE is_default = TRUE;
	`, now, userID); err != nil {
		return fmt.Errorf("failed to clear default version flag: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE versions
		SET is_default = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE version_id = $1;
	`, versionID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to set default version %s: %w", versionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
