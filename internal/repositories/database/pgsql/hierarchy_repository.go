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

type PgxHierarchyRepository struct {
	BaseRepository
}

// newPgxHierarchyRepository creates a new repository for hierarchy data.
func newPgxHierarchyRepository(pool *pgxpool.Pool) portsrepo.HierarchyRepositoryFacade {
	return &PgxHierarchyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.HierarchyRepositoryFacade = (*PgxHierarchyRepository)(nil)

// SaveLevel inserts a new hierarchy level.
func (r *PgxHierarchyRepository) SaveLevel(ctx context.Context, level domain.HierarchyLevel) error {
	modelLevel := mapping.ToModelHierarchyLevel(level)

	query := `
		INSERT INTO hierarchy_levels (level_id, name, depth, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelLevel.LevelID,
		modelLevel.Name,
		modelLevel.Depth,
		modelLevel.CreatedAt,
		modelLevel.CreatedBy,
		modelLevel.LastUpdatedAt,
		modelLevel.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save hierarchy level %s: %w", modelLevel.LevelID, err)
	}
	return nil
}

// ListLevels retrieves every hierarchy level ordered by depth.
func (r *PgxHierarchyRepository) ListLevels(ctx context.Context) ([]domain.HierarchyLevel, error) {
	query := `
		SELECT level_id, name, depth, created_at, created_by, last_updated_at, last_updated_by
		FROM hierarchy_levels
		ORDER BY depth;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query hierarchy levels: %w", err)
	}
	defer rows.Close()

	modelLevels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.HierarchyLevel, error) {
		var level models.HierarchyLevel
		err := row.Scan(
			&level.LevelID,
			&level.Name,
			&level.Depth,
			&level.CreatedAt,
			&level.CreatedBy,
			&level.LastUpdatedAt,
			&level.LastUpdatedBy,
		)
		return level, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan hierarchy levels: %w", err)
	}

	return mapping.ToDomainHierarchyLevelSlice(modelLevels), nil
}

// SaveNode inserts a new hierarchy node.
func (r *PgxHierarchyRepository) SaveNode(ctx context.Context, node domain.HierarchyNode) error {
	modelNode := mapping.ToModelHierarchyNode(node)

	query := `
		INSERT INTO hierarchy_nodes (node_id, name, level_id, parent_id, sort_order, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelNode.NodeID,
		modelNode.Name,
		modelNode.LevelID,
		modelNode.ParentID,
		modelNode.SortOrder,
		modelNode.CreatedAt,
		modelNode.CreatedBy,
		modelNode.LastUpdatedAt,
		modelNode.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save hierarchy node %s: %w", modelNode.NodeID, err)
	}
	return nil
}

// FindNodeByID retrieves a node by its identifier.
func (r *PgxHierarchyRepository) FindNodeByID(ctx context.Context, nodeID string) (*domain.HierarchyNode, error) {
	query := `
		SELECT node_id, name, level_id, parent_id, sort_order, created_at, created_by, last_updated_at, last_updated_by
		FROM hierarchy_nodes
		WHERE node_id = $1;
	`
	var modelNode models.HierarchyNode
	err := r.Pool.QueryRow(ctx, query, nodeID).Scan(
		&modelNode.NodeID,
		&modelNode.Name,
		&modelNode.LevelID,
		&modelNode.ParentID,
		&modelNode.SortOrder,
		&modelNode.CreatedAt,
		&modelNode.CreatedBy,
		&modelNode.LastUpdatedAt,
		&modelNode.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find hierarchy node %s: %w", nodeID, err)
	}

	domainNode := mapping.ToDomainHierarchyNode(modelNode)
	return &domainNode, nil
}

// ListNodes retrieves the full node forest ordered by sort order.
func (r *PgxHierarchyRepository) ListNodes(ctx context.Context) ([]domain.HierarchyNode, error) {
	query := `
		SELECT node_id, name, level_id, parent_id, sort_order, created_at, created_by, last_updated_at, last_updated_by
		FROM hierarchy_nodes
		ORDER BY sort_order, node_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query hierarchy nodes: %w", err)
	}
	defer rows.Close()

	modelNodes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.HierarchyNode, error) {
		var node models.HierarchyNode
		err := row.Scan(
			&node.NodeID,
			&node.Name,
			&node.LevelID,
			&node.ParentID,
			&node.SortOrder,
			&node.CreatedAt,
			&node.CreatedBy,
			&node.LastUpdatedAt,
			&node.LastUpdatedBy,
		)
		return node, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan hierarchy nodes: %w", err)
	}

	return mapping.ToDomainHierarchyNodeSlice(modelNodes), nil
}

// UpdateNode updates an existing node's mutable fields.
func (r *PgxHierarchyRepository) UpdateNode(ctx context.Context, node domain.HierarchyNode) error {
	modelNode := mapping.ToModelHierarchyNode(node)

	query := `
		UPDATE hierarchy_nodes
		SET name = $2, sort_order = $3, last_updated_at = $4, last_updated_by = $5
		WHERE node_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelNode.NodeID,
		modelNode.Name,
		modelNode.SortOrder,
		modelNode.LastUpdatedAt,
		modelNode.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update hierarchy node %s: %w", modelNode.NodeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteNode removes a node. Cell rows cascade via the schema.
func (r *PgxHierarchyRepository) DeleteNode(ctx context.Context, nodeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM hierarchy_nodes WHERE node_id = $1;`, nodeID)
	if err != nil {
		return fmt.Errorf("failed to delete hierarchy node %s: %w", nodeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
