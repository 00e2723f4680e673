package repositories

import (
	"context"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
)

// HierarchyReader defines read operations for hierarchy levels and nodes.
type HierarchyReader interface {
	// ListLevels retrieves every hierarchy level ordered by depth.
	ListLevels(ctx context.Context) ([]domain.HierarchyLevel, error)

	// FindNodeByID retrieves a specific node by its unique identifier.
	FindNodeByID(ctx context.Context, nodeID string) (*domain.HierarchyNode, error)

	// ListNodes retrieves the full node forest, ordered by sort order.
	// Catalogs are small and read-mostly; snapshots are built from this.
	ListNodes(ctx context.Context) ([]domain.HierarchyNode, error)
}

// HierarchyWriter defines write operations for hierarchy levels and nodes.
type HierarchyWriter interface {
	// SaveLevel persists a new hierarchy level.
	SaveLevel(ctx context.Context, level domain.HierarchyLevel) error

	// SaveNode persists a new hierarchy node.
	SaveNode(ctx context.Context, node domain.HierarchyNode) error

	// UpdateNode updates an existing node's details.
	UpdateNode(ctx context.Context, node domain.HierarchyNode) error

	// DeleteNode removes a node. Cell rows cascade at the database level.
	DeleteNode(ctx context.Context, nodeID string) error
}

// HierarchyRepositoryFacade combines all hierarchy repository interfaces.
type HierarchyRepositoryFacade interface {
	HierarchyReader
	HierarchyWriter
}
