package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PlanSmiths/merch_planning_app/internal/apperrors"
	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	portsrepo "github.com/PlanSmiths/merch_planning_app/internal/core/ports/repositories"
	portssvc "github.com/PlanSmiths/merch_planning_app/internal/core/ports/services"
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
)

var (
	ErrParentNotFound  = errors.New("parent node not found")
	ErrLevelNotFound   = errors.New("hierarchy level not found")
	ErrLevelDepth      = errors.New("node level must be the immediate child level of its parent's level")
	ErrNodeHasChildren = errors.New("node still has children")
)

// hierarchyService maintains the hierarchy catalog. The structural sanity
// checks (parent exists, level nesting) live here; the planning engines
// only ever read the structure.
type hierarchyService struct {
	BaseService
	hierarchyRepo portsrepo.HierarchyRepositoryFacade
}

// NewHierarchyService creates a new hierarchy administration service.
func NewHierarchyService(hierarchyRepo portsrepo.HierarchyRepositoryFacade) portssvc.HierarchySvcFacade {
	return &hierarchyService{hierarchyRepo: hierarchyRepo}
}

var _ portssvc.HierarchySvcFacade = (*hierarchyService)(nil)

// CreateLevel persists a new hierarchy level.
func (s *hierarchyService) CreateLevel(ctx context.Context, req dto.CreateLevelRequest, creatorUserID string) (*domain.HierarchyLevel, error) {
	now := time.Now().UTC()
	level := domain.HierarchyLevel{
		LevelID: uuid.NewString(),
		Name:    req.Name,
		Depth:   req.Depth,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.hierarchyRepo.SaveLevel(ctx, level); err != nil {
		s.LogError(ctx, err, "Failed to save hierarchy level", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save hierarchy level: %w", err)
	}
	s.LogInfo(ctx, "Hierarchy level created", slog.String("level_id", level.LevelID), slog.String("name", level.Name))
	return &level, nil
}

// ListLevels returns every hierarchy level ordered by depth.
func (s *hierarchyService) ListLevels(ctx context.Context) ([]domain.HierarchyLevel, error) {
	levels, err := s.hierarchyRepo.ListLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hierarchy levels: %w", err)
	}
	return levels, nil
}

// CreateNode persists a new hierarchy node after validating its parent and
// level references.
func (s *hierarchyService) CreateNode(ctx context.Context, req dto.CreateNodeRequest, creatorUserID string) (*domain.HierarchyNode, error) {
	levels, err := s.hierarchyRepo.ListLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load levels: %w", err)
	}
	levelByID := make(map[string]domain.HierarchyLevel, len(levels))
	for _, l := range levels {
		levelByID[l.LevelID] = l
	}
	level, ok := levelByID[req.LevelID]
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrLevelNotFound, req.LevelID)
	}

	if req.ParentID != nil {
		parent, err := s.hierarchyRepo.FindNodeByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrParentNotFound, *req.ParentID)
			}
			return nil, fmt.Errorf("failed to load parent node: %w", err)
		}
		if parentLevel, ok := levelByID[parent.LevelID]; ok && level.Depth != parentLevel.Depth+1 {
			return nil, fmt.Errorf("%w: %w: parent depth %d, node depth %d", apperrors.ErrValidation, ErrLevelDepth, parentLevel.Depth, level.Depth)
		}
	}

	now := time.Now().UTC()
	node := domain.HierarchyNode{
		NodeID:    uuid.NewString(),
		Name:      req.Name,
		LevelID:   req.LevelID,
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.hierarchyRepo.SaveNode(ctx, node); err != nil {
		s.LogError(ctx, err, "Failed to save hierarchy node", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save hierarchy node: %w", err)
	}
	s.LogInfo(ctx, "Hierarchy node created", slog.String("node_id", node.NodeID), slog.String("name", node.Name))
	return &node, nil
}

// GetNodeByID retrieves a specific node.
func (s *hierarchyService) GetNodeByID(ctx context.Context, nodeID string) (*domain.HierarchyNode, error) {
	node, err := s.hierarchyRepo.FindNodeByID(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find node %s: %w", nodeID, err)
	}
	return node, nil
}

// ListNodes returns the full node forest in sort order.
func (s *hierarchyService) ListNodes(ctx context.Context) ([]domain.HierarchyNode, error) {
	nodes, err := s.hierarchyRepo.ListNodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	return nodes, nil
}

// UpdateNode applies a partial update to a node's name or sort order.
// Moving a node (changing parent/level) is deliberately not supported: it
// would silently invalidate every rolled-up ancestor value.
func (s *hierarchyService) UpdateNode(ctx context.Context, nodeID string, req dto.UpdateNodeRequest, updaterUserID string) (*domain.HierarchyNode, error) {
	node, err := s.hierarchyRepo.FindNodeByID(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find node %s: %w", nodeID, err)
	}

	updated := false
	if req.Name != nil {
		node.Name = *req.Name
		updated = true
	}
	if req.SortOrder != nil {
		node.SortOrder = *req.SortOrder
		updated = true
	}
	if !updated {
		return node, nil
	}

	node.LastUpdatedAt = time.Now().UTC()
	node.LastUpdatedBy = updaterUserID
	if err := s.hierarchyRepo.UpdateNode(ctx, *node); err != nil {
		s.LogError(ctx, err, "Failed to update hierarchy node", slog.String("node_id", nodeID))
		return nil, fmt.Errorf("failed to update node: %w", err)
	}
	s.LogInfo(ctx, "Hierarchy node updated", slog.String("node_id", nodeID))
	return node, nil
}

// DeleteNode removes a leaf node; its cells cascade at the database level.
// Internal nodes must have their children removed first.
func (s *hierarchyService) DeleteNode(ctx context.Context, nodeID string) error {
	nodes, err := s.hierarchyRepo.ListNodes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list nodes: %w", err)
	}
	tree := domain.NewHierarchyTree(nodes)
	if _, ok := tree.Node(nodeID); !ok {
		return fmt.Errorf("%w: node %s", apperrors.ErrNotFound, nodeID)
	}
	if tree.HasChildren(nodeID) {
		return fmt.Errorf("%w: %w: %s", apperrors.ErrConflict, ErrNodeHasChildren, nodeID)
	}
	if err := s.hierarchyRepo.DeleteNode(ctx, nodeID); err != nil {
		s.LogError(ctx, err, "Failed to delete hierarchy node", slog.String("node_id", nodeID))
		return fmt.Errorf("failed to delete node: %w", err)
	}
	s.LogInfo(ctx, "Hierarchy node deleted", slog.String("node_id", nodeID))
	return nil
}
