package services

import (
	"context"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
)

// HierarchySvcFacade manages hierarchy levels and nodes. This is an
// administrative collaborator of the planning core: the engines only ever
// read the structure it maintains.
type HierarchySvcFacade interface {
	CreateLevel(ctx context.Context, req dto.CreateLevelRequest, creatorUserID string) (*domain.HierarchyLevel, error)
	ListLevels(ctx context.Context) ([]domain.HierarchyLevel, error)

	CreateNode(ctx context.Context, req dto.CreateNodeRequest, creatorUserID string) (*domain.HierarchyNode, error)
	GetNodeByID(ctx context.Context, nodeID string) (*domain.HierarchyNode, error)
	ListNodes(ctx context.Context) ([]domain.HierarchyNode, error)
	UpdateNode(ctx context.Context, nodeID string, req dto.UpdateNodeRequest, updaterUserID string) (*domain.HierarchyNode, error)
	DeleteNode(ctx context.Context, nodeID string) error
}
