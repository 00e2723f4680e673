package dto

import (
	"time"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
)

// CreateLevelRequest defines the data needed to create a hierarchy level.
type CreateLevelRequest struct {
	Name  string `json:"name" binding:"required"`
	Depth int    `json:"depth" binding:"min=0"`
}

// LevelResponse defines the data returned for a hierarchy level.
type LevelResponse struct {
	LevelID   string    `json:"levelID"`
	Name      string    `json:"name"`
	Depth     int       `json:"depth"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// CreateNodeRequest defines the data needed to create a hierarchy node.
type CreateNodeRequest struct {
	Name      string  `json:"name" binding:"required"`
	LevelID   string  `json:"levelID" binding:"required"`
	ParentID  *string `json:"parentID"` // nil => root node
	SortOrder int     `json:"sortOrder"`
}

// UpdateNodeRequest defines the data allowed for updating a node.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateNodeRequest struct {
	Name      *string `json:"name"`
	SortOrder *int    `json:"sortOrder"`
}

// NodeResponse defines the data returned for a hierarchy node.
type NodeResponse struct {
	NodeID        string    `json:"nodeID"`
	Name          string    `json:"name"`
	LevelID       string    `json:"levelID"`
	ParentID      *string   `json:"parentID"`
	SortOrder     int       `json:"sortOrder"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToLevelResponse converts a domain.HierarchyLevel to LevelResponse DTO.
func ToLevelResponse(l *domain.HierarchyLevel) LevelResponse {
	return LevelResponse{
		LevelID:   l.LevelID,
		Name:      l.Name,
		Depth:     l.Depth,
		CreatedAt: l.CreatedAt,
		CreatedBy: l.CreatedBy,
	}
}

// ToNodeResponse converts a domain.HierarchyNode to NodeResponse DTO.
func ToNodeResponse(n *domain.HierarchyNode) NodeResponse {
	return NodeResponse{
		NodeID:        n.NodeID,
		Name:          n.Name,
		LevelID:       n.LevelID,
		ParentID:      n.ParentID,
		SortOrder:     n.SortOrder,
		CreatedAt:     n.CreatedAt,
		CreatedBy:     n.CreatedBy,
		LastUpdatedAt: n.LastUpdatedAt,
		LastUpdatedBy: n.LastUpdatedBy,
	}
}

// ToNodeResponses converts a slice of domain nodes to DTOs.
func ToNodeResponses(nodes []domain.HierarchyNode) []NodeResponse {
	res := make([]NodeResponse, len(nodes))
	for i := range nodes {
		res[i] = ToNodeResponse(&nodes[i])
	}
	return res
}
