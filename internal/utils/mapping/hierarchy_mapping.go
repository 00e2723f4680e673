package mapping

import (
	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	"github.com/PlanSmiths/merch_planning_app/internal/models"
)

// ToModelHierarchyLevel converts a domain HierarchyLevel to a model HierarchyLevel
func ToModelHierarchyLevel(d domain.HierarchyLevel) models.HierarchyLevel {
	return models.HierarchyLevel{
		LevelID:     d.LevelID,
		Name:        d.Name,
		Depth:       d.Depth,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainHierarchyLevel converts a model HierarchyLevel to a domain HierarchyLevel
func ToDomainHierarchyLevel(m models.HierarchyLevel) domain.HierarchyLevel {
	return domain.HierarchyLevel{
		LevelID:     m.LevelID,
		Name:        m.Name,
		Depth:       m.Depth,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainHierarchyLevelSlice converts a slice of model levels to domain levels
func ToDomainHierarchyLevelSlice(ms []models.HierarchyLevel) []domain.HierarchyLevel {
	ds := make([]domain.HierarchyLevel, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainHierarchyLevel(m)
	}
	return ds
}

// ToModelHierarchyNode converts a domain HierarchyNode to a model HierarchyNode
func ToModelHierarchyNode(d domain.HierarchyNode) models.HierarchyNode {
	return models.HierarchyNode{
		NodeID:      d.NodeID,
		Name:        d.Name,
		LevelID:     d.LevelID,
		ParentID:    d.ParentID,
		SortOrder:   d.SortOrder,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainHierarchyNode converts a model HierarchyNode to a domain HierarchyNode
func ToDomainHierarchyNode(m models.HierarchyNode) domain.HierarchyNode {
	return domain.HierarchyNode{
		NodeID:      m.NodeID,
		Name:        m.Name,
		LevelID:     m.LevelID,
		ParentID:    m.ParentID,
		SortOrder:   m.SortOrder,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainHierarchyNodeSlice converts a slice of model nodes to domain nodes
func ToDomainHierarchyNodeSlice(ms []models.HierarchyNode) []domain.HierarchyNode {
	ds := make([]domain.HierarchyNode, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainHierarchyNode(m)
	}
	return ds
}
