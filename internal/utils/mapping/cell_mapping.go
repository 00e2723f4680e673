package mapping

import (
	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	"github.com/PlanSmiths/merch_planning_app/internal/models"
)

// ToModelCell converts a domain Cell to a model Cell
func ToModelCell(d domain.Cell) models.Cell {
	return models.Cell{
		NodeID:      d.NodeID,
		MeasureID:   d.MeasureID,
		PeriodID:    d.PeriodID,
		VersionID:   d.VersionID,
		Value:       d.Value,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCell converts a model Cell to a domain Cell
func ToDomainCell(m models.Cell) domain.Cell {
	return domain.Cell{
		NodeID:      m.NodeID,
		MeasureID:   m.MeasureID,
		PeriodID:    m.PeriodID,
		VersionID:   m.VersionID,
		Value:       m.Value,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
