package mapping

import (
	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	"github.com/PlanSmiths/merch_planning_app/internal/models"
)

// ToModelTimePeriod converts a domain TimePeriod to a model TimePeriod
func ToModelTimePeriod(d domain.TimePeriod) models.TimePeriod {
	return models.TimePeriod{
		PeriodID:    d.PeriodID,
		Label:       d.Label,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		ParentID:    d.ParentID,
		Depth:       d.Depth,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTimePeriod converts a model TimePeriod to a domain TimePeriod
func ToDomainTimePeriod(m models.TimePeriod) domain.TimePeriod {
	return domain.TimePeriod{
		PeriodID:    m.PeriodID,
		Label:       m.Label,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		ParentID:    m.ParentID,
		Depth:       m.Depth,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTimePeriodSlice converts a slice of model periods to domain periods
func ToDomainTimePeriodSlice(ms []models.TimePeriod) []domain.TimePeriod {
	ds := make([]domain.TimePeriod, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTimePeriod(m)
	}
	return ds
}
