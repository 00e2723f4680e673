package mapping

import (
	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	"github.com/PlanSmiths/merch_planning_app/internal/models"
)

// ToModelMeasure converts a domain Measure to a model Measure
func ToModelMeasure(d domain.Measure) models.Measure {
	return models.Measure{
		MeasureID:       d.MeasureID,
		ShortName:       d.ShortName,
		Name:            d.Name,
		DataType:        string(d.DataType),
		IsEditable:      d.IsEditable,
		Formula:         d.Formula,
		AggregationType: string(d.AggregationType),
		WeightMeasureID: d.WeightMeasureID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMeasure converts a model Measure to a domain Measure
func ToDomainMeasure(m models.Measure) domain.Measure {
	return domain.Measure{
		MeasureID:       m.MeasureID,
		ShortName:       m.ShortName,
		Name:            m.Name,
		DataType:        domain.MeasureDataType(m.DataType),
		IsEditable:      m.IsEditable,
		Formula:         m.Formula,
		AggregationType: domain.AggregationType(m.AggregationType),
		WeightMeasureID: m.WeightMeasureID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMeasureSlice converts a slice of model measures to domain measures
func ToDomainMeasureSlice(ms []models.Measure) []domain.Measure {
	ds := make([]domain.Measure, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMeasure(m)
	}
	return ds
}
