package mapping

import (
	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	"github.com/PlanSmiths/merch_planning_app/internal/models"
)

// ToModelVersion converts a domain Version to a model Version
func ToModelVersion(d domain.Version) models.Version {
	return models.Version{
		VersionID:   d.VersionID,
		Name:        d.Name,
		IsDefault:   d.IsDefault,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVersion converts a model Version to a domain Version
func ToDomainVersion(m models.Version) domain.Version {
	return domain.Version{
		VersionID:   m.VersionID,
		Name:        m.Name,
		IsDefault:   m.IsDefault,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVersionSlice converts a slice of model versions to domain versions
func ToDomainVersionSlice(ms []models.Version) []domain.Version {
	ds := make([]domain.Version, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVersion(m)
	}
	return ds
}
