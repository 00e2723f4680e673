package dto

import (
	"time"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
)

// CreateVersionRequest defines the data needed to create a plan version.
type CreateVersionRequest struct {
	Name      string `json:"name" binding:"required"`
	IsDefault bool   `json:"isDefault"`
}

// VersionResponse defines the data returned for a plan version.
type VersionResponse struct {
	VersionID string    `json:"versionID"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ToVersionResponse converts a domain.Version to VersionResponse DTO.
func ToVersionResponse(v *domain.Version) VersionResponse {
	return VersionResponse{
		VersionID: v.VersionID,
		Name:      v.Name,
		IsDefault: v.IsDefault,
		CreatedAt: v.CreatedAt,
		CreatedBy: v.CreatedBy,
	}
}

// ToVersionResponses converts a slice of domain versions to DTOs.
func ToVersionResponses(versions []domain.Version) []VersionResponse {
	res := make([]VersionResponse, len(versions))
	for i := range versions {
		res[i] = ToVersionResponse(&versions[i])
	}
	return res
}
