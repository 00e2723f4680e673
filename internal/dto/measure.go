package dto

import (
	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
)

// CreateMeasureRequest defines the data needed to create a measure.
type CreateMeasureRequest struct {
	ShortName       string                 `json:"shortName" binding:"required,alphanum"`
	Name            string                 `json:"name" binding:"required"`
	DataType        domain.MeasureDataType `json:"dataType" binding:"required,oneof=CURRENCY UNITS PERCENTAGE RATIO"`
	IsEditable      bool                   `json:"isEditable"`
	Formula         *string                `json:"formula"`
	AggregationType domain.AggregationType `json:"aggregationType" binding:"required,aggpolicy"`
	WeightMeasureID *string                `json:"weightMeasureID"`
}

// UpdateMeasureRequest defines the data allowed for updating a measure.
type UpdateMeasureRequest struct {
	Name            *string                 `json:"name"`
	IsEditable      *bool                   `json:"isEditable"`
	Formula         *string                 `json:"formula"`
	AggregationType *domain.AggregationType `json:"aggregationType" binding:"omitempty,aggpolicy"`
	WeightMeasureID *string                 `json:"weightMeasureID"`
}

// MeasureResponse defines the data returned for a measure.
type MeasureResponse struct {
	MeasureID       string                 `json:"measureID"`
	ShortName       string                 `json:"shortName"`
	Name            string                 `json:"name"`
	DataType        domain.MeasureDataType `json:"dataType"`
	IsEditable      bool                   `json:"isEditable"`
	Formula         *string                `json:"formula"`
	AggregationType domain.AggregationType `json:"aggregationType"`
	WeightMeasureID *string                `json:"weightMeasureID"`
}

// ToMeasureResponse converts a domain.Measure to MeasureResponse DTO.
func ToMeasureResponse(m *domain.Measure) MeasureResponse {
	return MeasureResponse{
		MeasureID:       m.MeasureID,
		ShortName:       m.ShortName,
		Name:            m.Name,
		DataType:        m.DataType,
		IsEditable:      m.IsEditable,
		Formula:         m.Formula,
		AggregationType: m.AggregationType,
		WeightMeasureID: m.WeightMeasureID,
	}
}

// ToMeasureResponses converts a slice of domain measures to DTOs.
func ToMeasureResponses(measures []domain.Measure) []MeasureResponse {
	res := make([]MeasureResponse, len(measures))
	for i := range measures {
		res[i] = ToMeasureResponse(&measures[i])
	}
	return res
}
