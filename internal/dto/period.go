package dto

import (
	"time"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
)

// CreatePeriodRequest defines the data needed to create a time period.
type CreatePeriodRequest struct {
	Label     string    `json:"label" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
	ParentID  *string   `json:"parentID"` // nil => top of calendar
	Depth     int       `json:"depth" binding:"min=0"`
}

// UpdatePeriodRequest defines the data allowed for updating a period.
type UpdatePeriodRequest struct {
	Label     *string    `json:"label"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// PeriodResponse defines the data returned for a time period.
type PeriodResponse struct {
	PeriodID  string    `json:"periodID"`
	Label     string    `json:"label"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	ParentID  *string   `json:"parentID"`
	Depth     int       `json:"depth"`
}

// ToPeriodResponse converts a domain.TimePeriod to PeriodResponse DTO.
func ToPeriodResponse(p *domain.TimePeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID:  p.PeriodID,
		Label:     p.Label,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		ParentID:  p.ParentID,
		Depth:     p.Depth,
	}
}

// ToPeriodResponses converts a slice of domain periods to DTOs.
func ToPeriodResponses(periods []domain.TimePeriod) []PeriodResponse {
	res := make([]PeriodResponse, len(periods))
	for i := range periods {
		res[i] = ToPeriodResponse(&periods[i])
	}
	return res
}
