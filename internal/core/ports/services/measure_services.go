package services

import (
	"context"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
)

// MeasureSvcFacade manages the measure catalog.
type MeasureSvcFacade interface {
	CreateMeasure(ctx context.Context, req dto.CreateMeasureRequest, creatorUserID string) (*domain.Measure, error)
	GetMeasureByID(ctx context.Context, measureID string) (*domain.Measure, error)
	ListMeasures(ctx context.Context) ([]domain.Measure, error)
	UpdateMeasure(ctx context.Context, measureID string, req dto.UpdateMeasureRequest, updaterUserID string) (*domain.Measure, error)
	DeleteMeasure(ctx context.Context, measureID string) error
}
