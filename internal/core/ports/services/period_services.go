package services

import (
	"context"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
)

// PeriodSvcFacade manages the planning calendar. Calendar auto-generation
// is deliberately out of scope; periods are maintained explicitly.
type PeriodSvcFacade interface {
	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, creatorUserID string) (*domain.TimePeriod, error)
	GetPeriodByID(ctx context.Context, periodID string) (*domain.TimePeriod, error)
	ListPeriods(ctx context.Context) ([]domain.TimePeriod, error)
	UpdatePeriod(ctx context.Context, periodID string, req dto.UpdatePeriodRequest, updaterUserID string) (*domain.TimePeriod, error)
	DeletePeriod(ctx context.Context, periodID string) error
}
