package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PlanSmiths/merch_planning_app/internal/apperrors"
	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	portsrepo "github.com/PlanSmiths/merch_planning_app/internal/core/ports/repositories"
	portssvc "github.com/PlanSmiths/merch_planning_app/internal/core/ports/services"
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
)

var (
	ErrPeriodRange       = errors.New("period end date must not precede its start date")
	ErrPeriodContainment = errors.New("child period must fall within its parent's date range")
)

// periodService maintains the planning calendar. Containment of children
// within the parent's date range is checked here, not in the engines.
type periodService struct {
	BaseService
	periodRepo portsrepo.PeriodRepositoryFacade
}

// NewPeriodService creates a new calendar administration service.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade) portssvc.PeriodSvcFacade {
	return &periodService{periodRepo: periodRepo}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// CreatePeriod persists a new time period after validating its range and
// parent containment.
func (s *periodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, creatorUserID string) (*domain.TimePeriod, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: %w: %s..%s", apperrors.ErrValidation, ErrPeriodRange, req.StartDate.Format(time.DateOnly), req.EndDate.Format(time.DateOnly))
	}

	if req.ParentID != nil {
		parent, err := s.periodRepo.FindPeriodByID(ctx, *req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent period: %w", err)
		}
		if req.StartDate.Before(parent.StartDate) || req.EndDate.After(parent.EndDate) {
			return nil, fmt.Errorf("%w: %w: parent %s", apperrors.ErrValidation, ErrPeriodContainment, parent.PeriodID)
		}
	}

	now := time.Now().UTC()
	period := domain.TimePeriod{
		PeriodID:  uuid.NewString(),
		Label:     req.Label,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		ParentID:  req.ParentID,
		Depth:     req.Depth,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		s.LogError(ctx, err, "Failed to save time period", slog.String("label", req.Label))
		return nil, fmt.Errorf("failed to save time period: %w", err)
	}
	s.LogInfo(ctx, "Time period created", slog.String("period_id", period.PeriodID), slog.String("label", period.Label))
	return &period, nil
}

// GetPeriodByID retrieves a specific period.
func (s *periodService) GetPeriodByID(ctx context.Context, periodID string) (*domain.TimePeriod, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find period %s: %w", periodID, err)
	}
	return period, nil
}

// ListPeriods returns the full calendar ordered by start date.
func (s *periodService) ListPeriods(ctx context.Context) ([]domain.TimePeriod, error) {
	periods, err := s.periodRepo.ListPeriods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	return periods, nil
}

// UpdatePeriod applies a partial update to a period.
func (s *periodService) UpdatePeriod(ctx context.Context, periodID string, req dto.UpdatePeriodRequest, updaterUserID string) (*domain.TimePeriod, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find period %s: %w", periodID, err)
	}

	updated := false
	if req.Label != nil {
		period.Label = *req.Label
		updated = true
	}
	if req.StartDate != nil {
		period.StartDate = *req.StartDate
		updated = true
	}
	if req.EndDate != nil {
		period.EndDate = *req.EndDate
		updated = true
	}
	if !updated {
		return period, nil
	}
	if period.EndDate.Before(period.StartDate) {
		return nil, fmt.Errorf("%w: %w: %s..%s", apperrors.ErrValidation, ErrPeriodRange, period.StartDate.Format(time.DateOnly), period.EndDate.Format(time.DateOnly))
	}

	period.LastUpdatedAt = time.Now().UTC()
	period.LastUpdatedBy = updaterUserID
	if err := s.periodRepo.UpdatePeriod(ctx, *period); err != nil {
		s.LogError(ctx, err, "Failed to update time period", slog.String("period_id", periodID))
		return nil, fmt.Errorf("failed to update period: %w", err)
	}
	s.LogInfo(ctx, "Time period updated", slog.String("period_id", periodID))
	return period, nil
}

// DeletePeriod removes a leaf period; its cells cascade at the database level.
func (s *periodService) DeletePeriod(ctx context.Context, periodID string) error {
	periods, err := s.periodRepo.ListPeriods(ctx)
	if err != nil {
		return fmt.Errorf("failed to list periods: %w", err)
	}
	tree := domain.NewPeriodTree(periods)
	if _, ok := tree.Period(periodID); !ok {
		return fmt.Errorf("%w: period %s", apperrors.ErrNotFound, periodID)
	}
	if len(tree.ChildrenOf(periodID)) > 0 {
		return fmt.Errorf("%w: period %s still has children", apperrors.ErrConflict, periodID)
	}
	if err := s.periodRepo.DeletePeriod(ctx, periodID); err != nil {
		s.LogError(ctx, err, "Failed to delete time period", slog.String("period_id", periodID))
		return fmt.Errorf("failed to delete period: %w", err)
	}
	s.LogInfo(ctx, "Time period deleted", slog.String("period_id", periodID))
	return nil
}
