package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/expr-lang/expr"
	"github.com/google/uuid"

	"github.com/PlanSmiths/merch_planning_app/internal/apperrors"
	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	portsrepo "github.com/PlanSmiths/merch_planning_app/internal/core/ports/repositories"
	portssvc "github.com/PlanSmiths/merch_planning_app/internal/core/ports/services"
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
)

var (
	ErrWeightMeasureNotFound = errors.New("weight measure not found")
	ErrWeightMeasureRequired = errors.New("WEIGHTED_AVG measures need a weight measure")
)

// measureService maintains the measure catalog. A measure with a formula is
// forced non-editable on write so the derived/editable distinction can never
// drift; the engines trust the catalog on this.
type measureService struct {
	BaseService
	measureRepo portsrepo.MeasureRepositoryFacade
}

// NewMeasureService creates a new measure catalog service.
func NewMeasureService(measureRepo portsrepo.MeasureRepositoryFacade) portssvc.MeasureSvcFacade {
	return &measureService{measureRepo: measureRepo}
}

var _ portssvc.MeasureSvcFacade = (*measureService)(nil)

// CreateMeasure persists a new measure after validating its formula syntax
// and weight reference.
func (s *measureService) CreateMeasure(ctx context.Context, req dto.CreateMeasureRequest, creatorUserID string) (*domain.Measure, error) {
	if req.Formula != nil {
		if _, err := expr.Compile(*req.Formula); err != nil {
			return nil, fmt.Errorf("%w: formula does not parse: %v", apperrors.ErrValidation, err)
		}
	}
	if err := s.checkWeightRef(ctx, req.AggregationType, req.WeightMeasureID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	measure := domain.Measure{
		MeasureID:       uuid.NewString(),
		ShortName:       req.ShortName,
		Name:            req.Name,
		DataType:        req.DataType,
		IsEditable:      req.IsEditable,
		Formula:         req.Formula,
		AggregationType: req.AggregationType,
		WeightMeasureID: req.WeightMeasureID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	// Derived values are engine-owned; a formula measure cannot also accept
	// direct edits.
	if measure.HasFormula() {
		measure.IsEditable = false
	}

	if err := s.measureRepo.SaveMeasure(ctx, measure); err != nil {
		s.LogError(ctx, err, "Failed to save measure", slog.String("short_name", req.ShortName))
		return nil, fmt.Errorf("failed to save measure: %w", err)
	}
	s.LogInfo(ctx, "Measure created", slog.String("measure_id", measure.MeasureID), slog.String("short_name", measure.ShortName))
	return &measure, nil
}

// GetMeasureByID retrieves a specific measure.
func (s *measureService) GetMeasureByID(ctx context.Context, measureID string) (*domain.Measure, error) {
	measure, err := s.measureRepo.FindMeasureByID(ctx, measureID)
	if err != nil {
		return nil, fmt.Errorf("failed to find measure %s: %w", measureID, err)
	}
	return measure, nil
}

// ListMeasures returns the whole catalog in catalog order.
func (s *measureService) ListMeasures(ctx context.Context) ([]domain.Measure, error) {
	measures, err := s.measureRepo.ListMeasures(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list measures: %w", err)
	}
	return measures, nil
}

// UpdateMeasure applies a partial update. Short names are immutable: formulas
// of other measures reference them by name.
func (s *measureService) UpdateMeasure(ctx context.Context, measureID string, req dto.UpdateMeasureRequest, updaterUserID string) (*domain.Measure, error) {
	measure, err := s.measureRepo.FindMeasureByID(ctx, measureID)
	if err != nil {
		return nil, fmt.Errorf("failed to find measure %s: %w", measureID, err)
	}

	updated := false
	if req.Name != nil {
		measure.Name = *req.Name
		updated = true
	}
	if req.IsEditable != nil {
		measure.IsEditable = *req.IsEditable
		updated = true
	}
	if req.Formula != nil {
		if *req.Formula == "" {
			measure.Formula = nil
		} else {
			if _, err := expr.Compile(*req.Formula); err != nil {
				return nil, fmt.Errorf("%w: formula does not parse: %v", apperrors.ErrValidation, err)
			}
			measure.Formula = req.Formula
		}
		updated = true
	}
	if req.AggregationType != nil {
		measure.AggregationType = *req.AggregationType
		updated = true
	}
	if req.WeightMeasureID != nil {
		measure.WeightMeasureID = req.WeightMeasureID
		updated = true
	}
	if !updated {
		return measure, nil
	}

	if err := s.checkWeightRef(ctx, measure.AggregationType, measure.WeightMeasureID); err != nil {
		return nil, err
	}
	if measure.HasFormula() {
		measure.IsEditable = false
	}

	measure.LastUpdatedAt = time.Now().UTC()
	measure.LastUpdatedBy = updaterUserID
	if err := s.measureRepo.UpdateMeasure(ctx, *measure); err != nil {
		s.LogError(ctx, err, "Failed to update measure", slog.String("measure_id", measureID))
		return nil, fmt.Errorf("failed to update measure: %w", err)
	}
	s.LogInfo(ctx, "Measure updated", slog.String("measure_id", measureID))
	return measure, nil
}

// DeleteMeasure removes a measure; its cells cascade at the database level.
func (s *measureService) DeleteMeasure(ctx context.Context, measureID string) error {
	if _, err := s.measureRepo.FindMeasureByID(ctx, measureID); err != nil {
		return fmt.Errorf("failed to find measure %s: %w", measureID, err)
	}
	if err := s.measureRepo.DeleteMeasure(ctx, measureID); err != nil {
		s.LogError(ctx, err, "Failed to delete measure", slog.String("measure_id", measureID))
		return fmt.Errorf("failed to delete measure: %w", err)
	}
	s.LogInfo(ctx, "Measure deleted", slog.String("measure_id", measureID))
	return nil
}

// checkWeightRef enforces the weight invariant: WEIGHTED_AVG carries a
// resolvable weight measure, other policies carry none.
func (s *measureService) checkWeightRef(ctx context.Context, policy domain.AggregationType, weightMeasureID *string) error {
	if policy == domain.AggWeightedAvg {
		if weightMeasureID == nil {
			return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrWeightMeasureRequired)
		}
		if _, err := s.measureRepo.FindMeasureByID(ctx, *weightMeasureID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrWeightMeasureNotFound, *weightMeasureID)
			}
			return fmt.Errorf("failed to load weight measure: %w", err)
		}
		return nil
	}
	if weightMeasureID != nil {
		return fmt.Errorf("%w: weight measure only applies to WEIGHTED_AVG", apperrors.ErrValidation)
	}
	return nil
}
