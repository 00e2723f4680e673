package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	portsrepo "github.com/PlanSmiths/merch_planning_app/internal/core/ports/repositories"
	portssvc "github.com/PlanSmiths/merch_planning_app/internal/core/ports/services"
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
)

// versionService manages plan versions. Versions are fully independent
// planes of cell data; the default flag is advisory for clients picking an
// initial view and at most one version carries it.
type versionService struct {
	BaseService
	versionRepo portsrepo.VersionRepositoryFacade
}

// NewVersionService creates a new version administration service.
func NewVersionService(versionRepo portsrepo.VersionRepositoryFacade) portssvc.VersionSvcFacade {
	return &versionService{versionRepo: versionRepo}
}

var _ portssvc.VersionSvcFacade = (*versionService)(nil)

// CreateVersion persists a new plan version.
func (s *versionService) CreateVersion(ctx context.Context, req dto.CreateVersionRequest, creatorUserID string) (*domain.Version, error) {
	now := time.Now().UTC()
	version := domain.Version{
		VersionID: uuid.NewString(),
		Name:      req.Name,
		IsDefault: false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.versionRepo.SaveVersion(ctx, version); err != nil {
		s.LogError(ctx, err, "Failed to save version", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save version: %w", err)
	}
	if req.IsDefault {
		if err := s.versionRepo.SetDefaultVersion(ctx, version.VersionID, creatorUserID, now); err != nil {
			return nil, fmt.Errorf("failed to mark version default: %w", err)
		}
		version.IsDefault = true
	}
	s.LogInfo(ctx, "Version created", slog.String("version_id", version.VersionID), slog.String("name", version.Name))
	return &version, nil
}

// GetVersionByID retrieves a specific version.
func (s *versionService) GetVersionByID(ctx context.Context, versionID string) (*domain.Version, error) {
	version, err := s.versionRepo.FindVersionByID(ctx, versionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find version %s: %w", versionID, err)
	}
	return version, nil
}

// ListVersions returns every version ordered by creation time.
func (s *versionService) ListVersions(ctx context.Context) ([]domain.Version, error) {
	versions, err := s.versionRepo.ListVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	return versions, nil
}

// SetDefaultVersion moves the default flag to the given version. The
// repository flips the flags atomically so at most one version ever holds it.
func (s *versionService) SetDefaultVersion(ctx context.Context, versionID string, updaterUserID string) (*domain.Version, error) {
	version, err := s.versionRepo.FindVersionByID(ctx, versionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find version %s: %w", versionID, err)
	}
	now := time.Now().UTC()
	if err := s.versionRepo.SetDefaultVersion(ctx, versionID, updaterUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to set default version", slog.String("version_id", versionID))
		return nil, fmt.Errorf("failed to set default version: %w", err)
	}
	version.IsDefault = true
	version.LastUpdatedAt = now
	version.LastUpdatedBy = updaterUserID
	s.LogInfo(ctx, "Default version changed", slog.String("version_id", versionID))
	return version, nil
}
