package services

import (
	"context"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
)

// VersionSvcFacade manages plan versions (parallel scenarios).
type VersionSvcFacade interface {
	CreateVersion(ctx context.Context, req dto.CreateVersionRequest, creatorUserID string) (*domain.Version, error)
	GetVersionByID(ctx context.Context, versionID string) (*domain.Version, error)
	ListVersions(ctx context.Context) ([]domain.Version, error)
	SetDefaultVersion(ctx context.Context, versionID string, updaterUserID string) (*domain.Version, error)
}
