package repositories

import (
	"context"
	"time"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
)

// VersionReader defines read operations for plan versions.
type VersionReader interface {
	// FindVersionByID retrieves a specific version by its unique identifier.
	FindVersionByID(ctx context.Context, versionID string) (*domain.Version, error)

	// ListVersions retrieves every version ordered by creation time.
	ListVersions(ctx context.Context) ([]domain.Version, error)
}

// VersionWriter defines write operations for plan versions.
type VersionWriter interface {
	// SaveVersion persists a new version.
	SaveVersion(ctx context.Context, version domain.Version) error

	// SetDefaultVersion marks the given version default and clears the flag
	// on every other version within one transaction.
	SetDefaultVersion(ctx context.Context, versionID string, userID string, now time.Time) error
}

// VersionRepositoryFacade combines all version repository interfaces.
type VersionRepositoryFacade interface {
	VersionReader
	VersionWriter
}
