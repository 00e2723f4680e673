package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
)

// MockHierarchyRepository is a mock implementation of portsrepo.HierarchyRepositoryFacade.
type MockHierarchyRepository struct {
	mock.Mock
}

func (m *MockHierarchyRepository) ListLevels(ctx context.Context) ([]domain.HierarchyLevel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HierarchyLevel), args.Error(1)
}

func (m *MockHierarchyRepository) FindNodeByID(ctx context.Context, nodeID string) (*domain.HierarchyNode, error) {
	args := m.Called(ctx, nodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HierarchyNode), args.Error(1)
}

func (m *MockHierarchyRepository) ListNodes(ctx context.Context) ([]domain.HierarchyNode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HierarchyNode), args.Error(1)
}

func (m *MockHierarchyRepository) SaveLevel(ctx context.Context, level domain.HierarchyLevel) error {
	args := m.Called(ctx, level)
	return args.Error(0)
}

func (m *MockHierarchyRepository) SaveNode(ctx context.Context, node domain.HierarchyNode) error {
	args := m.Called(ctx, node)
	return args.Error(0)
}

func (m *MockHierarchyRepository) UpdateNode(ctx context.Context, node domain.HierarchyNode) error {
	args := m.Called(ctx, node)
	return args.Error(0)
}

func (m *MockHierarchyRepository) DeleteNode(ctx context.Context, nodeID string) error {
	args := m.Called(ctx, nodeID)
	return args.Error(0)
}

// MockPeriodRepository is a mock implementation of portsrepo.PeriodRepositoryFacade.
type MockPeriodRepository struct {
	mock.Mock
}

func (m *MockPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.TimePeriod, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimePeriod), args.Error(1)
}

func (m *MockPeriodRepository) ListPeriods(ctx context.Context) ([]domain.TimePeriod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimePeriod), args.Error(1)
}

func (m *MockPeriodRepository) SavePeriod(ctx context.Context, period domain.TimePeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockPeriodRepository) UpdatePeriod(ctx context.Context, period domain.TimePeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockPeriodRepository) DeletePeriod(ctx context.Context, periodID string) error {
	args := m.Called(ctx, periodID)
	return args.Error(0)
}

// MockMeasureRepository is a mock implementation of portsrepo.MeasureRepositoryFacade.
type MockMeasureRepository struct {
	mock.Mock
}

func (m *MockMeasureRepository) FindMeasureByID(ctx context.Context, measureID string) (*domain.Measure, error) {
	args := m.Called(ctx, measureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Measure), args.Error(1)
}

func (m *MockMeasureRepository) ListMeasures(ctx context.Context) ([]domain.Measure, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Measure), args.Error(1)
}

func (m *MockMeasureRepository) SaveMeasure(ctx context.Context, measure domain.Measure) error {
	args := m.Called(ctx, measure)
	return args.Error(0)
}

func (m *MockMeasureRepository) UpdateMeasure(ctx context.Context, measure domain.Measure) error {
	args := m.Called(ctx, measure)
	return args.Error(0)
}

func (m *MockMeasureRepository) DeleteMeasure(ctx context.Context, measureID string) error {
	args := m.Called(ctx, measureID)
	return args.Error(0)
}

// MockVersionRepository is a mock implementation of portsrepo.VersionRepositoryFacade.
type MockVersionRepository struct {
	mock.Mock
}

func (m *MockVersionRepository) FindVersionByID(ctx context.Context, versionID string) (*domain.Version, error) {
	args := m.Called(ctx, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Version), args.Error(1)
}

func (m *MockVersionRepository) ListVersions(ctx context.Context) ([]domain.Version, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Version), args.Error(1)
}

func (m *MockVersionRepository) SaveVersion(ctx context.Context, version domain.Version) error {
	args := m.Called(ctx, version)
	return args.Error(0)
}

func (m *MockVersionRepository) SetDefaultVersion(ctx context.Context, versionID string, userID string, now time.Time) error {
	args := m.Called(ctx, versionID, userID, now)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of portsrepo.UserRepositoryFacade.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
