package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/PlanSmiths/merch_planning_app/internal/apperrors"
	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	portssvc "github.com/PlanSmiths/merch_planning_app/internal/core/ports/services"
	"github.com/PlanSmiths/merch_planning_app/internal/core/services"
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
)

type VersionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockVersionRepository
	service  portssvc.VersionSvcFacade
}

func (suite *VersionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockVersionRepository)
	suite.service = services.NewVersionService(suite.mockRepo)
}

func TestVersionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VersionServiceTestSuite))
}

func (suite *VersionServiceTestSuite) TestCreateVersion_Success() {
	ctx := context.Background()
	req := dto.CreateVersionRequest{Name: "Working Plan"}

	suite.mockRepo.On("SaveVersion", ctx, mock.MatchedBy(func(v domain.Version) bool {
		return v.Name == "Working Plan" && !v.IsDefault && v.VersionID != ""
	})).Return(nil).Once()

	version, err := suite.service.CreateVersion(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(version)
	suite.False(version.IsDefault)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetDefaultVersion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VersionServiceTestSuite) TestCreateVersion_AsDefault() {
	ctx := context.Background()
	req := dto.CreateVersionRequest{Name: "Original Plan", IsDefault: true}

	suite.mockRepo.On("SaveVersion", ctx, mock.MatchedBy(func(v domain.Version) bool {
		return v.Name == "Original Plan" && !v.IsDefault
	})).Return(nil).Once()
	suite.mockRepo.On("SetDefaultVersion", ctx, mock.AnythingOfType("string"), "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	version, err := suite.service.CreateVersion(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.True(version.IsDefault)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VersionServiceTestSuite) TestSetDefaultVersion_Success() {
	ctx := context.Background()
	existing := &domain.Version{VersionID: "v2", Name: "What If", IsDefault: false}

	suite.mockRepo.On("FindVersionByID", ctx, "v2").Return(existing, nil).Once()
	suite.mockRepo.On("SetDefaultVersion", ctx, "v2", "user-2", mock.AnythingOfType("time.Time")).Return(nil).Once()

	version, err := suite.service.SetDefaultVersion(ctx, "v2", "user-2")

	suite.Require().NoError(err)
	suite.True(version.IsDefault)
	suite.Equal("user-2", version.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VersionServiceTestSuite) TestSetDefaultVersion_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindVersionByID", ctx, "v-ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SetDefaultVersion(ctx, "v-ghost", "user-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetDefaultVersion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
