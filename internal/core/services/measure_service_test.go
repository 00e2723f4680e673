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

type MeasureServiceTestSuite struct {
	suite.Suite
	mockRepo *MockMeasureRepository
	service  portssvc.MeasureSvcFacade
}

func (suite *MeasureServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMeasureRepository)
	suite.service = services.NewMeasureService(suite.mockRepo)
}

func TestMeasureServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MeasureServiceTestSuite))
}

func (suite *MeasureServiceTestSuite) TestCreateMeasure_Success() {
	ctx := context.Background()
	req := dto.CreateMeasureRequest{
		ShortName:       "Sales",
		Name:            "Sales Retail",
		DataType:        domain.DataTypeCurrency,
		IsEditable:      true,
		AggregationType: domain.AggSum,
	}

	suite.mockRepo.On("SaveMeasure", ctx, mock.MatchedBy(func(m domain.Measure) bool {
		return m.ShortName == "Sales" && m.IsEditable && m.Formula == nil && m.MeasureID != ""
	})).Return(nil).Once()

	measure, err := suite.service.CreateMeasure(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(measure)
	suite.True(measure.IsEditable)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MeasureServiceTestSuite) TestCreateMeasure_FormulaForcesNonEditable() {
	ctx := context.Background()
	req := dto.CreateMeasureRequest{
		ShortName:       "MarginPct",
		Name:            "Margin Percent",
		DataType:        domain.DataTypePercentage,
		IsEditable:      true, // must be overridden
		Formula:         strptr("(Sales - COGS) / Sales * 100"),
		AggregationType: domain.AggAvg,
	}

	suite.mockRepo.On("SaveMeasure", ctx, mock.MatchedBy(func(m domain.Measure) bool {
		return m.HasFormula() && !m.IsEditable
	})).Return(nil).Once()

	measure, err := suite.service.CreateMeasure(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.False(measure.IsEditable, "a derived measure can never accept direct edits")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MeasureServiceTestSuite) TestCreateMeasure_MalformedFormula() {
	ctx := context.Background()
	req := dto.CreateMeasureRequest{
		ShortName:       "Broken",
		Name:            "Broken",
		DataType:        domain.DataTypeRatio,
		Formula:         strptr("Sales *"),
		AggregationType: domain.AggAvg,
	}

	_, err := suite.service.CreateMeasure(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveMeasure", mock.Anything, mock.Anything)
}

func (suite *MeasureServiceTestSuite) TestCreateMeasure_WeightedAvgRequiresWeight() {
	ctx := context.Background()
	req := dto.CreateMeasureRequest{
		ShortName:       "ASP",
		Name:            "Average Selling Price",
		DataType:        domain.DataTypeCurrency,
		AggregationType: domain.AggWeightedAvg,
	}

	_, err := suite.service.CreateMeasure(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrWeightMeasureRequired)
}

func (suite *MeasureServiceTestSuite) TestCreateMeasure_WeightMeasureMustExist() {
	ctx := context.Background()
	req := dto.CreateMeasureRequest{
		ShortName:       "ASP",
		Name:            "Average Selling Price",
		DataType:        domain.DataTypeCurrency,
		AggregationType: domain.AggWeightedAvg,
		WeightMeasureID: strptr("m-ghost"),
	}

	suite.mockRepo.On("FindMeasureByID", ctx, "m-ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateMeasure(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrWeightMeasureNotFound)
}

func (suite *MeasureServiceTestSuite) TestCreateMeasure_WeightOnlyForWeightedAvg() {
	ctx := context.Background()
	req := dto.CreateMeasureRequest{
		ShortName:       "Sales",
		Name:            "Sales Retail",
		DataType:        domain.DataTypeCurrency,
		AggregationType: domain.AggSum,
		WeightMeasureID: strptr("m-units"),
	}

	_, err := suite.service.CreateMeasure(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MeasureServiceTestSuite) TestUpdateMeasure_ClearFormulaRestoresNothingElse() {
	ctx := context.Background()
	existing := marginMeasure()

	suite.mockRepo.On("FindMeasureByID", ctx, "m-margin").Return(&existing, nil).Once()
	suite.mockRepo.On("UpdateMeasure", ctx, mock.MatchedBy(func(m domain.Measure) bool {
		return m.Formula == nil && m.ShortName == "MarginPct"
	})).Return(nil).Once()

	measure, err := suite.service.UpdateMeasure(ctx, "m-margin", dto.UpdateMeasureRequest{Formula: strptr("")}, "user-2")

	suite.Require().NoError(err)
	suite.Nil(measure.Formula)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MeasureServiceTestSuite) TestUpdateMeasure_NewFormulaForcesNonEditable() {
	ctx := context.Background()
	existing := salesMeasure()

	suite.mockRepo.On("FindMeasureByID", ctx, "m-sales").Return(&existing, nil).Once()
	suite.mockRepo.On("UpdateMeasure", ctx, mock.MatchedBy(func(m domain.Measure) bool {
		return m.HasFormula() && !m.IsEditable
	})).Return(nil).Once()

	measure, err := suite.service.UpdateMeasure(ctx, "m-sales", dto.UpdateMeasureRequest{Formula: strptr("Units * 2")}, "user-2")

	suite.Require().NoError(err)
	suite.False(measure.IsEditable)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MeasureServiceTestSuite) TestDeleteMeasure_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindMeasureByID", ctx, "m-ghost").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteMeasure(ctx, "m-ghost")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteMeasure", mock.Anything, mock.Anything)
}
