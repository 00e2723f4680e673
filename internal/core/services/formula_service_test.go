package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	portssvc "github.com/PlanSmiths/merch_planning_app/internal/core/ports/services"
	"github.com/PlanSmiths/merch_planning_app/internal/core/services"
)

type FormulaServiceTestSuite struct {
	suite.Suite
	cellRepo *fakeCellRepo
	service  portssvc.FormulaSvcFacade
}

func (suite *FormulaServiceTestSuite) SetupTest() {
	suite.cellRepo = newFakeCellRepo()
	suite.service = services.NewFormulaService(suite.cellRepo)
}

func TestFormulaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FormulaServiceTestSuite))
}

func (suite *FormulaServiceTestSuite) catalog() *domain.MeasureSet {
	return domain.NewMeasureSet([]domain.Measure{salesMeasure(), cogsMeasure(), marginMeasure()})
}

func (suite *FormulaServiceTestSuite) marginAt(nodeID string) (*decimal.Decimal, bool) {
	return suite.cellRepo.get("v1", nodeID, "m-margin", "month-1")
}

func (suite *FormulaServiceTestSuite) TestRecalculate_ComputesDerivedMeasure() {
	ctx := context.Background()
	suite.cellRepo.set("v1", "store-1", "m-sales", "month-1", dptr(decimal.NewFromInt(200)))
	suite.cellRepo.set("v1", "store-1", "m-cogs", "month-1", dptr(decimal.NewFromInt(120)))

	err := suite.service.Recalculate(ctx, suite.catalog(), "store-1", "month-1", "v1", "user-1")

	suite.Require().NoError(err)
	v, ok := suite.marginAt("store-1")
	suite.Require().True(ok)
	suite.Require().NotNil(v)
	suite.True(v.Equal(decimal.NewFromInt(40)), "got %s, want 40", v)
	suite.Equal(1, suite.cellRepo.saveCalls)
}

func (suite *FormulaServiceTestSuite) TestRecalculate_AbsentInputsBindToZero() {
	ctx := context.Background()
	suite.cellRepo.set("v1", "store-1", "m-sales", "month-1", dptr(decimal.NewFromInt(200)))
	// COGS never planned: it must evaluate as zero, not block the formula.

	err := suite.service.Recalculate(ctx, suite.catalog(), "store-1", "month-1", "v1", "user-1")

	suite.Require().NoError(err)
	v, ok := suite.marginAt("store-1")
	suite.Require().True(ok)
	suite.Require().NotNil(v)
	suite.True(v.Equal(decimal.NewFromInt(100)), "got %s, want 100", v)
}

func (suite *FormulaServiceTestSuite) TestRecalculate_StoredNullBindsToZero() {
	ctx := context.Background()
	suite.cellRepo.set("v1", "store-1", "m-sales", "month-1", dptr(decimal.NewFromInt(200)))
	suite.cellRepo.set("v1", "store-1", "m-cogs", "month-1", nil)

	err := suite.service.Recalculate(ctx, suite.catalog(), "store-1", "month-1", "v1", "user-1")

	suite.Require().NoError(err)
	v, ok := suite.marginAt("store-1")
	suite.Require().True(ok)
	suite.Require().NotNil(v)
	suite.True(v.Equal(decimal.NewFromInt(100)), "got %s, want 100", v)
}

func (suite *FormulaServiceTestSuite) TestRecalculate_DivisionByZeroStoresNull() {
	ctx := context.Background()
	suite.cellRepo.set("v1", "store-1", "m-sales", "month-1", dptr(decimal.Zero))
	suite.cellRepo.set("v1", "store-1", "m-cogs", "month-1", dptr(decimal.NewFromInt(120)))

	err := suite.service.Recalculate(ctx, suite.catalog(), "store-1", "month-1", "v1", "user-1")

	suite.Require().NoError(err)
	v, ok := suite.marginAt("store-1")
	suite.Require().True(ok, "the failed evaluation must still store a row")
	suite.Nil(v, "non-finite result must store null, got %v", v)
}

func (suite *FormulaServiceTestSuite) TestRecalculate_MalformedFormulaStoresNull() {
	ctx := context.Background()
	broken := marginMeasure()
	broken.MeasureID = "m-broken"
	broken.ShortName = "Broken"
	broken.Formula = strptr("Sales *")
	catalog := domain.NewMeasureSet([]domain.Measure{salesMeasure(), cogsMeasure(), marginMeasure(), broken})
	suite.cellRepo.set("v1", "store-1", "m-sales", "month-1", dptr(decimal.NewFromInt(200)))
	suite.cellRepo.set("v1", "store-1", "m-cogs", "month-1", dptr(decimal.NewFromInt(120)))

	err := suite.service.Recalculate(ctx, catalog, "store-1", "month-1", "v1", "user-1")

	suite.Require().NoError(err, "a broken formula must not abort the batch")
	margin, ok := suite.marginAt("store-1")
	suite.Require().True(ok)
	suite.Require().NotNil(margin)
	suite.True(margin.Equal(decimal.NewFromInt(40)))
	brokenValue, ok := suite.cellRepo.get("v1", "store-1", "m-broken", "month-1")
	suite.Require().True(ok)
	suite.Nil(brokenValue)
}

func (suite *FormulaServiceTestSuite) TestRecalculate_UnknownIdentifierStoresNull() {
	ctx := context.Background()
	phantom := marginMeasure()
	phantom.Formula = strptr("Sales * Phantom")
	catalog := domain.NewMeasureSet([]domain.Measure{salesMeasure(), phantom})
	suite.cellRepo.set("v1", "store-1", "m-sales", "month-1", dptr(decimal.NewFromInt(200)))

	err := suite.service.Recalculate(ctx, catalog, "store-1", "month-1", "v1", "user-1")

	suite.Require().NoError(err)
	v, ok := suite.marginAt("store-1")
	suite.Require().True(ok)
	suite.Nil(v)
}

func (suite *FormulaServiceTestSuite) TestRecalculate_NoDerivedMeasuresIsNoOp() {
	ctx := context.Background()
	catalog := domain.NewMeasureSet([]domain.Measure{salesMeasure(), cogsMeasure()})

	err := suite.service.Recalculate(ctx, catalog, "store-1", "month-1", "v1", "user-1")

	suite.Require().NoError(err)
	suite.Equal(0, suite.cellRepo.saveCalls)
}

func (suite *FormulaServiceTestSuite) TestRecalculate_RepeatedCallsReuseCompiledProgram() {
	ctx := context.Background()
	suite.cellRepo.set("v1", "store-1", "m-sales", "month-1", dptr(decimal.NewFromInt(200)))
	suite.cellRepo.set("v1", "store-1", "m-cogs", "month-1", dptr(decimal.NewFromInt(120)))
	suite.cellRepo.set("v1", "store-2", "m-sales", "month-1", dptr(decimal.NewFromInt(400)))
	suite.cellRepo.set("v1", "store-2", "m-cogs", "month-1", dptr(decimal.NewFromInt(100)))

	suite.Require().NoError(suite.service.Recalculate(ctx, suite.catalog(), "store-1", "month-1", "v1", "user-1"))
	suite.Require().NoError(suite.service.Recalculate(ctx, suite.catalog(), "store-2", "month-1", "v1", "user-1"))

	v1, _ := suite.marginAt("store-1")
	v2, _ := suite.marginAt("store-2")
	suite.Require().NotNil(v1)
	suite.Require().NotNil(v2)
	suite.True(v1.Equal(decimal.NewFromInt(40)))
	suite.True(v2.Equal(decimal.NewFromInt(75)))
}
