package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/PlanSmiths/merch_planning_app/internal/apperrors"
	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	portssvc "github.com/PlanSmiths/merch_planning_app/internal/core/ports/services"
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
	"github.com/PlanSmiths/merch_planning_app/internal/handlers"
	"github.com/PlanSmiths/merch_planning_app/internal/middleware"
)

// --- Mock PlanningService ---
type MockPlanningService struct {
	mock.Mock
}

func (m *MockPlanningService) EditCell(ctx context.Context, req dto.EditCellRequest, editorID string) (*dto.GridResponse, error) {
	args := m.Called(ctx, req, editorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GridResponse), args.Error(1)
}

func (m *MockPlanningService) GetGrid(ctx context.Context, rootNodeID, versionID string) (*dto.GridResponse, error) {
	args := m.Called(ctx, rootNodeID, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GridResponse), args.Error(1)
}

var _ portssvc.PlanningSvcFacade = (*MockPlanningService)(nil)

type GridHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockPlanningService *MockPlanningService
	jwtSecret           string
}

func (suite *GridHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "mpa-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *GridHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterBindingValidators()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockPlanningService = new(MockPlanningService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterGridRoutes(v1, suite.mockPlanningService)
}

func TestGridHandler(t *testing.T) {
	suite.Run(t, new(GridHandlerTestSuite))
}

func (suite *GridHandlerTestSuite) emptyGrid() *dto.GridResponse {
	return &dto.GridResponse{
		VersionID: "v1",
		Nodes:     []dto.NodeResponse{{NodeID: "company", Name: "Company"}},
		Cells:     map[string]*decimal.Decimal{},
	}
}

func (suite *GridHandlerTestSuite) TestGetGrid_Success() {
	suite.mockPlanningService.On("GetGrid",
		mock.AnythingOfType("*context.valueCtx"),
		"company",
		"v1",
	).Return(suite.emptyGrid(), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/grid?versionID=v1&rootNodeID=company", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1"))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.GridResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("v1", body.VersionID)
	suite.Len(body.Nodes, 1)
	suite.mockPlanningService.AssertExpectations(suite.T())
}

func (suite *GridHandlerTestSuite) TestGetGrid_MissingVersion() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/grid", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1"))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPlanningService.AssertNotCalled(suite.T(), "GetGrid", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GridHandlerTestSuite) TestGetGrid_UnknownVersion() {
	suite.mockPlanningService.On("GetGrid",
		mock.AnythingOfType("*context.valueCtx"),
		"",
		"v-ghost",
	).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/grid?versionID=v-ghost", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1"))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *GridHandlerTestSuite) TestEditCell_Success() {
	editorID := "user-42"
	suite.mockPlanningService.On("EditCell",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(r dto.EditCellRequest) bool {
			return r.NodeID == "company" && r.MeasureID == "m-sales" &&
				r.Value.Equal(decimal.NewFromInt(800)) && r.SpreadMode == domain.SpreadEven
		}),
		editorID,
	).Return(suite.emptyGrid(), nil).Once()

	payload := map[string]any{
		"nodeID":     "company",
		"measureID":  "m-sales",
		"periodID":   "month-1",
		"versionID":  "v1",
		"value":      "800",
		"spreadMode": "EVEN",
	}
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/grid/cells", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(editorID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPlanningService.AssertExpectations(suite.T())
}

func (suite *GridHandlerTestSuite) TestEditCell_InvalidSpreadMode() {
	payload := map[string]any{
		"nodeID":     "company",
		"measureID":  "m-sales",
		"periodID":   "month-1",
		"versionID":  "v1",
		"value":      "800",
		"spreadMode": "SIDEWAYS",
	}
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/grid/cells", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPlanningService.AssertNotCalled(suite.T(), "EditCell", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GridHandlerTestSuite) TestEditCell_ValidationErrorFromPipeline() {
	suite.mockPlanningService.On("EditCell",
		mock.AnythingOfType("*context.valueCtx"),
		mock.AnythingOfType("dto.EditCellRequest"),
		"user-1",
	).Return(nil, apperrors.ErrValidation).Once()

	payload := map[string]any{
		"nodeID":     "company",
		"measureID":  "m-sales",
		"periodID":   "month-1",
		"versionID":  "v1",
		"value":      "800",
		"spreadMode": "WEIGHTED",
	}
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/grid/cells", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *GridHandlerTestSuite) TestEditCell_RequiresToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/grid/cells", bytes.NewReader([]byte("{}")))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPlanningService.AssertNotCalled(suite.T(), "EditCell", mock.Anything, mock.Anything, mock.Anything)
}
