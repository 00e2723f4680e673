package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/PlanSmiths/merch_planning_app/internal/core/ports/services"
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
	"github.com/PlanSmiths/merch_planning_app/internal/middleware"
)

// gridHandler handles HTTP requests for the planning grid: reads and cell
// edits. Every edit runs the full consistency pipeline before responding.
type gridHandler struct {
	planningService portssvc.PlanningSvcFacade
}

// newGridHandler creates a new gridHandler.
func newGridHandler(ps portssvc.PlanningSvcFacade) *gridHandler {
	return &gridHandler{
		planningService: ps,
	}
}

// RegisterGridRoutes registers the grid routes.
func RegisterGridRoutes(rg *gin.RouterGroup, planningService portssvc.PlanningSvcFacade) {
	h := newGridHandler(planningService)

	grid := rg.Group("/grid")
	{
		grid.GET("", h.getGrid)
		grid.POST("/cells", h.editCell)
	}
}

// getGrid godoc
// @Summary Read the planning grid
// @Description Returns the grid payload for a version, optionally scoped to a hierarchy subtree
// @Tags grid
// @Produce  json
// @Param   versionID query string true "Version ID"
// @Param   rootNodeID query string false "Root node of the visible subtree; omit for the whole forest"
// @Success 200 {object} dto.GridResponse
// @Failure 400 {object} ErrorResponse "Missing version"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Unknown version or node"
// @Security BearerAuth
// @Router /grid [get]
func (h *gridHandler) getGrid(c *gin.Context) {
	var params dto.GridParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	grid, err := h.planningService.GetGrid(c.Request.Context(), params.RootNodeID, params.VersionID)
	if err != nil {
		respondError(c, err, "Failed to read grid")
		return
	}

	c.JSON(http.StatusOK, grid)
}

// editCell godoc
// @Summary Edit a grid cell
// @Description Applies one cell edit and runs the consistency pipeline: disaggregation to leaves, formula recalculation, and aggregation up the hierarchy and calendar. Responds with the refreshed grid for the edited tree.
// @Tags grid
// @Accept  json
// @Produce  json
// @Param   edit body dto.EditCellRequest true "Cell edit"
// @Success 200 {object} dto.GridResponse
// @Failure 400 {object} ErrorResponse "Invalid input or spread configuration"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Unknown node, measure, period or version"
// @Security BearerAuth
// @Router /grid/cells [post]
func (h *gridHandler) editCell(c *gin.Context) {
	var req dto.EditCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	editorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	grid, err := h.planningService.EditCell(c.Request.Context(), req, editorID)
	if err != nil {
		respondError(c, err, "Failed to apply cell edit")
		return
	}

	c.JSON(http.StatusOK, grid)
}
