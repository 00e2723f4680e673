package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/PlanSmiths/merch_planning_app/internal/core/ports/services"
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
	"github.com/PlanSmiths/merch_planning_app/internal/middleware"
)

// hierarchyHandler handles HTTP requests for hierarchy levels and nodes.
type hierarchyHandler struct {
	hierarchyService portssvc.HierarchySvcFacade
}

// newHierarchyHandler creates a new hierarchyHandler.
func newHierarchyHandler(hs portssvc.HierarchySvcFacade) *hierarchyHandler {
	return &hierarchyHandler{
		hierarchyService: hs,
	}
}

// registerHierarchyRoutes registers all hierarchy-related routes.
func registerHierarchyRoutes(rg *gin.RouterGroup, hierarchyService portssvc.HierarchySvcFacade) {
	h := newHierarchyHandler(hierarchyService)

	levels := rg.Group("/hierarchy/levels")
	{
		levels.POST("", h.createLevel)
		levels.GET("", h.listLevels)
	}

	nodes := rg.Group("/hierarchy/nodes")
	{
		nodes.POST("", h.createNode)
		nodes.GET("", h.listNodes)
		nodes.GET("/:id", h.getNode)
		nodes.PUT("/:id", h.updateNode)
		nodes.DELETE("/:id", h.deleteNode)
	}
}

// createLevel godoc
// @Summary Create a hierarchy level
// @Description Creates a new named stratum of the merchandise hierarchy
// @Tags hierarchy
// @Accept  json
// @Produce  json
// @Param   level body dto.CreateLevelRequest true "Level details"
// @Success 201 {object} dto.LevelResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /hierarchy/levels [post]
func (h *hierarchyHandler) createLevel(c *gin.Context) {
	var req dto.CreateLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	level, err := h.hierarchyService.CreateLevel(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create hierarchy level")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLevelResponse(level))
}

// listLevels godoc
// @Summary List hierarchy levels
// @Description Retrieves every hierarchy level ordered by depth
// @Tags hierarchy
// @Produce  json
// @Success 200 {array} dto.LevelResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /hierarchy/levels [get]
func (h *hierarchyHandler) listLevels(c *gin.Context) {
	levels, err := h.hierarchyService.ListLevels(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list hierarchy levels")
		return
	}

	res := make([]dto.LevelResponse, len(levels))
	for i := range levels {
		res[i] = dto.ToLevelResponse(&levels[i])
	}
	c.JSON(http.StatusOK, res)
}

// createNode godoc
// @Summary Create a hierarchy node
// @Description Creates a new node under an existing parent, or a new root
// @Tags hierarchy
// @Accept  json
// @Produce  json
// @Param   node body dto.CreateNodeRequest true "Node details"
// @Success 201 {object} dto.NodeResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown parent/level"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /hierarchy/nodes [post]
func (h *hierarchyHandler) createNode(c *gin.Context) {
	var req dto.CreateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	node, err := h.hierarchyService.CreateNode(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create hierarchy node")
		return
	}

	c.JSON(http.StatusCreated, dto.ToNodeResponse(node))
}

// listNodes godoc
// @Summary List hierarchy nodes
// @Description Retrieves the full node forest in sort order
// @Tags hierarchy
// @Produce  json
// @Success 200 {array} dto.NodeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /hierarchy/nodes [get]
func (h *hierarchyHandler) listNodes(c *gin.Context) {
	nodes, err := h.hierarchyService.ListNodes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list hierarchy nodes")
		return
	}

	c.JSON(http.StatusOK, dto.ToNodeResponses(nodes))
}

// getNode godoc
// @Summary Get a hierarchy node by ID
// @Tags hierarchy
// @Produce  json
// @Param   id path string true "Node ID"
// @Success 200 {object} dto.NodeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Node not found"
// @Security BearerAuth
// @Router /hierarchy/nodes/{id} [get]
func (h *hierarchyHandler) getNode(c *gin.Context) {
	node, err := h.hierarchyService.GetNodeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve hierarchy node")
		return
	}

	c.JSON(http.StatusOK, dto.ToNodeResponse(node))
}

// updateNode godoc
// @Summary Update a hierarchy node
// @Description Updates a node's name or sort order
// @Tags hierarchy
// @Accept  json
// @Produce  json
// @Param   id path string true "Node ID"
// @Param   node body dto.UpdateNodeRequest true "Fields to update"
// @Success 200 {object} dto.NodeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Node not found"
// @Security BearerAuth
// @Router /hierarchy/nodes/{id} [put]
func (h *hierarchyHandler) updateNode(c *gin.Context) {
	var req dto.UpdateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	node, err := h.hierarchyService.UpdateNode(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update hierarchy node")
		return
	}

	c.JSON(http.StatusOK, dto.ToNodeResponse(node))
}

// deleteNode godoc
// @Summary Delete a hierarchy node
// @Description Deletes a leaf node; its cells are removed with it
// @Tags hierarchy
// @Produce  json
// @Param   id path string true "Node ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Node not found"
// @Failure 409 {object} ErrorResponse "Node still has children"
// @Security BearerAuth
// @Router /hierarchy/nodes/{id} [delete]
func (h *hierarchyHandler) deleteNode(c *gin.Context) {
	if err := h.hierarchyService.DeleteNode(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete hierarchy node")
		return
	}

	c.Status(http.StatusNoContent)
}
