package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/PlanSmiths/merch_planning_app/internal/core/ports/services"
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
	"github.com/PlanSmiths/merch_planning_app/internal/middleware"
)

// versionHandler handles HTTP requests for plan versions.
type versionHandler struct {
	versionService portssvc.VersionSvcFacade
}

// newVersionHandler creates a new versionHandler.
func newVersionHandler(vs portssvc.VersionSvcFacade) *versionHandler {
	return &versionHandler{
		versionService: vs,
	}
}

// registerVersionRoutes registers all version-related routes.
func registerVersionRoutes(rg *gin.RouterGroup, versionService portssvc.VersionSvcFacade) {
	h := newVersionHandler(versionService)

	versions := rg.Group("/versions")
	{
		versions.POST("", h.createVersion)
		versions.GET("", h.listVersions)
		versions.GET("/:id", h.getVersion)
		versions.PUT("/:id/default", h.setDefaultVersion)
	}
}

// createVersion godoc
// @Summary Create a plan version
// @Description Creates a new independent plane of plan data
// @Tags versions
// @Accept  json
// @Produce  json
// @Param   version body dto.CreateVersionRequest true "Version details"
// @Success 201 {object} dto.VersionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /versions [post]
func (h *versionHandler) createVersion(c *gin.Context) {
	var req dto.CreateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	version, err := h.versionService.CreateVersion(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create version")
		return
	}

	c.JSON(http.StatusCreated, dto.ToVersionResponse(version))
}

// listVersions godoc
// @Summary List plan versions
// @Tags versions
// @Produce  json
// @Success 200 {array} dto.VersionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /versions [get]
func (h *versionHandler) listVersions(c *gin.Context) {
	versions, err := h.versionService.ListVersions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list versions")
		return
	}

	c.JSON(http.StatusOK, dto.ToVersionResponses(versions))
}

// getVersion godoc
// @Summary Get a plan version by ID
// @Tags versions
// @Produce  json
// @Param   id path string true "Version ID"
// @Success 200 {object} dto.VersionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Version not found"
// @Security BearerAuth
// @Router /versions/{id} [get]
func (h *versionHandler) getVersion(c *gin.Context) {
	version, err := h.versionService.GetVersionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve version")
		return
	}

	c.JSON(http.StatusOK, dto.ToVersionResponse(version))
}

// setDefaultVersion godoc
// @Summary Mark a version as the default
// @Description Moves the default flag to this version; at most one version carries it
// @Tags versions
// @Produce  json
// @Param   id path string true "Version ID"
// @Success 200 {object} dto.VersionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Version not found"
// @Security BearerAuth
// @Router /versions/{id}/default [put]
func (h *versionHandler) setDefaultVersion(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	version, err := h.versionService.SetDefaultVersion(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to set default version")
		return
	}

	c.JSON(http.StatusOK, dto.ToVersionResponse(version))
}
