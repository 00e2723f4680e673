package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/PlanSmiths/merch_planning_app/internal/core/ports/services"
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
	"github.com/PlanSmiths/merch_planning_app/internal/middleware"
)

// measureHandler handles HTTP requests for the measure catalog.
type measureHandler struct {
	measureService portssvc.MeasureSvcFacade
}

// newMeasureHandler creates a new measureHandler.
func newMeasureHandler(ms portssvc.MeasureSvcFacade) *measureHandler {
	return &measureHandler{
		measureService: ms,
	}
}

// registerMeasureRoutes registers all measure-related routes.
func registerMeasureRoutes(rg *gin.RouterGroup, measureService portssvc.MeasureSvcFacade) {
	h := newMeasureHandler(measureService)

	measures := rg.Group("/measures")
	{
		measures.POST("", h.createMeasure)
		measures.GET("", h.listMeasures)
		measures.GET("/:id", h.getMeasure)
		measures.PUT("/:id", h.updateMeasure)
		measures.DELETE("/:id", h.deleteMeasure)
	}
}

// createMeasure godoc
// @Summary Create a measure
// @Description Creates a new grid column definition. A measure carrying a formula is stored non-editable.
// @Tags measures
// @Accept  json
// @Produce  json
// @Param   measure body dto.CreateMeasureRequest true "Measure details"
// @Success 201 {object} dto.MeasureResponse
// @Failure 400 {object} ErrorResponse "Invalid input or formula"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Short name already taken"
// @Security BearerAuth
// @Router /measures [post]
func (h *measureHandler) createMeasure(c *gin.Context) {
	var req dto.CreateMeasureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	measure, err := h.measureService.CreateMeasure(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create measure")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMeasureResponse(measure))
}

// listMeasures godoc
// @Summary List measures
// @Description Retrieves the whole measure catalog
// @Tags measures
// @Produce  json
// @Success 200 {array} dto.MeasureResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /measures [get]
func (h *measureHandler) listMeasures(c *gin.Context) {
	measures, err := h.measureService.ListMeasures(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list measures")
		return
	}

	c.JSON(http.StatusOK, dto.ToMeasureResponses(measures))
}

// getMeasure godoc
// @Summary Get a measure by ID
// @Tags measures
// @Produce  json
// @Param   id path string true "Measure ID"
// @Success 200 {object} dto.MeasureResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Measure not found"
// @Security BearerAuth
// @Router /measures/{id} [get]
func (h *measureHandler) getMeasure(c *gin.Context) {
	measure, err := h.measureService.GetMeasureByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve measure")
		return
	}

	c.JSON(http.StatusOK, dto.ToMeasureResponse(measure))
}

// updateMeasure godoc
// @Summary Update a measure
// @Description Updates a measure's mutable fields; the short name is immutable
// @Tags measures
// @Accept  json
// @Produce  json
// @Param   id path string true "Measure ID"
// @Param   measure body dto.UpdateMeasureRequest true "Fields to update"
// @Success 200 {object} dto.MeasureResponse
// @Failure 400 {object} ErrorResponse "Invalid input or formula"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Measure not found"
// @Security BearerAuth
// @Router /measures/{id} [put]
func (h *measureHandler) updateMeasure(c *gin.Context) {
	var req dto.UpdateMeasureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	measure, err := h.measureService.UpdateMeasure(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update measure")
		return
	}

	c.JSON(http.StatusOK, dto.ToMeasureResponse(measure))
}

// deleteMeasure godoc
// @Summary Delete a measure
// @Description Deletes a measure; its cells are removed with it
// @Tags measures
// @Produce  json
// @Param   id path string true "Measure ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Measure not found"
// @Security BearerAuth
// @Router /measures/{id} [delete]
func (h *measureHandler) deleteMeasure(c *gin.Context) {
	if err := h.measureService.DeleteMeasure(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete measure")
		return
	}

	c.Status(http.StatusNoContent)
}
