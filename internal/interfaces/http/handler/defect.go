package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	qualityapp "github.com/opsportal/backend/internal/application/quality"
)

// DefectHandler handles defect record API endpoints
type DefectHandler struct {
	BaseHandler
	defectService *qualityapp.DefectService
}

// NewDefectHandler creates a new DefectHandler
func NewDefectHandler(defectService *qualityapp.DefectService) *DefectHandler {
	return &DefectHandler{defectService: defectService}
}

// RegisterRoutes registers defect routes
func (h *DefectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	defects := rg.Group("/defects")
	{
		defects.POST("", h.Create)
		defects.GET("", h.List)
		defects.GET("/:id", h.GetByID)
		defects.DELETE("/:id", h.Delete)
	}

	rg.GET("/orders/:id/defects", h.ListByOrder)
}

// Create records a defect against an order
func (h *DefectHandler) Create(c *gin.Context) {
	var req qualityapp.CreateDefectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	defect, err := h.defectService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, defect)
}

// GetByID retrieves a defect record
func (h *DefectHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid defect ID format")
		return
	}

	defect, err := h.defectService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, defect)
}

// List retrieves defect records
func (h *DefectHandler) List(c *gin.Context) {
	var filter qualityapp.DefectListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	defects, err := h.defectService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, defects)
}

// ListByOrder retrieves the defects recorded against one order
func (h *DefectHandler) ListByOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	defects, err := h.defectService.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, defects)
}

// Delete removes a defect record
func (h *DefectHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid defect ID format")
		return
	}

	if err := h.defectService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
