package handler

import (
	"github.com/gin-gonic/gin"

	pricingapp "github.com/opsportal/backend/internal/application/pricing"
)

// CalculatorHandler serves the transient pricing calculator
type CalculatorHandler struct {
	BaseHandler
	calculatorService *pricingapp.CalculatorService
}

// NewCalculatorHandler creates a new CalculatorHandler
func NewCalculatorHandler(calculatorService *pricingapp.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{calculatorService: calculatorService}
}

// RegisterRoutes registers calculator routes
func (h *CalculatorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/calculator", h.Calculate)
}

// Calculate computes a quote preview. Nothing is persisted.
func (h *CalculatorHandler) Calculate(c *gin.Context) {
	var req pricingapp.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.calculatorService.Calculate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
