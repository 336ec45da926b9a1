package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/opsportal/backend/internal/application/report"
)

// ReportHandler serves the monthly reports
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/monthly", h.Monthly)
		reports.GET("/monthly/orders", h.MonthlyOrders)
	}
}

// Monthly returns the income and expense rollup for a month
func (h *ReportHandler) Monthly(c *gin.Context) {
	var filter reportapp.MonthFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	report, err := h.reportService.Monthly(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// MonthlyOrders lists the orders created in a month
func (h *ReportHandler) MonthlyOrders(c *gin.Context) {
	var filter reportapp.MonthFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	report, err := h.reportService.MonthlyOrders(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}
