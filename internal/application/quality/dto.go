package quality

import (
	"time"

	"github.com/google/uuid"

	"github.com/opsportal/backend/internal/domain/quality"
)

// CreateDefectRequest represents a request to record a defect
type CreateDefectRequest struct {
	OrderID         uuid.UUID  `json:"order_id" binding:"required"`
	ResponsibleName string     `json:"responsible_name" binding:"max=200"`
	ReportDate      *time.Time `json:"report_date"`
	Description     string     `json:"description" binding:"required,min=1,max=2000"`
}

// DefectListFilter represents filter options for the defect list
type DefectListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// DefectResponse represents a defect record in API responses
type DefectResponse struct {
	ID              uuid.UUID `json:"id"`
	OrderID         uuid.UUID `json:"order_id"`
	ResponsibleName string    `json:"responsible_name"`
	ReportDate      time.Time `json:"report_date"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToDefectResponse converts a domain defect record to a response DTO
func ToDefectResponse(d *quality.DefectRecord) DefectResponse {
	return DefectResponse{
		ID:              d.ID,
		OrderID:         d.OrderID,
		ResponsibleName: d.ResponsibleName,
		ReportDate:      d.ReportDate,
		Description:     d.Description,
		CreatedAt:       d.CreatedAt,
	}
}
