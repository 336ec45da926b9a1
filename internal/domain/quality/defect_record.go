package quality

import (
	"time"

	"github.com/google/uuid"

	"github.com/opsportal/backend/internal/domain/shared"
)

// DefectRecord notes a defect found on an order and who is responsible
// for fixing it
type DefectRecord struct {
	shared.BaseEntity
	OrderID         uuid.UUID
	ResponsibleName string
	ReportDate      time.Time
	Description     string
}

// NewDefectRecord creates a new defect record
func NewDefectRecord(orderID uuid.UUID, responsibleName string, reportDate time.Time, description string) (*DefectRecord, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Order ID cannot be empty")
	}
	if description == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Description cannot be empty")
	}
	if reportDate.IsZero() {
		reportDate = time.Now()
	}
	return &DefectRecord{
		BaseEntity:      shared.NewBaseEntity(),
		OrderID:         orderID,
		ResponsibleName: responsibleName,
		ReportDate:      reportDate,
		Description:     description,
	}, nil
}
