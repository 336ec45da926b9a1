package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/opsportal/backend/internal/domain/quality"
)

// DefectRecordModel is the persistence model for quality.DefectRecord
type DefectRecordModel struct {
	BaseModel
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ResponsibleName string    `gorm:"type:varchar(255)"`
	ReportDate      time.Time `gorm:"type:date;not null"`
	Description     string    `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (DefectRecordModel) TableName() string {
	return "defect_records"
}

// ToDomain converts the model to a domain defect record
func (m *DefectRecordModel) ToDomain() *quality.DefectRecord {
	return &quality.DefectRecord{
		BaseEntity:      m.BaseModel.ToDomain(),
		OrderID:         m.OrderID,
		ResponsibleName: m.ResponsibleName,
		ReportDate:      m.ReportDate,
		Description:     m.Description,
	}
}

// DefectRecordModelFromDomain builds a persistence model from a domain defect record
func DefectRecordModelFromDomain(d *quality.DefectRecord) *DefectRecordModel {
	m := &DefectRecordModel{
		OrderID:         d.OrderID,
		ResponsibleName: d.ResponsibleName,
		ReportDate:      d.ReportDate,
		Description:     d.Description,
	}
	m.FromDomainBaseEntity(d.BaseEntity)
	return m
}
