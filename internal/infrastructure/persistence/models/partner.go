package models

import (
	"github.com/opsportal/backend/internal/domain/partner"
)

// ClientModel is the persistence model for partner.Client
type ClientModel struct {
	AggregateModel
	Name          string `gorm:"type:varchar(255);not null;index"`
	ContactPerson string `gorm:"type:varchar(255)"`
	Email         string `gorm:"type:varchar(255)"`
	Phone         string `gorm:"type:varchar(64)"`
	Address       string `gorm:"type:text"`
	Notes         string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the model to a domain client
func (m *ClientModel) ToDomain() *partner.Client {
	return &partner.Client{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		ContactPerson:     m.ContactPerson,
		Email:             m.Email,
		Phone:             m.Phone,
		Address:           m.Address,
		Notes:             m.Notes,
	}
}

// ClientModelFromDomain builds a persistence model from a domain client
func ClientModelFromDomain(c *partner.Client) *ClientModel {
	m := &ClientModel{
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		Notes:         c.Notes,
	}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}
