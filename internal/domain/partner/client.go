package partner

import (
	"time"

	"github.com/opsportal/backend/internal/domain/shared"
)

// Client is an aggregate root for a customer of the business
type Client struct {
	shared.BaseAggregateRoot
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Notes         string
}

// NewClient creates a new client
func NewClient(name, contactPerson, email, phone, address, notes string) (*Client, error) {
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Client name cannot be empty")
	}
	return &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		ContactPerson:     contactPerson,
		Email:             email,
		Phone:             phone,
		Address:           address,
		Notes:             notes,
	}, nil
}

// UpdateProfile replaces the client's contact details
func (c *Client) UpdateProfile(name, contactPerson, email, phone, address, notes string) error {
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Client name cannot be empty")
	}
	c.Name = name
	c.ContactPerson = contactPerson
	c.Email = email
	c.Phone = phone
	c.Address = address
	c.Notes = notes
	c.UpdatedAt = time.Now()
	return nil
}
