package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/opsportal/backend/internal/domain/shared"
)

// Repository persists clients. Delete cascades to the client's orders.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)
	Save(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
