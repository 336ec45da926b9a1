package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opsportal/backend/internal/domain/order"
	"github.com/opsportal/backend/internal/domain/partner"
	"github.com/opsportal/backend/internal/domain/shared"
	"github.com/opsportal/backend/internal/domain/shared/valueobject"
)

// OrderService handles order-related business operations
type OrderService struct {
	orderRepo  order.Repository
	clientRepo partner.Repository
	policy     order.TransitionPolicy
	eventBus   shared.EventBus
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo order.Repository, clientRepo partner.Repository, policy order.TransitionPolicy) *OrderService {
	if policy == nil {
		policy = order.PermissivePolicy{}
	}
	return &OrderService{
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
		policy:     policy,
	}
}

// SetEventBus wires an event bus for publishing order events
func (s *OrderService) SetEventBus(bus shared.EventBus) {
	s.eventBus = bus
}

// Create creates a new order for an existing client
func (s *OrderService) Create(ctx context.Context, actor shared.Actor, req CreateOrderRequest) (*OrderResponse, error) {
	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	o, err := s.buildOrder(actor, req.ClientID, req.Title, req.Description, req.Status, req.DueDate, req.Items)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, o)

	response := ToOrderResponse(o)
	return &response, nil
}

// Intake creates a new client and their first order atomically
func (s *OrderService) Intake(ctx context.Context, actor shared.Actor, req IntakeRequest) (*OrderResponse, error) {
	client, err := partner.NewClient(req.Client.Name, req.Client.ContactPerson, req.Client.Email,
		req.Client.Phone, req.Client.Address, req.Client.Notes)
	if err != nil {
		return nil, err
	}

	o, err := s.buildOrder(actor, client.GetID(), req.Order.Title, req.Order.Description,
		req.Order.Status, req.Order.DueDate, req.Order.Items)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithClient(ctx, client, o); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, o)

	response := ToOrderResponse(o)
	return &response, nil
}

// GetByID retrieves an order with its items
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// List retrieves orders with filtering and pagination
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.ClientID != nil {
		domainFilter.Filters["client_id"] = *filter.ClientID
	}
	if filter.Locked != nil {
		domainFilter.Filters["is_locked"] = *filter.Locked
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses, total, nil
}

// Update updates the order's header details
func (s *OrderService) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.UpdateDetails(actor, req.Title, req.Description, req.DueDate); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// ReplaceItems swaps the order's line items for the requested set.
// Lock and permission checks happen in the domain; a rejected request
// leaves the stored order untouched.
func (s *OrderService) ReplaceItems(ctx context.Context, actor shared.Actor, id uuid.UUID, req ReplaceItemsRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.ReplaceItems(actor, toItemInputs(req.Items)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, o)

	response := ToOrderResponse(o)
	return &response, nil
}

// ToggleLock flips the order's lock flag. Only actors holding the
// override capability may do this.
func (s *OrderService) ToggleLock(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.ToggleLock(actor); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, o)

	response := ToOrderResponse(o)
	return &response, nil
}

// ChangeStatus moves the order to a new status via the transition policy
func (s *OrderService) ChangeStatus(ctx context.Context, actor shared.Actor, id uuid.UUID, req ChangeStatusRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.ChangeStatus(actor, order.Status(req.Status), s.policy); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, o)

	response := ToOrderResponse(o)
	return &response, nil
}

// Delete removes an order with its items
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.orderRepo.Delete(ctx, id)
}

// Summary returns the dashboard rollup of orders per status
func (s *OrderService) Summary(ctx context.Context) (*SummaryResponse, error) {
	counts, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	summary := SummaryResponse{ByStatus: make([]StatusCountResponse, len(counts))}
	for i, c := range counts {
		summary.Total += c.Count
		summary.ByStatus[i] = StatusCountResponse{
			Status:        c.Status.String(),
			StatusDisplay: c.Status.DisplayName(),
			Count:         c.Count,
		}
	}
	return &summary, nil
}

func (s *OrderService) buildOrder(actor shared.Actor, clientID uuid.UUID, title, description, status string,
	dueDate *time.Time, items []ItemRequest) (*order.Order, error) {
	o, err := order.NewOrder(clientID, title, order.Status(status))
	if err != nil {
		return nil, err
	}
	if description != "" || dueDate != nil {
		if err := o.UpdateDetails(actor, title, description, dueDate); err != nil {
			return nil, err
		}
	}
	for _, item := range items {
		if _, err := o.AddItem(actor, item.Title, item.Quantity,
			valueobject.NewMoneyFromDecimal(item.UnitPrice), item.Comment); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (s *OrderService) publishEvents(ctx context.Context, o *order.Order) {
	if s.eventBus == nil {
		return
	}
	_ = s.eventBus.Publish(ctx, o.GetDomainEvents()...)
	o.ClearDomainEvents()
}
