package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/opsportal/backend/internal/application/inventory"
)

// InventoryHandler handles inventory API endpoints: items, the movement
// log and material usage records
type InventoryHandler struct {
	BaseHandler
	itemService     *inventoryapp.ItemService
	movementService *inventoryapp.MovementService
	usageService    *inventoryapp.UsageService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(itemService *inventoryapp.ItemService, movementService *inventoryapp.MovementService,
	usageService *inventoryapp.UsageService) *InventoryHandler {
	return &InventoryHandler{
		itemService:     itemService,
		movementService: movementService,
		usageService:    usageService,
	}
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inventory := rg.Group("/inventory")
	{
		items := inventory.Group("/items")
		{
			items.POST("", h.CreateItem)
			items.GET("", h.ListItems)
			items.GET("/:id", h.GetItem)
			items.PUT("/:id", h.UpdateItem)
			items.DELETE("/:id", h.DeleteItem)
		}

		movements := inventory.Group("/movements")
		{
			movements.POST("", h.RecordMovement)
			movements.GET("", h.ListMovements)
		}

		usages := inventory.Group("/usages")
		{
			usages.POST("", h.RecordUsage)
			usages.DELETE("/:id", h.DeleteUsage)
		}
	}

	// usages are usually browsed per order
	rg.GET("/orders/:id/usages", h.ListUsagesByOrder)
}

// CreateItem creates a new inventory item
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req inventoryapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// GetItem retrieves an inventory item
func (h *InventoryHandler) GetItem(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	item, err := h.itemService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// ListItems retrieves inventory items with filtering and pagination
func (h *InventoryHandler) ListItems(c *gin.Context) {
	var filter inventoryapp.ItemListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	items, total, err := h.itemService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// UpdateItem updates an inventory item
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	var req inventoryapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// DeleteItem removes an inventory item
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RecordMovement appends an entry to the movement log
func (h *InventoryHandler) RecordMovement(c *gin.Context) {
	var req inventoryapp.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	movement, err := h.movementService.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, movement)
}

// ListMovements retrieves movement log entries
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	var filter inventoryapp.MovementListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	movements, err := h.movementService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, movements)
}

// RecordUsage records material consumed for an order
func (h *InventoryHandler) RecordUsage(c *gin.Context) {
	var req inventoryapp.RecordUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	usage, err := h.usageService.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, usage)
}

// ListUsagesByOrder retrieves the usage records of one order
func (h *InventoryHandler) ListUsagesByOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	usages, err := h.usageService.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, usages)
}

// DeleteUsage removes a material usage record
func (h *InventoryHandler) DeleteUsage(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid usage ID format")
		return
	}

	if err := h.usageService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
