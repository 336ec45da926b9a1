package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/opsportal/backend/internal/domain/shared"
)

// BaseUnit is the unit an item's stock is counted in. The set is open;
// these are the values the portal ships with.
type BaseUnit string

const (
	UnitMeter       BaseUnit = "m"
	UnitPiece       BaseUnit = "pcs"
	UnitSheet       BaseUnit = "sheet"
	UnitSquareMeter BaseUnit = "sqm"
)

// IsKnown reports whether the unit belongs to the built-in catalogue
func (u BaseUnit) IsKnown() bool {
	switch u {
	case UnitMeter, UnitPiece, UnitSheet, UnitSquareMeter:
		return true
	}
	return false
}

// Item is the aggregate root for a stocked material or product.
// QuantityOnHand is maintained by hand; the movement log records intent
// but does not drive the balance.
type Item struct {
	shared.BaseAggregateRoot
	SKU              string
	Name             string
	Category         string
	BaseUnit         BaseUnit
	PackageSize      *decimal.Decimal // units per package, nil when the item is not packaged
	PackageUnitLabel string
	DefaultUnitPrice decimal.Decimal
	QuantityOnHand   decimal.Decimal
	Location         string
	Notes            string
}

// NewItem creates a new inventory item
func NewItem(sku, name, category string, baseUnit BaseUnit) (*Item, error) {
	if sku == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "SKU cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Item name cannot be empty")
	}
	if baseUnit == "" {
		baseUnit = UnitPiece
	}
	return &Item{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SKU:               sku,
		Name:              name,
		Category:          category,
		BaseUnit:          baseUnit,
		DefaultUnitPrice:  decimal.Zero,
		QuantityOnHand:    decimal.Zero,
	}, nil
}

// SetPackaging configures the package size and label.
// A nil or zero size clears packaging.
func (i *Item) SetPackaging(size *decimal.Decimal, label string) error {
	if size != nil && size.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Package size cannot be negative")
	}
	if size != nil && size.IsZero() {
		size = nil
	}
	i.PackageSize = size
	i.PackageUnitLabel = label
	i.UpdatedAt = time.Now()
	return nil
}

// SetDefaultUnitPrice sets the price suggested to the calculator
func (i *Item) SetDefaultUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Unit price cannot be negative")
	}
	i.DefaultUnitPrice = price
	i.UpdatedAt = time.Now()
	return nil
}

// SetQuantityOnHand overwrites the stock balance
func (i *Item) SetQuantityOnHand(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Quantity on hand cannot be negative")
	}
	i.QuantityOnHand = quantity
	i.UpdatedAt = time.Now()
	return nil
}

// Update replaces the item's descriptive fields
func (i *Item) Update(name, category string, baseUnit BaseUnit, location, notes string) error {
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Item name cannot be empty")
	}
	if baseUnit == "" {
		baseUnit = i.BaseUnit
	}
	i.Name = name
	i.Category = category
	i.BaseUnit = baseUnit
	i.Location = location
	i.Notes = notes
	i.UpdatedAt = time.Now()
	return nil
}

// PackageCount returns how many packages the current stock represents.
// ok is false when the item has no package size, meaning the figure is
// not applicable rather than zero.
func (i *Item) PackageCount() (decimal.Decimal, bool) {
	if i.PackageSize == nil || i.PackageSize.IsZero() {
		return decimal.Zero, false
	}
	return i.QuantityOnHand.Div(*i.PackageSize), true
}
