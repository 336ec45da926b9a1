package pricing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsportal/backend/internal/domain/inventory"
	"github.com/opsportal/backend/internal/domain/shared"
)

type stubItemLookup struct {
	items map[uuid.UUID]*inventory.Item
}

func (s *stubItemLookup) FindByID(_ context.Context, id uuid.UUID) (*inventory.Item, error) {
	if item, ok := s.items[id]; ok {
		return item, nil
	}
	return nil, shared.ErrNotFound
}

func newStubLookup(t *testing.T) (*stubItemLookup, *inventory.Item) {
	t.Helper()
	item, err := inventory.NewItem("MDF-18", "MDF board 18mm", "boards", inventory.UnitSheet)
	require.NoError(t, err)
	require.NoError(t, item.SetDefaultUnitPrice(decimal.RequireFromString("20")))
	size := decimal.NewFromInt(4)
	require.NoError(t, item.SetPackaging(&size, "pallet"))
	return &stubItemLookup{items: map[uuid.UUID]*inventory.Item{item.ID: item}}, item
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculatorCompute(t *testing.T) {
	ctx := context.Background()

	t.Run("empty input yields zeros", func(t *testing.T) {
		calc := NewCalculator(nil)
		res, err := calc.Compute(ctx, Input{MarginPercent: dec("10")})
		require.NoError(t, err)
		assert.Empty(t, res.Lines)
		assert.True(t, res.Subtotal.IsZero())
		assert.True(t, res.PercentAmount.IsZero())
		assert.True(t, res.GrandTotal.IsZero())
	})

	t.Run("margin math on worked example", func(t *testing.T) {
		calc := NewCalculator(nil)
		res, err := calc.Compute(ctx, Input{
			MarginPercent: dec("10"),
			Entries: []LineEntry{
				{Description: "Worktop", Quantity: dec("2"), UnitPrice: dec("20")},
				{Description: "Hinges", Quantity: dec("7"), UnitPrice: dec("2.50")},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "57.5", res.Subtotal.String())
		assert.Equal(t, "5.75", res.PercentAmount.String())
		assert.Equal(t, "63.25", res.GrandTotal.String())
	})

	t.Run("deleted entries are skipped", func(t *testing.T) {
		calc := NewCalculator(nil)
		res, err := calc.Compute(ctx, Input{
			Entries: []LineEntry{
				{Description: "Worktop", Quantity: dec("2"), UnitPrice: dec("20")},
				{Description: "Removed", Quantity: dec("100"), UnitPrice: dec("100"), Deleted: true},
			},
		})
		require.NoError(t, err)
		require.Len(t, res.Lines, 1)
		assert.Equal(t, "40", res.Subtotal.String())
	})

	t.Run("zero margin adds nothing", func(t *testing.T) {
		calc := NewCalculator(nil)
		res, err := calc.Compute(ctx, Input{
			Entries: []LineEntry{{Description: "Worktop", Quantity: dec("3"), UnitPrice: dec("9.99")}},
		})
		require.NoError(t, err)
		assert.Equal(t, "29.97", res.Subtotal.String())
		assert.True(t, res.GrandTotal.Equal(res.Subtotal))
	})

	t.Run("exact decimals avoid float drift", func(t *testing.T) {
		calc := NewCalculator(nil)
		res, err := calc.Compute(ctx, Input{
			Entries: []LineEntry{{Description: "Edging", Quantity: dec("0.1"), UnitPrice: dec("0.3")}},
		})
		require.NoError(t, err)
		assert.Equal(t, "0.03", res.Subtotal.String())
	})

	t.Run("negative margin rejected", func(t *testing.T) {
		calc := NewCalculator(nil)
		_, err := calc.Compute(ctx, Input{MarginPercent: dec("-1")})
		assert.Error(t, err)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		calc := NewCalculator(nil)
		_, err := calc.Compute(ctx, Input{
			Entries: []LineEntry{{Description: "Worktop", Quantity: dec("-1"), UnitPrice: dec("5")}},
		})
		assert.Error(t, err)
	})
}

func TestCalculatorItemAutofill(t *testing.T) {
	ctx := context.Background()

	t.Run("blank description fills from item name", func(t *testing.T) {
		lookup, item := newStubLookup(t)
		calc := NewCalculator(lookup)

		res, err := calc.Compute(ctx, Input{
			Entries: []LineEntry{{ItemID: &item.ID, Quantity: dec("2"), UnitPrice: dec("15")}},
		})
		require.NoError(t, err)
		require.Len(t, res.Lines, 1)
		assert.Equal(t, "MDF board 18mm", res.Lines[0].Description)
		assert.Equal(t, "30", res.Lines[0].LineTotal.String())
	})

	t.Run("zero unit price stays zero despite the item default", func(t *testing.T) {
		lookup, item := newStubLookup(t)
		calc := NewCalculator(lookup)

		res, err := calc.Compute(ctx, Input{
			Entries: []LineEntry{{ItemID: &item.ID, Quantity: dec("2"), UnitPrice: dec("0")}},
		})
		require.NoError(t, err)
		require.Len(t, res.Lines, 1)
		assert.Equal(t, "0", res.Lines[0].UnitPrice.String())
		assert.Equal(t, "0", res.Lines[0].LineTotal.String())
		assert.True(t, res.Subtotal.IsZero())
	})

	t.Run("explicit description wins over item name", func(t *testing.T) {
		lookup, item := newStubLookup(t)
		calc := NewCalculator(lookup)

		res, err := calc.Compute(ctx, Input{
			Entries: []LineEntry{{ItemID: &item.ID, Description: "Custom cut MDF", Quantity: dec("1"), UnitPrice: dec("25")}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Custom cut MDF", res.Lines[0].Description)
		assert.Equal(t, "25", res.Lines[0].UnitPrice.String())
	})

	t.Run("package usage reported for packaged items", func(t *testing.T) {
		lookup, item := newStubLookup(t)
		calc := NewCalculator(lookup)

		res, err := calc.Compute(ctx, Input{
			Entries: []LineEntry{{ItemID: &item.ID, Quantity: dec("10")}},
		})
		require.NoError(t, err)
		require.NotNil(t, res.Lines[0].PackageCount)
		assert.Equal(t, "2.5", res.Lines[0].PackageCount.String())
		assert.Equal(t, "pallet", res.Lines[0].PackageLabel)
	})

	t.Run("no package usage for unpackaged items", func(t *testing.T) {
		lookup, item := newStubLookup(t)
		require.NoError(t, item.SetPackaging(nil, ""))
		calc := NewCalculator(lookup)

		res, err := calc.Compute(ctx, Input{
			Entries: []LineEntry{{ItemID: &item.ID, Quantity: dec("10")}},
		})
		require.NoError(t, err)
		assert.Nil(t, res.Lines[0].PackageCount)
	})

	t.Run("unknown item fails", func(t *testing.T) {
		lookup, _ := newStubLookup(t)
		calc := NewCalculator(lookup)
		stray := uuid.New()

		_, err := calc.Compute(ctx, Input{
			Entries: []LineEntry{{ItemID: &stray, Quantity: dec("1")}},
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("blank description without item fails", func(t *testing.T) {
		calc := NewCalculator(nil)
		_, err := calc.Compute(ctx, Input{
			Entries: []LineEntry{{Quantity: dec("1"), UnitPrice: dec("5")}},
		})
		assert.Error(t, err)
	})
}
