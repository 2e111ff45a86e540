package usecase

import (
	"context"
	"testing"

	"github.com/shelfwise/shelfwise/internal/inventory/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

func TestSummary(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		deps := newTestDeps()
		uc := deps.build(t)

		_, err := uc.Summary(context.Background())
		assertErrCode(t, err, goerror.CodeUnauthorized)
	})

	t.Run("Aggregates", func(t *testing.T) {
		deps := newTestDeps()
		deps.repoDB.activeItems = []entity.Item{
			{ID: 1, Name: "Sparkling Water", CategoryName: "Beverages", Quantity: 12, UnitPrice: floatPtr(2.5)},
			{ID: 2, Name: "Espresso Beans", CategoryName: "Beverages", Quantity: 3, UnitPrice: floatPtr(10)},
			{ID: 3, Name: "Paper Towels", CategoryName: "Supplies", Quantity: 40},
		}
		uc := deps.build(t)

		out, err := uc.Summary(authedCtx("user"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		sum := out.Summary
		if sum.ItemCount != 3 {
			t.Fatalf("expected 3 items, got %d", sum.ItemCount)
		}
		if sum.TotalQuantity != 55 {
			t.Fatalf("expected total quantity 55, got %d", sum.TotalQuantity)
		}
		// Items without a unit price contribute zero to the value.
		if sum.TotalValue != 12*2.5+3*10 {
			t.Fatalf("expected total value 60, got %v", sum.TotalValue)
		}
		if len(sum.LowStockItems) != 1 || sum.LowStockItems[0].ID != 2 {
			t.Fatalf("expected only item 2 low on stock, got %v", sum.LowStockItems)
		}
		if sum.CountPerCategory["Beverages"] != 2 || sum.CountPerCategory["Supplies"] != 1 {
			t.Fatalf("unexpected per-category counts: %v", sum.CountPerCategory)
		}
	})

	t.Run("EmptyInventory", func(t *testing.T) {
		deps := newTestDeps()
		uc := deps.build(t)

		out, err := uc.Summary(authedCtx("admin"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Summary.ItemCount != 0 || out.Summary.TotalQuantity != 0 || out.Summary.TotalValue != 0 {
			t.Fatalf("expected zeroed summary, got %+v", out.Summary)
		}
	})
}
