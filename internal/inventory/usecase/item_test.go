package usecase

import (
	"testing"

	"github.com/shelfwise/shelfwise/internal/inventory/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

func TestItemCreate(t *testing.T) {
	t.Run("UnknownCategory", func(t *testing.T) {
		deps := newTestDeps()
		uc := deps.build(t)

		_, err := uc.ItemCreate(authedCtx("user"), ItemCreateInput{
			Name:       "Sparkling Water",
			CategoryID: 99,
			Source:     "purchase",
			Quantity:   12,
		})
		assertErrCode(t, err, goerror.CodeNotFound)
	})

	t.Run("InvalidSource", func(t *testing.T) {
		deps := newTestDeps()
		uc := deps.build(t)

		_, err := uc.ItemCreate(authedCtx("user"), ItemCreateInput{
			Name:       "Sparkling Water",
			CategoryID: 1,
			Source:     "theft",
			Quantity:   12,
		})
		assertErrCode(t, err, goerror.CodeInvalidInput)
	})

	t.Run("SuccessWithoutStockAlert", func(t *testing.T) {
		deps := newTestDeps()
		deps.repoDB.categories = []entity.Category{{ID: 1, Name: "Beverages"}}
		uc := deps.build(t)

		out, err := uc.ItemCreate(authedCtx("user"), ItemCreateInput{
			Name:       "Sparkling Water",
			CategoryID: 1,
			Source:     "purchase",
			Quantity:   12,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Item.CategoryName != "Beverages" {
			t.Fatalf("expected category name denormalized, got %q", out.Item.CategoryName)
		}
		if out.Item.ModifiedBy != 7 {
			t.Fatalf("expected modifier from claims, got %d", out.Item.ModifiedBy)
		}
		if len(deps.messaging.published) != 0 {
			t.Fatalf("expected no stock low event above threshold, got %d", len(deps.messaging.published))
		}
	})

	t.Run("LowQuantityPublishesStockLow", func(t *testing.T) {
		deps := newTestDeps()
		deps.repoDB.categories = []entity.Category{{ID: 1, Name: "Beverages"}}
		uc := deps.build(t)

		out, err := uc.ItemCreate(authedCtx("user"), ItemCreateInput{
			Name:       "Espresso Beans",
			CategoryID: 1,
			Source:     "purchase",
			Quantity:   2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(deps.messaging.published) != 1 {
			t.Fatalf("expected one stock low event, got %d", len(deps.messaging.published))
		}
		evt := deps.messaging.published[0]
		if evt.ItemID != out.Item.ID || evt.Quantity != 2 || evt.Threshold != 5 {
			t.Fatalf("unexpected event: %+v", evt)
		}
	})

	t.Run("PublishFailureDoesNotFailCreate", func(t *testing.T) {
		deps := newTestDeps()
		deps.repoDB.categories = []entity.Category{{ID: 1, Name: "Beverages"}}
		deps.messaging.err = goerror.ErrConflict
		uc := deps.build(t)

		if _, err := uc.ItemCreate(authedCtx("user"), ItemCreateInput{
			Name:       "Espresso Beans",
			CategoryID: 1,
			Source:     "purchase",
			Quantity:   2,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
