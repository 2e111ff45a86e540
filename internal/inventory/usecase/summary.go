package usecase

import (
	"context"
	"log/slog"

	"github.com/samber/lo"
	"github.com/shelfwise/shelfwise/internal/inventory/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

type SummaryOutput struct {
	Summary entity.Summary
}

func (s *Usecase) Summary(ctx context.Context) (*SummaryOutput, error) {
	ctx, span := s.startSpan(ctx, "Summary")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "summary", "read"); err != nil {
		return nil, err
	}

	items, err := s.repoDB.GetActiveItems(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get active items", "error", err)
		return nil, goerror.NewServer(err)
	}

	threshold := s.cfg.GetInt64("modules.inventory.low_stock_threshold")

	totalQuantity := lo.SumBy(items, func(item entity.Item) int64 {
		return item.Quantity
	})

	totalValue := lo.SumBy(items, func(item entity.Item) float64 {
		if item.UnitPrice == nil {
			return 0
		}
		return *item.UnitPrice * float64(item.Quantity)
	})

	lowStock := lo.Filter(items, func(item entity.Item, _ int) bool {
		return item.Quantity < threshold
	})

	perCategory := lo.CountValuesBy(items, func(item entity.Item) string {
		return item.CategoryName
	})

	return &SummaryOutput{Summary: entity.Summary{
		ItemCount:        int64(len(items)),
		TotalQuantity:    totalQuantity,
		TotalValue:       totalValue,
		LowStockItems:    lowStock,
		CountPerCategory: lo.MapValues(perCategory, func(v int, _ string) int64 { return int64(v) }),
	}}, nil
}
