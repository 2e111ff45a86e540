package inbound

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/notification/usecase"
)

type uc interface {
	ConsumeStockLow(ctx context.Context, in usecase.ConsumeStockLowInput) error
}
