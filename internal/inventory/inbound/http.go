package inbound

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/inventory/usecase"
	"github.com/shelfwise/shelfwise/internal/pkg/router"
)

type uc interface {
	CategoryList(ctx context.Context) (*usecase.CategoryListOutput, error)
	CategoryCreate(ctx context.Context, in usecase.CategoryCreateInput) (*usecase.CategoryCreateOutput, error)
	CategoryUpdate(ctx context.Context, in usecase.CategoryUpdateInput) error
	CategoryDelete(ctx context.Context, in usecase.CategoryDeleteInput) error

	ItemList(ctx context.Context, in usecase.ItemListInput) (*usecase.ItemListOutput, error)
	ItemCreate(ctx context.Context, in usecase.ItemCreateInput) (*usecase.ItemCreateOutput, error)
	ItemUpdate(ctx context.Context, in usecase.ItemUpdateInput) error
	ItemDelete(ctx context.Context, in usecase.ItemDeleteInput) error

	Summary(ctx context.Context) (*usecase.SummaryOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Categories (need authenticated & authorization)
	r.GET("/api/v1/inventory/categories", end.CategoryList)
	r.POST("/api/v1/inventory/categories", end.CategoryCreate)
	r.PUT("/api/v1/inventory/categories/:id", end.CategoryUpdate)
	r.DELETE("/api/v1/inventory/categories/:id", end.CategoryDelete)

	// Items (need authenticated & authorization)
	r.GET("/api/v1/inventory/items", end.ItemList)
	r.POST("/api/v1/inventory/items", end.ItemCreate)
	r.PUT("/api/v1/inventory/items/:id", end.ItemUpdate)
	r.DELETE("/api/v1/inventory/items/:id", end.ItemDelete)

	// Summary (need authenticated)
	r.GET("/api/v1/inventory/summary", end.Summary)
}
