package inbound

import (
	"github.com/samber/lo"
	"github.com/shelfwise/shelfwise/internal/inventory/entity"
	"github.com/shelfwise/shelfwise/internal/inventory/usecase"
	"github.com/shelfwise/shelfwise/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for categories, items, and the stock
// summary.
type HTTPEndpoint struct {
	uc uc
}

// CategoryList lists all item categories.
// @Summary List categories
// @Tags Inventory, Categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CategoryListResponse "Categories"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/inventory/categories [get]
func (h *HTTPEndpoint) CategoryList(r *router.Request) (any, error) {
	out, err := h.uc.CategoryList(r.Context())
	if err != nil {
		return nil, err
	}

	return CategoryListResponse{
		Categories: lo.Map(out.Categories, func(c entity.Category, _ int) CategoryPayload {
			return newCategoryPayload(c)
		}),
	}, nil
}

// CategoryCreate creates a category; admin only.
// @Summary Create category
// @Tags Inventory, Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryCreateRequest true "Category payload"
// @Success 201 {object} CategoryCreateResponse "Created category"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 409 {object} router.errorResponse "Category already exists"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/inventory/categories [post]
func (h *HTTPEndpoint) CategoryCreate(r *router.Request) (any, error) {
	var req CategoryCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.CategoryCreate(r.Context(), usecase.CategoryCreateInput{Name: req.Name})
	if err != nil {
		return nil, err
	}

	return CategoryCreateResponse{
		Message:  "Category created successfully",
		Category: newCategoryPayload(out.Category),
	}, nil
}

// CategoryUpdate renames a category; admin only.
// @Summary Update category
// @Tags Inventory, Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body CategoryUpdateRequest true "Category payload"
// @Success 200 {object} CategoryUpdateResponse "Updated"
// @Failure 404 {object} router.errorResponse "Category not found"
// @Failure 409 {object} router.errorResponse "Category already exists"
// @Router /api/v1/inventory/categories/{id} [put]
func (h *HTTPEndpoint) CategoryUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req CategoryUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.CategoryUpdate(r.Context(), usecase.CategoryUpdateInput{ID: id, Name: req.Name}); err != nil {
		return nil, err
	}

	return CategoryUpdateResponse{Message: "Category updated successfully"}, nil
}

// CategoryDelete deletes a category that has no items; admin only.
// @Summary Delete category
// @Tags Inventory, Categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204 "Deleted"
// @Failure 404 {object} router.errorResponse "Category not found"
// @Failure 409 {object} router.errorResponse "Category still has items"
// @Router /api/v1/inventory/categories/{id} [delete]
func (h *HTTPEndpoint) CategoryDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.CategoryDelete(r.Context(), usecase.CategoryDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return nil, nil
}

// ItemList lists items, newest first, with optional category and search filters.
// @Summary List items
// @Tags Inventory, Items
// @Produce json
// @Security BearerAuth
// @Param category_id query string false "Filter by category ID"
// @Param search query string false "Match against name and brand"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} ItemListResponse "Items"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/inventory/items [get]
func (h *HTTPEndpoint) ItemList(r *router.Request) (any, error) {
	categoryID, err := r.GetQueryInt64("category_id")
	if err != nil {
		return nil, err
	}

	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	limit, err := r.GetQueryInt32("limit")
	if err != nil {
		return nil, err
	}

	out, err := h.uc.ItemList(r.Context(), usecase.ItemListInput{
		CategoryID: categoryID,
		Search:     r.GetQuery("search"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	return ItemListResponse{
		Items: lo.Map(out.Items, func(i entity.Item, _ int) ItemPayload {
			return newItemPayload(i)
		}),
		Total: out.Total,
	}, nil
}

// ItemCreate creates an inventory item.
// @Summary Create item
// @Tags Inventory, Items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ItemRequest true "Item payload"
// @Success 201 {object} ItemCreateResponse "Created item"
// @Failure 404 {object} router.errorResponse "Category not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/inventory/items [post]
func (h *HTTPEndpoint) ItemCreate(r *router.Request) (any, error) {
	var req ItemRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.ItemCreate(r.Context(), usecase.ItemCreateInput{
		Name:        req.Name,
		Brand:       req.Brand,
		CategoryID:  req.CategoryID,
		Source:      req.Source,
		Destination: req.Destination,
		Quantity:    req.Quantity,
		Description: req.Description,
		ExpiryDate:  req.ExpiryDate,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		return nil, err
	}

	return ItemCreateResponse{
		Message: "Item created successfully",
		Item:    newItemPayload(out.Item),
	}, nil
}

// ItemUpdate replaces an item's fields.
// @Summary Update item
// @Tags Inventory, Items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body ItemRequest true "Item payload"
// @Success 200 {object} ItemUpdateResponse "Updated"
// @Failure 404 {object} router.errorResponse "Item not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/inventory/items/{id} [put]
func (h *HTTPEndpoint) ItemUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req ItemRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.ItemUpdate(r.Context(), usecase.ItemUpdateInput{
		ID:          id,
		Name:        req.Name,
		Brand:       req.Brand,
		CategoryID:  req.CategoryID,
		Source:      req.Source,
		Destination: req.Destination,
		Quantity:    req.Quantity,
		Description: req.Description,
		ExpiryDate:  req.ExpiryDate,
		UnitPrice:   req.UnitPrice,
	}); err != nil {
		return nil, err
	}

	return ItemUpdateResponse{Message: "Item updated successfully"}, nil
}

// ItemDelete soft deletes an item.
// @Summary Delete item
// @Tags Inventory, Items
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "Deleted"
// @Failure 404 {object} router.errorResponse "Item not found"
// @Router /api/v1/inventory/items/{id} [delete]
func (h *HTTPEndpoint) ItemDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.ItemDelete(r.Context(), usecase.ItemDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return nil, nil
}

// Summary aggregates active items into stock totals.
// @Summary Inventory summary
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SummaryResponse "Stock summary"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/inventory/summary [get]
func (h *HTTPEndpoint) Summary(r *router.Request) (any, error) {
	out, err := h.uc.Summary(r.Context())
	if err != nil {
		return nil, err
	}

	return SummaryResponse{
		ItemCount:     out.Summary.ItemCount,
		TotalQuantity: out.Summary.TotalQuantity,
		TotalValue:    out.Summary.TotalValue,
		LowStockItems: lo.Map(out.Summary.LowStockItems, func(i entity.Item, _ int) ItemPayload {
			return newItemPayload(i)
		}),
		CountPerCategory: out.Summary.CountPerCategory,
	}, nil
}
