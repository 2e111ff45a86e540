package inbound

import (
	"net/http"
	"time"

	"github.com/shelfwise/shelfwise/internal/inventory/entity"
)

// CategoryPayload is the JSON shape of a category in responses.
type CategoryPayload struct {
	ID   int64  `json:"id,string" example:"1915338883719495681"`
	Name string `json:"name" example:"Beverages"`
}

func newCategoryPayload(category entity.Category) CategoryPayload {
	return CategoryPayload{
		ID:   category.ID,
		Name: category.Name,
	}
}

// ItemPayload is the JSON shape of an item in responses.
type ItemPayload struct {
	ID           int64      `json:"id,string" example:"1915338883719495682"`
	Name         string     `json:"name" example:"Sparkling Water"`
	Brand        string     `json:"brand,omitempty" example:"Aqua"`
	CategoryID   int64      `json:"category_id,string"`
	CategoryName string     `json:"category_name,omitempty" example:"Beverages"`
	Source       string     `json:"source" example:"purchase"`
	Destination  *string    `json:"destination,omitempty"`
	Quantity     int64      `json:"quantity" example:"12"`
	Description  *string    `json:"description,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	UnitPrice    *float64   `json:"unit_price,omitempty"`
}

func newItemPayload(item entity.Item) ItemPayload {
	return ItemPayload{
		ID:           item.ID,
		Name:         item.Name,
		Brand:        item.Brand,
		CategoryID:   item.CategoryID,
		CategoryName: item.CategoryName,
		Source:       item.Source.String(),
		Destination:  item.Destination,
		Quantity:     item.Quantity,
		Description:  item.Description,
		ExpiryDate:   item.ExpiryDate,
		UnitPrice:    item.UnitPrice,
	}
}

type CategoryListResponse struct {
	Categories []CategoryPayload `json:"categories"`
}

type CategoryCreateRequest struct {
	Name string `json:"name" example:"Beverages"`
}

type CategoryCreateResponse struct {
	Message  string          `json:"message" example:"Category created successfully"`
	Category CategoryPayload `json:"category"`
}

// StatusCode marks category creation responses as 201.
func (CategoryCreateResponse) StatusCode() int {
	return http.StatusCreated
}

type CategoryUpdateRequest struct {
	Name string `json:"name" example:"Beverages"`
}

type CategoryUpdateResponse struct {
	Message string `json:"message" example:"Category updated successfully"`
}

type ItemListResponse struct {
	Items []ItemPayload `json:"items"`
	Total int64         `json:"total"`
}

type ItemRequest struct {
	Name        string     `json:"name" example:"Sparkling Water"`
	Brand       string     `json:"brand" example:"Aqua"`
	CategoryID  int64      `json:"category_id,string"`
	Source      string     `json:"source" example:"purchase"`
	Destination *string    `json:"destination"`
	Quantity    int64      `json:"quantity" example:"12"`
	Description *string    `json:"description"`
	ExpiryDate  *time.Time `json:"expiry_date"`
	UnitPrice   *float64   `json:"unit_price"`
}

type ItemCreateResponse struct {
	Message string      `json:"message" example:"Item created successfully"`
	Item    ItemPayload `json:"item"`
}

// StatusCode marks item creation responses as 201.
func (ItemCreateResponse) StatusCode() int {
	return http.StatusCreated
}

type ItemUpdateResponse struct {
	Message string `json:"message" example:"Item updated successfully"`
}

type SummaryResponse struct {
	ItemCount        int64            `json:"item_count"`
	TotalQuantity    int64            `json:"total_quantity"`
	TotalValue       float64          `json:"total_value"`
	LowStockItems    []ItemPayload    `json:"low_stock_items"`
	CountPerCategory map[string]int64 `json:"count_per_category"`
}
