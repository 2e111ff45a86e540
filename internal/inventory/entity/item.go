package entity

import "time"

// Item is a stocked inventory entry.
type Item struct {
	ID           int64
	Name         string
	Brand        string
	CategoryID   int64
	CategoryName string
	Source       SourceType
	Destination  *string
	Quantity     int64
	Description  *string
	ExpiryDate   *time.Time
	UnitPrice    *float64
	ModifiedBy   int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ItemListFilter narrows and pages the item listing.
type ItemListFilter struct {
	CategoryID int64
	Search     string
	Page       int32
	Limit      int32
}

// Summary aggregates the current inventory state.
type Summary struct {
	ItemCount        int64
	TotalQuantity    int64
	TotalValue       float64
	LowStockItems    []Item
	CountPerCategory map[string]int64
}
