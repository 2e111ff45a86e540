package entity

import "time"

// Category groups inventory items. Names are unique.
type Category struct {
	ID        int64
	Name      string
	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
