package domain

import "time"

// Item is the domain entity for an inventory item.
// Name is unique across all items (enforced by the store).
type Item struct {
	ID          int64
	Name        string
	Quantity    int
	Price       float64
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemPatch carries a partial update. Nil fields keep their stored value.
type ItemPatch struct {
	Name        *string
	Quantity    *int
	Price       *float64
	Description *string
}
