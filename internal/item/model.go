package item

import "time"

const (
	StatusSell    = "SELL"
	StatusSoldOut = "SOLD_OUT"
)

type Item struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
	// We store price as a string to avoid rounding errors (NUMERIC in Postgres)
	Price      string    `json:"price"`
	Stock      int       `json:"stock"`
	SellStatus string    `json:"sell_status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ListResponse represents the paginated catalog response.
// swagger:model
type ListResponse struct {
	// search query applied
	Q string `json:"q,omitempty"`
	// limit applied
	Limit int `json:"limit"`
	// offset applied
	Offset int `json:"offset"`
	// items found
	Items []Item `json:"items"`
}

// CreateItemRequest payload of item creation.
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	Name   string `json:"name"   example:"Mechanical Keyboard"`
	Detail string `json:"detail" example:"RGB 60%"`
	Price  string `json:"price"  example:"199.90"`
	Stock  int    `json:"stock"  example:"10"`
}

// UpdateItemRequest payload of partial update.
// swagger:model UpdateItemRequest
type UpdateItemRequest struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
	Price  string `json:"price"`
	Stock  *int   `json:"stock"`
}
