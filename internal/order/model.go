package order

import "time"

const (
	StatusOrder  = "ORDER"
	StatusCancel = "CANCEL"
)

type Order struct {
	ID       string `json:"id"`
	MemberID string `json:"member_id"`
	Status   string `json:"status"`
	Total    string `json:"total"` // NUMERIC -> string
	// OrderDate is when the order was placed, kept apart from the row
	// timestamps.
	OrderDate time.Time `json:"order_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Item struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	// Price is the unit price frozen at order time.
	Price string `json:"price"`
}
