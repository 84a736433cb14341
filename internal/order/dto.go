package order

// CreateOrderItem is one requested order line.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	ItemID   string `json:"item_id"  example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity int    `json:"quantity" example:"2"`
}

// CreateOrderRequest payload of a direct order.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Detail is an order with its lines as returned to the client.
type Detail struct {
	Order
	Items []Item `json:"items"`
}
