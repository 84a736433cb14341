package cart

import "time"

// Cart holds the open shopping cart of a member. One per member, created
// lazily on first use.
type Cart struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"member_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CartItem struct {
	ID        string    `json:"id"`
	CartID    string    `json:"cart_id"`
	ItemID    string    `json:"item_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Line is a cart item joined with its catalog data for display.
type Line struct {
	CartItem
	ItemName  string `json:"item_name"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

// AddItemRequest payload of adding an item to the cart.
// swagger:model AddItemRequest
type AddItemRequest struct {
	ItemID   string `json:"item_id"  example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity int    `json:"quantity" example:"2"`
}

// UpdateItemRequest payload of changing a cart line quantity.
// swagger:model UpdateCartItemRequest
type UpdateItemRequest struct {
	Quantity int `json:"quantity" example:"3"`
}

// CheckoutRequest selects cart lines to turn into an order.
// swagger:model CheckoutRequest
type CheckoutRequest struct {
	CartItemIDs []string `json:"cart_item_ids"`
}

// View is the cart as returned to the client.
type View struct {
	CartID string `json:"cart_id"`
	Lines  []Line `json:"lines"`
	Total  string `json:"total"`
}
