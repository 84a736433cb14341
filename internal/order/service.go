package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmolina/shop-service/internal/cart"
	"github.com/dmolina/shop-service/internal/item"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrEmptyOrder      = errors.New("order has no items")
	ErrForbidden       = errors.New("not your order")
)

// Service implements ordering on top of the order, item and cart
// repositories. Prices are frozen on the order line at order time.
type Service struct {
	orders Repository
	items  item.Repository
	carts  cart.Repository
}

func NewService(orders Repository, items item.Repository, carts cart.Repository) *Service {
	return &Service{orders: orders, items: items, carts: carts}
}

// Place creates one order from the requested lines. Each line re-reads the
// catalog item so the frozen unit price is current, and an over-stock
// quantity fails the whole order.
func (s *Service) Place(ctx context.Context, memberID string, lines []CreateOrderItem) (*Detail, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	total := decimal.Zero
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		it, err := s.items.GetByID(ctx, l.ItemID)
		if err != nil {
			return nil, err
		}
		if l.Quantity > it.Stock {
			return nil, ErrOutOfStock
		}
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			return nil, err
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		items = append(items, Item{
			ID:       uuid.NewString(),
			ItemID:   it.ID,
			Quantity: l.Quantity,
			Price:    it.Price,
		})
	}

	o := &Order{
		ID:        uuid.NewString(),
		MemberID:  memberID,
		Status:    StatusOrder,
		Total:     total.StringFixed(2),
		OrderDate: time.Now().UTC(),
	}
	if err := s.orders.Create(ctx, o, items); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].OrderID = o.ID
	}
	return &Detail{Order: *o, Items: items}, nil
}

// PlaceFromCart checks out the given cart lines of the member into one
// order and removes them from the cart afterwards.
func (s *Service) PlaceFromCart(ctx context.Context, memberID string, cartItemIDs []string) (*Detail, error) {
	if len(cartItemIDs) == 0 {
		return nil, ErrEmptyOrder
	}
	c, err := s.carts.GetOrCreate(ctx, memberID)
	if err != nil {
		return nil, err
	}
	// a repeated id must not order (or delete) the same line twice
	seen := make(map[string]struct{}, len(cartItemIDs))
	ids := make([]string, 0, len(cartItemIDs))
	for _, id := range cartItemIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	lines := make([]CreateOrderItem, 0, len(ids))
	for _, id := range ids {
		ci, err := s.carts.GetLine(ctx, id)
		if err != nil {
			return nil, err
		}
		if ci.CartID != c.ID {
			return nil, ErrForbidden
		}
		lines = append(lines, CreateOrderItem{ItemID: ci.ItemID, Quantity: ci.Quantity})
	}

	d, err := s.Place(ctx, memberID, lines)
	if err != nil {
		return nil, err
	}

	// Ordered lines leave the cart. Failing here leaves stale cart lines
	// but the order stands.
	for _, id := range ids {
		if _, err := s.carts.DeleteLine(ctx, id); err != nil {
			return d, err
		}
	}
	return d, nil
}

// Get returns one order with its items, owner only.
func (s *Service) Get(ctx context.Context, memberID, orderID string) (*Detail, error) {
	o, items, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.MemberID != memberID {
		return nil, ErrForbidden
	}
	return &Detail{Order: *o, Items: items}, nil
}

// History lists the member's orders, newest first, items included.
func (s *Service) History(ctx context.Context, memberID string, limit, offset int) ([]Detail, error) {
	orders, err := s.orders.ListByMember(ctx, memberID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]Detail, 0, len(orders))
	for _, o := range orders {
		items, err := s.orders.GetItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, Detail{Order: o, Items: items})
	}
	return out, nil
}

// Cancel cancels the member's own order and restores stock.
func (s *Service) Cancel(ctx context.Context, memberID, orderID string) error {
	o, _, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.MemberID != memberID {
		return ErrForbidden
	}
	return s.orders.Cancel(ctx, orderID)
}
