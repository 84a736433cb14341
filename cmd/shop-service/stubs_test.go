package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	crt "github.com/dmolina/shop-service/internal/cart"
	itm "github.com/dmolina/shop-service/internal/item"
	mbr "github.com/dmolina/shop-service/internal/member"
	ord "github.com/dmolina/shop-service/internal/order"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}

//
// ---------- STUB REPOS (in memory) ----------
//

type stubMemberRepo struct {
	byID map[string]*mbr.Member
}

func newStubMemberRepo() *stubMemberRepo {
	return &stubMemberRepo{byID: make(map[string]*mbr.Member)}
}

func (s *stubMemberRepo) Create(ctx context.Context, m *mbr.Member) error {
	for _, ex := range s.byID {
		if ex.Email == m.Email {
			return mbr.ErrAlreadyExist
		}
	}
	cp := *m
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	s.byID[m.ID] = &cp
	return nil
}

func (s *stubMemberRepo) GetByID(ctx context.Context, id string) (*mbr.Member, error) {
	m, ok := s.byID[id]
	if !ok {
		return nil, mbr.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (s *stubMemberRepo) GetByEmail(ctx context.Context, email string) (*mbr.Member, error) {
	for _, m := range s.byID {
		if m.Email == email {
			cp := *m
			return &cp, nil
		}
	}
	return nil, mbr.ErrNotFound
}

type stubItemRepo struct {
	items map[string]*itm.Item
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[string]*itm.Item)}
}

func (s *stubItemRepo) add(name, price string, stock int) *itm.Item {
	it := &itm.Item{
		ID:         uuid.NewString(),
		Name:       name,
		Price:      price,
		Stock:      stock,
		SellStatus: itm.StatusSell,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	if stock == 0 {
		it.SellStatus = itm.StatusSoldOut
	}
	s.items[it.ID] = it
	return it
}

func (s *stubItemRepo) Create(ctx context.Context, it *itm.Item) error {
	if it.Name == "" || it.Price == "" || it.Stock < 0 {
		return fmt.Errorf("invalid")
	}
	cp := *it
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	s.items[it.ID] = &cp
	return nil
}

func (s *stubItemRepo) GetByID(ctx context.Context, id string) (*itm.Item, error) {
	it, ok := s.items[id]
	if !ok {
		return nil, itm.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (s *stubItemRepo) List(ctx context.Context, q itm.Query) ([]itm.Item, error) {
	out := make([]itm.Item, 0, len(s.items))
	for _, v := range s.items {
		if q.Q != "" && !containsFold(v.Name, q.Q) && !containsFold(v.Detail, q.Q) {
			continue
		}
		out = append(out, *v)
	}
	start := q.Offset
	if start > len(out) {
		return []itm.Item{}, nil
	}
	end := start + q.Limit
	if end > len(out) || q.Limit <= 0 {
		end = len(out)
	}
	return out[start:end], nil
}

func (s *stubItemRepo) Update(ctx context.Context, it *itm.Item, updatePrice bool) error {
	cur, ok := s.items[it.ID]
	if !ok {
		return itm.ErrNotFound
	}
	if it.Name != "" {
		cur.Name = it.Name
	}
	if it.Detail != "" {
		cur.Detail = it.Detail
	}
	if updatePrice {
		cur.Price = it.Price
	}
	cur.Stock = it.Stock
	cur.SellStatus = it.SellStatus
	cur.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *stubItemRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

type stubCartRepo struct {
	items *stubItemRepo
	carts map[string]*crt.Cart // keyed by member id
	lines map[string]*crt.CartItem
}

func newStubCartRepo(items *stubItemRepo) *stubCartRepo {
	return &stubCartRepo{
		items: items,
		carts: make(map[string]*crt.Cart),
		lines: make(map[string]*crt.CartItem),
	}
}

func (s *stubCartRepo) GetOrCreate(ctx context.Context, memberID string) (*crt.Cart, error) {
	if c, ok := s.carts[memberID]; ok {
		cp := *c
		return &cp, nil
	}
	c := &crt.Cart{ID: uuid.NewString(), MemberID: memberID, CreatedAt: time.Now().UTC()}
	s.carts[memberID] = c
	cp := *c
	return &cp, nil
}

func (s *stubCartRepo) AddItem(ctx context.Context, cartID, itemID string, qty int) (*crt.CartItem, error) {
	for _, l := range s.lines {
		if l.CartID == cartID && l.ItemID == itemID {
			l.Quantity += qty
			cp := *l
			return &cp, nil
		}
	}
	l := &crt.CartItem{
		ID:        uuid.NewString(),
		CartID:    cartID,
		ItemID:    itemID,
		Quantity:  qty,
		CreatedAt: time.Now().UTC(),
	}
	s.lines[l.ID] = l
	cp := *l
	return &cp, nil
}

func (s *stubCartRepo) GetLine(ctx context.Context, lineID string) (*crt.CartItem, error) {
	l, ok := s.lines[lineID]
	if !ok {
		return nil, crt.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (s *stubCartRepo) ListLines(ctx context.Context, cartID string) ([]crt.Line, error) {
	var out []crt.Line
	for _, l := range s.lines {
		if l.CartID != cartID {
			continue
		}
		it, ok := s.items.items[l.ItemID]
		if !ok {
			continue
		}
		out = append(out, crt.Line{CartItem: *l, ItemName: it.Name, UnitPrice: it.Price})
	}
	return out, nil
}

func (s *stubCartRepo) UpdateQuantity(ctx context.Context, lineID string, qty int) error {
	l, ok := s.lines[lineID]
	if !ok {
		return crt.ErrNotFound
	}
	l.Quantity = qty
	return nil
}

func (s *stubCartRepo) DeleteLine(ctx context.Context, lineID string) (bool, error) {
	if _, ok := s.lines[lineID]; !ok {
		return false, nil
	}
	delete(s.lines, lineID)
	return true, nil
}

// stubOrderRepo mirrors the transactional semantics of the Postgres repo:
// Create decrements stock or rejects, Cancel restores it.
type stubOrderRepo struct {
	items  *stubItemRepo
	orders map[string]*ord.Order
	lines  map[string][]ord.Item // keyed by order id
}

func newStubOrderRepo(items *stubItemRepo) *stubOrderRepo {
	return &stubOrderRepo{
		items:  items,
		orders: make(map[string]*ord.Order),
		lines:  make(map[string][]ord.Item),
	}
}

func (s *stubOrderRepo) Create(ctx context.Context, o *ord.Order, items []ord.Item) error {
	for _, it := range items {
		cur, ok := s.items.items[it.ItemID]
		if !ok || cur.Stock < it.Quantity {
			return ord.ErrOutOfStock
		}
	}
	for _, it := range items {
		cur := s.items.items[it.ItemID]
		cur.Stock -= it.Quantity
		if cur.Stock == 0 {
			cur.SellStatus = itm.StatusSoldOut
		}
	}
	cp := *o
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	s.orders[o.ID] = &cp
	ls := make([]ord.Item, len(items))
	copy(ls, items)
	for i := range ls {
		ls[i].OrderID = o.ID
	}
	s.lines[o.ID] = ls
	return nil
}

func (s *stubOrderRepo) GetByID(ctx context.Context, id string) (*ord.Order, []ord.Item, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, nil, ord.ErrNotFound
	}
	cp := *o
	return &cp, append([]ord.Item(nil), s.lines[id]...), nil
}

func (s *stubOrderRepo) ListByMember(ctx context.Context, memberID string, limit, offset int) ([]ord.Order, error) {
	var out []ord.Order
	for _, o := range s.orders {
		if o.MemberID == memberID {
			out = append(out, *o)
		}
	}
	// newest first, like the ORDER BY order_date DESC in the real repo
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.After(out[j].OrderDate) })
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(out) {
		return []ord.Order{}, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (s *stubOrderRepo) GetItems(ctx context.Context, orderID string) ([]ord.Item, error) {
	return append([]ord.Item(nil), s.lines[orderID]...), nil
}

func (s *stubOrderRepo) Cancel(ctx context.Context, id string) error {
	o, ok := s.orders[id]
	if !ok {
		return ord.ErrNotFound
	}
	if o.Status != ord.StatusOrder {
		return ord.ErrAlreadyCancelled
	}
	for _, l := range s.lines[id] {
		if cur, ok := s.items.items[l.ItemID]; ok {
			cur.Stock += l.Quantity
			cur.SellStatus = itm.StatusSell
		}
	}
	o.Status = ord.StatusCancel
	return nil
}
