package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound         = errors.New("order not found")
	ErrOutOfStock       = errors.New("out of stock")
	ErrAlreadyCancelled = errors.New("order already cancelled")
)

type Repository interface {
	Create(ctx context.Context, o *Order, items []Item) error
	GetByID(ctx context.Context, id string) (*Order, []Item, error)
	ListByMember(ctx context.Context, memberID string, limit, offset int) ([]Order, error)
	GetItems(ctx context.Context, orderID string) ([]Item, error)
	Cancel(ctx context.Context, id string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Create persists the order and its items, decrementing item stock in the
// same transaction. A line whose quantity exceeds the remaining stock
// aborts the whole order with ErrOutOfStock.
func (r *PGRepo) Create(ctx context.Context, o *Order, items []Item) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, it := range items {
		tag, err := tx.Exec(ctx, `
			UPDATE items
			SET stock = stock - $2,
			    sell_status = CASE WHEN stock - $2 = 0 THEN 'SOLD_OUT' ELSE 'SELL' END,
			    updated_at = NOW()
			WHERE id = $1 AND stock >= $2
		`, it.ItemID, it.Quantity)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrOutOfStock
		}
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO orders (id, member_id, status, total, order_date, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,NOW(),NOW())
	`, o.ID, o.MemberID, o.Status, o.Total, o.OrderDate); err != nil {
		return err
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, item_id, quantity, price)
			VALUES ($1,$2,$3,$4,$5)
		`, it.ID, o.ID, it.ItemID, it.Quantity, it.Price); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, []Item, error) {
	var o Order
	if err := r.db.QueryRow(ctx, `
		SELECT id, member_id, status, total::text, order_date, created_at, updated_at
		FROM orders WHERE id=$1
	`, id).Scan(&o.ID, &o.MemberID, &o.Status, &o.Total, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, nil, ErrNotFound
	}
	items, err := r.GetItems(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return &o, items, nil
}

func (r *PGRepo) ListByMember(ctx context.Context, memberID string, limit, offset int) ([]Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, member_id, status, total::text, order_date, created_at, updated_at
		FROM orders WHERE member_id=$1
		ORDER BY order_date DESC LIMIT $2 OFFSET $3
	`, memberID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.MemberID, &o.Status, &o.Total, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetItems(ctx context.Context, orderID string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, item_id, quantity, price::text
		FROM order_items
		WHERE order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ItemID, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Cancel flips the order to CANCEL and restores the stock of every order
// item, in one transaction. Cancelling twice is rejected.
func (r *PGRepo) Cancel(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE orders SET status=$2, updated_at=NOW()
		WHERE id=$1 AND status=$3
	`, id, StatusCancel, StatusOrder)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// either missing or not in ORDER state; disambiguate for the caller
		var status string
		if err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1`, id).Scan(&status); err != nil {
			return ErrNotFound
		}
		return ErrAlreadyCancelled
	}

	if _, err := tx.Exec(ctx, `
		UPDATE items i
		SET stock = i.stock + oi.quantity,
		    sell_status = 'SELL',
		    updated_at = NOW()
		FROM order_items oi
		WHERE oi.order_id = $1 AND oi.item_id = i.id
	`, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
