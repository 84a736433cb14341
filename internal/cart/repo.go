package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("cart item not found")
)

type Repository interface {
	GetOrCreate(ctx context.Context, memberID string) (*Cart, error)
	AddItem(ctx context.Context, cartID, itemID string, qty int) (*CartItem, error)
	GetLine(ctx context.Context, lineID string) (*CartItem, error)
	ListLines(ctx context.Context, cartID string) ([]Line, error)
	UpdateQuantity(ctx context.Context, lineID string, qty int) error
	DeleteLine(ctx context.Context, lineID string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) GetOrCreate(ctx context.Context, memberID string) (*Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// UNIQUE on member_id makes the insert a no-op when the cart exists.
	if _, err := r.db.Exec(ctx, `
		INSERT INTO carts (id, member_id, created_at, updated_at)
		VALUES ($1,$2,NOW(),NOW())
		ON CONFLICT (member_id) DO NOTHING
	`, uuid.NewString(), memberID); err != nil {
		return nil, err
	}

	var c Cart
	err := r.db.QueryRow(ctx, `
		SELECT id, member_id, created_at, updated_at
		FROM carts WHERE member_id=$1
	`, memberID).Scan(&c.ID, &c.MemberID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PGRepo) AddItem(ctx context.Context, cartID, itemID string, qty int) (*CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Adding the same item again merges quantities (UNIQUE on cart_id,item_id).
	var ci CartItem
	err := r.db.QueryRow(ctx, `
		INSERT INTO cart_items (id, cart_id, item_id, quantity, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NOW(),NOW())
		ON CONFLICT (cart_id, item_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
		RETURNING id, cart_id, item_id, quantity, created_at, updated_at
	`, uuid.NewString(), cartID, itemID, qty).Scan(&ci.ID, &ci.CartID, &ci.ItemID, &ci.Quantity, &ci.CreatedAt, &ci.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &ci, nil
}

func (r *PGRepo) GetLine(ctx context.Context, lineID string) (*CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ci CartItem
	err := r.db.QueryRow(ctx, `
		SELECT id, cart_id, item_id, quantity, created_at, updated_at
		FROM cart_items WHERE id=$1
	`, lineID).Scan(&ci.ID, &ci.CartID, &ci.ItemID, &ci.Quantity, &ci.CreatedAt, &ci.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &ci, nil
}

func (r *PGRepo) ListLines(ctx context.Context, cartID string) ([]Line, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT ci.id, ci.cart_id, ci.item_id, ci.quantity, ci.created_at, ci.updated_at,
		       i.name, i.price::text
		FROM cart_items ci
		JOIN items i ON i.id = ci.item_id
		WHERE ci.cart_id=$1
		ORDER BY ci.created_at
	`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Line
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.ID, &l.CartID, &l.ItemID, &l.Quantity, &l.CreatedAt, &l.UpdatedAt,
			&l.ItemName, &l.UnitPrice); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateQuantity(ctx context.Context, lineID string, qty int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE cart_items SET quantity=$2, updated_at=NOW() WHERE id=$1
	`, lineID, qty)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) DeleteLine(ctx context.Context, lineID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE id=$1`, lineID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
