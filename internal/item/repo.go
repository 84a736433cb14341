// Package item provides the repository interface and PostgreSQL implementation
// for the shop catalog.
package item

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("item not found")
)

type Query struct {
	Q      string
	Limit  int
	Offset int
}

type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context, q Query) ([]Item, error)
	Update(ctx context.Context, it *Item, updatePrice bool) error
	Delete(ctx context.Context, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, it *Item) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO items (id, name, detail, price, stock, sell_status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,NOW(),NOW())
	`, it.ID, it.Name, it.Detail, it.Price, it.Stock, it.SellStatus)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var it Item
	err := r.db.QueryRow(ctx, `
		SELECT id, name, detail, price::text, stock, sell_status, created_at, updated_at
		FROM items WHERE id=$1
	`, id).Scan(&it.ID, &it.Name, &it.Detail, &it.Price, &it.Stock, &it.SellStatus, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &it, nil
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	search := strings.TrimSpace(q.Q)

	rows, err := r.db.Query(ctx, `
		SELECT id, name, detail, price::text, stock, sell_status, created_at, updated_at
		FROM items
		WHERE ($1 = '' OR name ILIKE '%'||$1||'%' OR detail ILIKE '%'||$1||'%')
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, search, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Detail, &it.Price, &it.Stock, &it.SellStatus, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, it *Item, updatePrice bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if updatePrice {
		_, err := r.db.Exec(ctx, `
			UPDATE items
			SET name = COALESCE(NULLIF($2,''), name),
			    detail = COALESCE(NULLIF($3,''), detail),
			    price = $4,
			    stock = $5,
			    sell_status = $6,
			    updated_at = NOW()
			WHERE id = $1
		`, it.ID, it.Name, it.Detail, it.Price, it.Stock, it.SellStatus)
		return err
	}

	_, err := r.db.Exec(ctx, `
		UPDATE items
		SET name = COALESCE(NULLIF($2,''), name),
		    detail = COALESCE(NULLIF($3,''), detail),
		    stock = $4,
		    sell_status = $5,
		    updated_at = NOW()
		WHERE id = $1
	`, it.ID, it.Name, it.Detail, it.Stock, it.SellStatus)
	return err
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM items WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
