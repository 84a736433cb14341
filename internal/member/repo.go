package member

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound     = errors.New("member not found")
	ErrAlreadyExist = errors.New("member already exists")
)

type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id string) (*Member, error)
	GetByEmail(ctx context.Context, email string) (*Member, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, m *Member) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO members (id, email, name, password_hash, address, role, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,NOW(),NOW())
	`, m.ID, m.Email, m.Name, m.PasswordHash, m.Address, m.Role)
	if err != nil {
		// UNIQUE on email
		return ErrAlreadyExist
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Member, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		SELECT id, email, name, password_hash, address, role, created_at, updated_at
		FROM members WHERE id=$1
	`, id)
	var m Member
	if err := row.Scan(&m.ID, &m.Email, &m.Name, &m.PasswordHash, &m.Address, &m.Role, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (*Member, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		SELECT id, email, name, password_hash, address, role, created_at, updated_at
		FROM members WHERE email=$1
	`, email)
	var m Member
	if err := row.Scan(&m.ID, &m.Email, &m.Name, &m.PasswordHash, &m.Address, &m.Role, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, ErrNotFound
	}
	return &m, nil
}
