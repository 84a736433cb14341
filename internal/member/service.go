package member

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/dmolina/shop-service/internal/auth"
)

var (
	ErrInvalidInput    = errors.New("email, name and password are required")
	ErrBadCredentials  = errors.New("wrong email or password")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters")
)

type Service struct {
	repo       Repository
	bcryptCost int
}

func NewService(repo Repository, bcryptCost int) *Service {
	return &Service{repo: repo, bcryptCost: bcryptCost}
}

// Register validates the request, hashes the password and stores the
// member with the USER role. A duplicate email yields ErrAlreadyExist.
func (s *Service) Register(ctx context.Context, in RegisterRequest) (*Member, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" || in.Password == "" {
		return nil, ErrInvalidInput
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidInput
	}
	if len(in.Password) < 8 {
		return nil, ErrPasswordTooWeak
	}
	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	m := &Member{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Address:      strings.TrimSpace(in.Address),
		Role:         auth.RoleUser,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Authenticate checks email+password and returns the member on success.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Member, error) {
	if email == "" || password == "" {
		return nil, ErrBadCredentials
	}
	m, err := s.repo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(m.PasswordHash, password) {
		return nil, ErrBadCredentials
	}
	return m, nil
}
