package member

import "time"

type Member struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Address      string    `json:"address,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest payload of member registration.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email"    example:"hong@example.com"`
	Name     string `json:"name"     example:"Hong Gildong"`
	Password string `json:"password" example:"s3cret!!"`
	Address  string `json:"address"  example:"Seoul, Mapo-gu"`
}

// LoginRequest payload of member login.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
