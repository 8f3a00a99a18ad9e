package dto

import (
	"time"

	"github.com/google/uuid"
)

type AuthRequest struct {
	Username string `json:"username" validate:"required,min=3,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

type SignupResponse struct {
	UserId uuid.UUID `json:"user_id"`
}

type LoginResponse struct {
	UserId      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	AccessToken string    `json:"access_token"`
}

type MeResponse struct {
	UserId       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active"`
}
