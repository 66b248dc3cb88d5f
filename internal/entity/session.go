package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`

	View ViewState `json:"view"`
}

type AuthEvent string

const (
	SignedIn  AuthEvent = "SIGNED_IN"
	SignedOut AuthEvent = "SIGNED_OUT"
)
