package models

import (
	"time"
)

// OwnerRole is the JWT role carried by app owners
const OwnerRole = "owner"

// Owner is the person whose safety the guardians look after
type Owner struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	PinHash   string    `json:"-" db:"pin_hash"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRequest creates a new owner account
type RegisterRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	PIN   string `json:"pin"`
}

// LoginRequest authenticates an owner with phone and PIN
type LoginRequest struct {
	Phone string `json:"phone"`
	PIN   string `json:"pin"`
}

// AuthResponse carries an issued access token
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Owner     *Owner `json:"owner"`
}
