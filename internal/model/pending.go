package model

import (
	"context"
	"time"
)

// OTPTTL is how long a one-time code remains valid after issuance.
const OTPTTL = 10 * time.Minute

// PendingStore holds unverified signups keyed by normalized email.
// Put overwrites any previous entry for the same email. Entries are never
// garbage-collected; expiry is checked lazily at verification time.
type PendingStore interface {
	Put(ctx context.Context, pending PendingRegistration) error
	Get(ctx context.Context, email string) (PendingRegistration, error)
	Delete(ctx context.Context, email string) error
}

// PendingRegistration describes a signup awaiting email verification.
// The password is held in plain text only until verification hashes it.
type PendingRegistration struct {
	Name         string
	Email        string
	Phone        string
	Password     string
	OTPCode      string
	OTPExpiresAt time.Time
	CreatedAt    time.Time
}
