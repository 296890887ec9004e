// Package context carries authenticated identity claims on request contexts.
package context

import (
	"context"

	"github.com/dkarpov/notes-server/internal/model"
)

type ctxKey int

const claimsKey ctxKey = iota

var _ model.ContextManager = (*Manager)(nil)

// Manager implements ContextManager on plain context values.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetClaimsToContext returns a child context carrying the claims.
func (m *Manager) SetClaimsToContext(ctx context.Context, claims model.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext retrieves the claims set by the authenticate
// middleware, reporting whether they were present.
func (m *Manager) GetClaimsFromContext(ctx context.Context) (model.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(model.TokenClaims)
	return claims, ok
}
