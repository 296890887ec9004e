package model

import "context"

// ContextManager stores and retrieves authenticated identity claims on a
// request context.
type ContextManager interface {
	SetClaimsToContext(ctx context.Context, claims TokenClaims) context.Context
	GetClaimsFromContext(ctx context.Context) (TokenClaims, bool)
}
