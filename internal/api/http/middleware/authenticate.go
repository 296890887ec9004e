package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dkarpov/notes-server/internal/logger"
	"github.com/dkarpov/notes-server/internal/model"
)

const bearerPrefix = "Bearer "

// Authenticate validates bearer tokens and injects identity claims into the
// request context. Validation is stateless; no store lookup happens here.
type Authenticate struct {
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager model.TokenManager, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenManager: tokenManager, contextManager: contextManager, logger: logger}
}

// Handle wraps next, rejecting requests without a valid bearer token.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			m.unauthorized(w, model.ErrMissingToken)
			return
		}

		claims, err := m.tokenManager.Parse(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected", "error", err.Error())
			m.unauthorized(w, model.ErrInvalidToken)
			return
		}

		ctx := m.contextManager.SetClaimsToContext(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) unauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	msg := "Invalid token."
	if err == model.ErrMissingToken {
		msg = "No token provided."
	}
	if encErr := json.NewEncoder(w).Encode(map[string]string{"message": msg}); encErr != nil {
		m.logger.Error("Authenticate middleware: failed to write response", "error", encErr.Error())
	}
}
