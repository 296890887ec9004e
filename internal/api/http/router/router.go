package router

import (
	"net/http"

	"github.com/dkarpov/notes-server/internal/api/http/handler"
	"github.com/dkarpov/notes-server/internal/api/http/middleware"
	"github.com/dkarpov/notes-server/internal/logger"
	"github.com/dkarpov/notes-server/internal/model"
)

// Router assembles the HTTP routes and middleware chain.
type Router struct {
	authService    handler.AuthService
	noteService    handler.NoteService
	pinger         handler.Pinger
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	noteService handler.NoteService,
	pinger handler.Pinger,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		noteService:    noteService,
		pinger:         pinger,
		tokenManager:   tokenManager,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register wires handlers and middleware and returns the root handler.
// Auth endpoints are public; note endpoints require a bearer token.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.logger)
	noteHandler := handler.NewNote(r.noteService, r.contextManager, r.logger)
	healthHandler := handler.NewHealth(r.pinger, r.logger)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /auth/verify-otp", authHandler.VerifyOTP)
	mux.HandleFunc("POST /auth/login", authHandler.Login)

	protect := func(h http.HandlerFunc) http.Handler {
		return authenticate.Handle(h)
	}
	mux.Handle("POST /notes", protect(noteHandler.Create))
	mux.Handle("GET /notes", protect(noteHandler.List))
	mux.Handle("GET /notes/{id}", protect(noteHandler.Get))
	mux.Handle("PUT /notes/{id}", protect(noteHandler.Update))
	mux.Handle("DELETE /notes/{id}", protect(noteHandler.Delete))

	mux.HandleFunc("GET /healthz", healthHandler.Check)

	return logging.Handle(mux)
}
