package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dkarpov/notes-server/internal/logger"
	"github.com/dkarpov/notes-server/internal/model"
	"github.com/dkarpov/notes-server/internal/service"
)

// AuthService defines signup, verification and login operations.
type AuthService interface {
	Signup(ctx context.Context, params service.SignupParams) error
	VerifyOTP(ctx context.Context, email, code string) error
	Login(ctx context.Context, email, password string) (service.LoginResult, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

// Signup starts a registration and sends the OTP email.
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, model.NewValidationError("invalid request body"))
		return
	}

	err := h.authService.Signup(r.Context(), service.SignupParams{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Debug("Auth handler: signup failed", "error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "User registered. OTP sent to email."})
}

// VerifyOTP completes a registration with the emailed code.
func (h *Auth) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, model.NewValidationError("invalid request body"))
		return
	}

	if err := h.authService.VerifyOTP(r.Context(), req.Email, req.OTP); err != nil {
		h.logger.Debug("Auth handler: otp verification failed", "error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "OTP verified. You can now log in."})
}

// Login authenticates a verified user and returns a bearer token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, model.NewValidationError("invalid request body"))
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("Auth handler: login failed", "error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful.",
		Token:   result.Token,
		User: userResponse{
			ID:    result.User.ID,
			Name:  result.User.Name,
			Email: result.User.Email,
			Phone: result.User.Phone,
		},
	})
}
