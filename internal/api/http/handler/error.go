package handler

import (
	"errors"
	"net/http"

	"github.com/dkarpov/notes-server/internal/model"
)

// handleError maps domain errors onto a stable status and message pair.
// Anything unrecognized collapses to a generic 500 so internal failure text
// never reaches the caller.
func handleError(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: validationErr.Error()})
		return
	}

	switch {
	case errors.Is(err, model.ErrEmailTaken):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Email already exists."})
	case errors.Is(err, model.ErrPhoneTaken):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Phone number already exists."})
	case errors.Is(err, model.ErrAlreadyVerified):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "User already verified."})
	case errors.Is(err, model.ErrInvalidOTP):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid or expired OTP."})
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "Not found."})
	case errors.Is(err, model.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "Invalid credentials."})
	case errors.Is(err, model.ErrNotVerified):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "Please verify your email with OTP before logging in."})
	case errors.Is(err, model.ErrMissingToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "No token provided."})
	case errors.Is(err, model.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "Invalid token."})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Server error."})
	}
}
