package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dkarpov/notes-server/internal/logger"
	"github.com/dkarpov/notes-server/internal/model"
	"github.com/dkarpov/notes-server/internal/otp"
)

const (
	minPasswordLen = 6

	otpMailSubject = "Your Notes App OTP"
)

// Auth orchestrates signup, OTP verification and login.
type Auth struct {
	userStore    model.UserStore
	pendingStore model.PendingStore
	mailer       model.Mailer
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(
	userStore model.UserStore,
	pendingStore model.PendingStore,
	mailer model.Mailer,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		pendingStore: pendingStore,
		mailer:       mailer,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// SignupParams contains parameters to start a registration.
type SignupParams struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// LoginResult carries the issued token and the public user projection.
type LoginResult struct {
	Token string
	User  model.PublicUser
}

// Signup validates the registration request, stores a pending entry and
// emails a one-time code. A durable user is not created until VerifyOTP.
// The mail dispatch is awaited; on failure the pending entry is rolled back
// so the caller sees no partial state.
func (a *Auth) Signup(ctx context.Context, params SignupParams) error {
	name := strings.TrimSpace(params.Name)
	email := normalizeEmail(params.Email)
	phone := strings.TrimSpace(params.Phone)

	if name == "" || email == "" || phone == "" || params.Password == "" {
		return model.NewValidationError("all fields are required")
	}
	if len(params.Password) < minPasswordLen {
		return model.NewValidationError("password must be at least 6 characters")
	}

	a.logger.Debug("Auth service: starting signup", "email", email)

	// Email collision is reported before phone when both collide.
	if err := a.checkDuplicateIdentity(ctx, email, phone); err != nil {
		return err
	}

	code, err := otp.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	now := time.Now()
	pending := model.PendingRegistration{
		Name:         name,
		Email:        email,
		Phone:        phone,
		Password:     params.Password,
		OTPCode:      code,
		OTPExpiresAt: now.Add(model.OTPTTL),
		CreatedAt:    now,
	}

	if err := a.pendingStore.Put(ctx, pending); err != nil {
		return fmt.Errorf("failed to store pending registration: %w", err)
	}

	if err := a.mailer.Send(ctx, email, otpMailSubject, otpMailBody(code, model.OTPTTL)); err != nil {
		a.logger.Error("Auth service: failed to send otp email",
			"email", email,
			"error", err.Error())
		if delErr := a.pendingStore.Delete(ctx, email); delErr != nil {
			a.logger.Error("Auth service: failed to roll back pending registration",
				"email", email,
				"error", delErr.Error())
		}
		return model.ErrNotificationFailure
	}

	a.logger.Info("Auth service: signup started, otp sent", "email", email)

	return nil
}

// VerifyOTP checks the emailed code and, on success, creates the durable
// user in a verified state and consumes the pending entry. A wrong code and
// an expired code are indistinguishable to the caller.
func (a *Auth) VerifyOTP(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)
	if email == "" || code == "" {
		return model.NewValidationError("email and otp are required")
	}

	a.logger.Debug("Auth service: verifying otp", "email", email)

	pending, err := a.pendingStore.Get(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		user, uerr := a.userStore.GetByEmail(ctx, email)
		if uerr == nil && user.IsVerified {
			return model.ErrAlreadyVerified
		}
		return model.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get pending registration: %w", err)
	}

	if code != pending.OTPCode || !time.Now().Before(pending.OTPExpiresAt) {
		return model.ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pending.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Name:         pending.Name,
		Email:        pending.Email,
		Phone:        pending.Phone,
		PasswordHash: string(hash),
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The store's unique constraints settle races between concurrent
	// verifications; their rejection surfaces as the duplicate error.
	if _, err := a.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrEmailTaken) || errors.Is(err, model.ErrPhoneTaken) {
			return err
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := a.pendingStore.Delete(ctx, email); err != nil {
		a.logger.Error("Auth service: failed to delete consumed pending registration",
			"email", email,
			"error", err.Error())
	}

	a.logger.Info("Auth service: user verified and created", "email", email)

	return nil
}

// Login authenticates a verified user and issues a bearer token. Unknown
// email and wrong password collapse into the same error.
func (a *Auth) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return LoginResult{}, model.NewValidationError("email and password are required")
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return LoginResult{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Verification state is reported before the password is checked, so the
	// response never reveals whether the password was correct.
	if !user.IsVerified {
		return LoginResult{}, model.ErrNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, model.ErrInvalidCredentials
	}

	token, err := a.tokenManager.Generate(user)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "user_id", user.ID)

	return LoginResult{
		Token: token,
		User:  user.Public(),
	}, nil
}

func (a *Auth) checkDuplicateIdentity(ctx context.Context, email, phone string) error {
	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		return model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	_, err = a.userStore.GetByPhone(ctx, phone)
	if err == nil {
		return model.ErrPhoneTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get user by phone: %w", err)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func otpMailBody(code string, ttl time.Duration) string {
	return fmt.Sprintf("Your OTP is: %s\n\nThe code is valid for %.0f minutes.\nIf you did not request it, you can ignore this email.",
		code, ttl.Minutes())
}
