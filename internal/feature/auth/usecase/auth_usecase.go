// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskmanager_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength defines the minimum number of password characters.
	minPasswordLength = 6

	// maxPasswordBytes is bcrypt's input limit. Longer passwords make
	// GenerateFromPassword fail, so they are rejected as invalid input
	// instead of surfacing as an internal error.
	maxPasswordBytes = 72

	// resetTokenBytes is the number of random bytes in a password-reset token.
	resetTokenBytes = 32
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase) rather than the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when a
	// user with the same email is already stored.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the email exactly, including
	// the password hash. Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user with the given id.
	// Returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByResetTokenHash retrieves the user whose pending reset-token hash
	// matches AND whose reset window has not closed at instant now.
	// Returns ErrUserNotFound otherwise.
	FindByResetTokenHash(ctx context.Context, hash string, now time.Time) (*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error
}

// TokenIssuer issues signed bearer tokens for a user id.
// Defined here as the consumer; provided by platform/jwt.
type TokenIssuer interface {
	// IssueToken creates a signed, time-limited token identifying the user.
	IssueToken(userID string) (string, error)
}

// ResetMailer delivers password-reset links. Provided by platform/email;
// callers never branch on the concrete provider.
type ResetMailer interface {
	// SendPasswordReset sends the reset link to the given address.
	SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error
}

// ResetTicket is the outcome of a password-reset request. Token and ResetURL
// carry the plaintext token; it is surfaced to the client only when the email
// could not be delivered, as a development convenience.
type ResetTicket struct {
	ResetURL  string
	Token     string
	EmailSent bool
}

// AuthUsecase implements registration, login, and the password-reset flow.
type AuthUsecase struct {
	users         UserRepository
	tokens        TokenIssuer
	mailer        ResetMailer
	publicBaseURL string
	resetTTL      time.Duration
}

// NewAuthUsecase creates a new AuthUsecase. publicBaseURL is the frontend
// origin used to build reset links; resetTTL bounds the reset-token window.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, mailer ResetMailer, publicBaseURL string, resetTTL time.Duration) *AuthUsecase {
	if resetTTL <= 0 {
		resetTTL = 10 * time.Minute
	}
	return &AuthUsecase{
		users:         users,
		tokens:        tokens,
		mailer:        mailer,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		resetTTL:      resetTTL,
	}
}

// validatePassword checks the password length bounds. The minimum counts
// characters; the maximum counts bytes because that is what bcrypt limits.
func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// Register creates a new user with a hashed password and returns the created
// user together with a signed bearer token.
func (u *AuthUsecase) Register(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, "", ErrMissingFields
	}
	if err := validatePassword(password); err != nil {
		return nil, "", err
	}

	// The unique index is the authority; this pre-check only gives a cleaner
	// error without waiting for the insert to fail.
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// Login authenticates a user and returns the user with a signed bearer token.
// A bcrypt comparison runs even when the user does not exist, so lookup
// misses and password mismatches take comparable time.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the miss path too.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.IssueToken(user.ID)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return user, token, nil
}

// ForgotPassword starts a password reset: it stores the SHA-256 hash of a
// fresh random token with a bounded expiry, then attempts to email the reset
// link. The send is best effort; the returned ticket reports whether it went
// out so the handler can fall back to the development response.
func (u *AuthUsecase) ForgotPassword(ctx context.Context, email string) (*ResetTicket, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	raw := make([]byte, resetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := hex.EncodeToString(raw)
	hash := hashResetToken(token)
	expires := time.Now().Add(u.resetTTL)

	user.ResetTokenHash = &hash
	user.ResetTokenExpiresAt = &expires
	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", u.publicBaseURL, token)

	ticket := &ResetTicket{ResetURL: resetURL, Token: token}
	if err := u.mailer.SendPasswordReset(ctx, user.Email, user.Name, resetURL); err != nil {
		slog.Warn("password reset email not delivered", "email", user.Email, "error", err)
		return ticket, nil
	}
	ticket.EmailSent = true
	return ticket, nil
}

// ResetPassword completes a password reset. The presented token is hashed and
// matched against a still-valid pending reset in a single filtered lookup;
// unknown and expired tokens fail identically. On success the password is
// replaced, both reset fields are cleared (making the token single-use), and
// a fresh bearer token is issued.
func (u *AuthUsecase) ResetPassword(ctx context.Context, token, newPassword string) (*entity.User, string, error) {
	if err := validatePassword(newPassword); err != nil {
		return nil, "", err
	}

	user, err := u.users.FindByResetTokenHash(ctx, hashResetToken(token), time.Now())
	if err != nil {
		return nil, "", ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = string(hashed)
	user.ResetTokenHash = nil
	user.ResetTokenExpiresAt = nil
	if err := u.users.Update(ctx, user); err != nil {
		return nil, "", err
	}

	authToken, err := u.tokens.IssueToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, authToken, nil
}

// hashResetToken returns the SHA-256 hex digest stored in place of the
// plaintext reset token.
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
