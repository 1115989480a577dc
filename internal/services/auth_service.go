package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"fintrack/internal/auth"
	"fintrack/internal/core"
	applog "fintrack/internal/log"
	"fintrack/internal/storage"
)

// AuthService handles signup and login. Login failures are
// deliberately indistinguishable between unknown email and wrong
// password.
type AuthService struct {
	storage *storage.SQLiteRepository
	tokens  *auth.TokenIssuer
}

func NewAuthService(storage *storage.SQLiteRepository, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{storage: storage, tokens: tokens}
}

// Signup creates a new user with a salted password hash. Duplicate
// emails are rejected before any write.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (int64, error) {
	if email == "" || password == "" {
		return 0, core.ValidationError("missing email or password")
	}

	_, err := s.storage.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return 0, core.Conflict("user already exists")
	case !errors.Is(err, sql.ErrNoRows):
		return 0, core.Internal("lookup user", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, core.Internal("hash password", err)
	}

	user, err := s.storage.CreateUser(ctx, email, hash, name)
	if err != nil {
		return 0, core.Internal("create user", err)
	}

	slog.InfoContext(ctx, "User signed up", applog.FieldUserID, user.ID)
	return user.ID, nil
}

// Login verifies credentials and issues a bearer token carrying the
// user id as its only claim.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, core.User, error) {
	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", core.User{}, core.InvalidCredential("invalid credentials")
		}
		return "", core.User{}, core.Internal("lookup user", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", core.User{}, core.InvalidCredential("invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", core.User{}, core.Internal("issue token", err)
	}

	slog.InfoContext(ctx, "User logged in", applog.FieldUserID, user.ID)
	return token, user, nil
}
