package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/communitystore/backend/domain"
	"github.com/communitystore/backend/internal/validation"
	"github.com/communitystore/backend/repository"
)

type UseCase struct {
	store  repository.UserStore
	logger *zap.Logger
}

func New(store repository.UserStore, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{store: store, logger: logger}
}

// Signup registers a new account and issues its first token.
func (uc *UseCase) Signup(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	if username == "" || email == "" || password == "" {
		return nil, "", domain.NewError(domain.ErrCodeInvalid, "Username, email, and password are required")
	}
	normalized, err := validation.Password(password)
	if err != nil {
		return nil, "", err
	}
	email = domain.NormalizeEmail(email)

	if _, err := uc.store.FindUserByUsername(ctx, username); err == nil {
		return nil, "", domain.ErrUsernameExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}
	taken, err := uc.store.EmailExists(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", domain.ErrEmailExists
	}

	userID := uuid.NewString()
	if err := uc.store.CreateUser(ctx, username, email, validation.HashPassword(normalized), userID); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeConflict) {
			return nil, "", err
		}
		uc.logger.Error("user creation failed", zap.String("username", username), zap.Error(err))
		return nil, "", domain.WrapError(domain.ErrCodeInternal, "Failed to create user. Please try again.", err)
	}

	token, err := uc.issueToken(ctx, username, userID)
	if err != nil {
		return nil, "", err
	}
	user := &domain.User{ID: userID, Username: username, Email: email}
	return user, token, nil
}

// Login authenticates by username, or by email when the identifier contains
// an @ sign, and issues a fresh token. Old tokens stay valid.
func (uc *UseCase) Login(ctx context.Context, identifier, password string) (*domain.User, string, error) {
	if identifier == "" || password == "" {
		return nil, "", domain.NewError(domain.ErrCodeInvalid, "Username and password are required")
	}

	user, err := uc.store.FindUserByUsername(ctx, identifier)
	if errors.Is(err, domain.ErrUserNotFound) && strings.Contains(identifier, "@") {
		user, err = uc.store.FindUserByEmail(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", invalidCredentials()
		}
		return nil, "", err
	}
	if user.Password != password {
		return nil, "", invalidCredentials()
	}

	token, err := uc.issueToken(ctx, user.Username, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// IssueToken mints and persists a token for an already authenticated user.
// Used by the settings flow, which re-tokens after a username change.
func (uc *UseCase) IssueToken(ctx context.Context, username, userID string) (string, error) {
	return uc.issueToken(ctx, username, userID)
}

func (uc *UseCase) issueToken(ctx context.Context, username, userID string) (string, error) {
	token := fmt.Sprintf("token_%s_%d", username, time.Now().Unix())
	if err := uc.store.SaveToken(ctx, token, userID); err != nil {
		return "", err
	}
	return token, nil
}

func invalidCredentials() error {
	return domain.NewError(domain.ErrCodeUnauthorized, "Invalid username or password")
}
