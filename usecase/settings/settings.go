package settings

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/communitystore/backend/domain"
	"github.com/communitystore/backend/internal/validation"
	"github.com/communitystore/backend/repository"
)

// Changes carries the optional profile fields of an update request. Empty
// fields are left untouched.
type Changes struct {
	Username string
	Email    string
	Password string
	FullName string
	Bio      string
}

// TokenIssuer mints a fresh token for an authenticated user. A profile update
// re-tokens so a changed username is reflected in the credential.
type TokenIssuer interface {
	IssueToken(ctx context.Context, username, userID string) (string, error)
}

type UseCase struct {
	store  repository.UserStore
	issuer TokenIssuer
	logger *zap.Logger
}

func New(store repository.UserStore, issuer TokenIssuer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{store: store, issuer: issuer, logger: logger}
}

// GetProfile loads the user aggregate for the /me view.
func (uc *UseCase) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return uc.store.FindUserByID(ctx, userID)
}

// UpdateProfile validates and applies the supplied changes, saves the
// aggregate and issues a replacement token. The first validation or conflict
// error aborts the whole update; when nothing actually changes the update is
// rejected as a no-op.
func (uc *UseCase) UpdateProfile(ctx context.Context, userID string, changes Changes) (*domain.User, string, error) {
	user, err := uc.store.FindUserByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	updated := false

	if changes.Username != "" && changes.Username != user.Username {
		username, err := validation.Username(changes.Username)
		if err != nil {
			return nil, "", err
		}
		taken, err := uc.usernameTakenByOther(ctx, username, userID)
		if err != nil {
			return nil, "", err
		}
		if taken {
			return nil, "", domain.NewError(domain.ErrCodeConflict, "Username already taken")
		}
		user.Username = username
		updated = true
	}

	if changes.Email != "" && changes.Email != user.Email {
		email, err := validation.Email(changes.Email)
		if err != nil {
			return nil, "", err
		}
		if email != user.Email {
			taken, err := uc.emailTakenByOther(ctx, email, userID)
			if err != nil {
				return nil, "", err
			}
			if taken {
				return nil, "", domain.NewError(domain.ErrCodeConflict, "Email already taken")
			}
			user.Email = email
			updated = true
		}
	}

	if changes.Password != "" {
		password, err := validation.Password(changes.Password)
		if err != nil {
			return nil, "", err
		}
		user.Password = validation.HashPassword(password)
		updated = true
	}

	if changes.FullName != "" || changes.Bio != "" {
		fullName, bio, err := validation.Profile(changes.FullName, changes.Bio)
		if err != nil {
			return nil, "", err
		}
		if changes.FullName != "" {
			user.FullName = fullName
			updated = true
		}
		if changes.Bio != "" {
			user.Bio = bio
			updated = true
		}
	}

	if !updated {
		return nil, "", domain.ErrNoProfileChanges
	}

	if err := uc.store.UpdateUser(ctx, userID, user); err != nil {
		uc.logger.Error("profile save failed", zap.String("user_id", userID), zap.Error(err))
		return nil, "", domain.WrapError(domain.ErrCodeInternal, "Failed to update user in database", err)
	}

	token, err := uc.issuer.IssueToken(ctx, user.Username, userID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *UseCase) usernameTakenByOther(ctx context.Context, username, userID string) (bool, error) {
	existing, err := uc.store.FindUserByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return existing.ID != userID, nil
}

func (uc *UseCase) emailTakenByOther(ctx context.Context, email, userID string) (bool, error) {
	existing, err := uc.store.FindUserByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return existing.ID != userID, nil
}
