package settings

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitystore/backend/domain"
	"github.com/communitystore/backend/repository"
	"github.com/communitystore/backend/repository/memory"
	"github.com/communitystore/backend/usecase/auth"
)

func newFixture(t *testing.T) (*UseCase, repository.UserStore, string) {
	t.Helper()
	store := memory.NewUserStore()
	ctx := context.Background()
	require.NoError(t, store.CreateUser(ctx, "alice", "alice@example.com", "secret1", "u1"))
	require.NoError(t, store.CreateUser(ctx, "bob", "bob@example.com", "secret1", "u2"))
	return New(store, auth.New(store, nil), nil), store, "u1"
}

func TestGetProfile(t *testing.T) {
	uc, _, userID := newFixture(t)

	user, err := uc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = uc.GetProfile(context.Background(), "u999")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("applies changed fields and re-tokens", func(t *testing.T) {
		uc, store, userID := newFixture(t)

		user, token, err := uc.UpdateProfile(ctx, userID, Changes{
			Username: "alice2",
			FullName: "Alice Liddell",
			Bio:      "Down the rabbit hole",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice2", user.Username)
		assert.Equal(t, "Alice Liddell", user.FullName)
		assert.True(t, strings.HasPrefix(token, "token_alice2_"))

		resolved, err := store.UserIDFromToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, userID, resolved)

		reloaded, err := store.FindUserByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "alice2", reloaded.Username)
	})

	t.Run("no-op update is rejected", func(t *testing.T) {
		uc, _, userID := newFixture(t)

		_, _, err := uc.UpdateProfile(ctx, userID, Changes{})
		assert.ErrorIs(t, err, domain.ErrNoProfileChanges)

		// Same values as the current profile count as no change.
		_, _, err = uc.UpdateProfile(ctx, userID, Changes{Username: "alice", Email: "alice@example.com"})
		assert.ErrorIs(t, err, domain.ErrNoProfileChanges)
	})

	t.Run("username conflict with another user", func(t *testing.T) {
		uc, _, userID := newFixture(t)

		_, _, err := uc.UpdateProfile(ctx, userID, Changes{Username: "bob"})
		require.Error(t, err)
		assert.Equal(t, "Username already taken", domain.ErrorMessage(err))
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))
	})

	t.Run("email conflict with another user", func(t *testing.T) {
		uc, _, userID := newFixture(t)

		_, _, err := uc.UpdateProfile(ctx, userID, Changes{Email: "BOB@example.com"})
		require.Error(t, err)
		assert.Equal(t, "Email already taken", domain.ErrorMessage(err))
	})

	t.Run("first validation error aborts everything", func(t *testing.T) {
		uc, store, userID := newFixture(t)

		_, _, err := uc.UpdateProfile(ctx, userID, Changes{Username: "ab", FullName: "Alice"})
		require.Error(t, err)
		assert.Equal(t, "Username must be 3-30 characters", domain.ErrorMessage(err))

		reloaded, err := store.FindUserByID(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, reloaded.FullName)
	})

	t.Run("password change alone counts as an update", func(t *testing.T) {
		uc, store, userID := newFixture(t)

		_, _, err := uc.UpdateProfile(ctx, userID, Changes{Password: "newsecret"})
		require.NoError(t, err)

		reloaded, err := store.FindUserByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "newsecret", reloaded.Password)
	})

	t.Run("password bounds", func(t *testing.T) {
		uc, _, userID := newFixture(t)

		_, _, err := uc.UpdateProfile(ctx, userID, Changes{Password: "123"})
		require.Error(t, err)
		assert.Equal(t, "Password must be at least 6 characters long", domain.ErrorMessage(err))

		_, _, err = uc.UpdateProfile(ctx, userID, Changes{Password: strings.Repeat("p", 101)})
		require.Error(t, err)
		assert.Equal(t, "Password must be no more than 100 characters", domain.ErrorMessage(err))
	})

	t.Run("profile field bounds", func(t *testing.T) {
		uc, _, userID := newFixture(t)

		_, _, err := uc.UpdateProfile(ctx, userID, Changes{FullName: strings.Repeat("n", 81)})
		require.Error(t, err)
		assert.Equal(t, "Full name must be 80 characters or less", domain.ErrorMessage(err))

		_, _, err = uc.UpdateProfile(ctx, userID, Changes{Bio: strings.Repeat("b", 161)})
		require.Error(t, err)
		assert.Equal(t, "Bio must be 160 characters or less", domain.ErrorMessage(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		uc, _, _ := newFixture(t)

		_, _, err := uc.UpdateProfile(ctx, "u999", Changes{Username: "somebody"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
