package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitystore/backend/domain"
)

func TestCreateUserConstraints(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()

	require.NoError(t, store.CreateUser(ctx, "alice", "alice@example.com", "secret1", "u1"))

	t.Run("duplicate username", func(t *testing.T) {
		err := store.CreateUser(ctx, "alice", "other@example.com", "secret1", "u2")
		assert.ErrorIs(t, err, domain.ErrUsernameExists)
	})

	t.Run("duplicate email ignoring case and whitespace", func(t *testing.T) {
		err := store.CreateUser(ctx, "bob", "  Alice@Example.COM  ", "secret1", "u2")
		assert.ErrorIs(t, err, domain.ErrEmailExists)
	})

	t.Run("email is stored normalized", func(t *testing.T) {
		require.NoError(t, store.CreateUser(ctx, "carol", "  Carol@Example.COM ", "secret1", "u3"))
		user, err := store.FindUserByID(ctx, "u3")
		require.NoError(t, err)
		assert.Equal(t, "carol@example.com", user.Email)
	})
}

func TestFindUser(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()
	require.NoError(t, store.CreateUser(ctx, "alice", "alice@example.com", "secret1", "u1"))

	t.Run("by username", func(t *testing.T) {
		user, err := store.FindUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("by email is case-insensitive", func(t *testing.T) {
		user, err := store.FindUserByEmail(ctx, "ALICE@example.com")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := store.FindUserByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		_, err = store.FindUserByID(ctx, "u999")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("email exists", func(t *testing.T) {
		exists, err := store.EmailExists(ctx, " Alice@Example.com ")
		require.NoError(t, err)
		assert.True(t, exists)
		exists, err = store.EmailExists(ctx, "other@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestUpdateUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()
	require.NoError(t, store.CreateUser(ctx, "alice", "alice@example.com", "secret1", "u1"))

	user, err := store.FindUserByID(ctx, "u1")
	require.NoError(t, err)

	user.FullName = "Alice Liddell"
	user.Bio = "Down the rabbit hole"
	user.Email = "  NewAlice@Example.COM  "
	require.NoError(t, store.UpdateUser(ctx, "u1", user))

	reloaded, err := store.FindUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice Liddell", reloaded.FullName)
	assert.Equal(t, "Down the rabbit hole", reloaded.Bio)
	assert.Equal(t, "newalice@example.com", reloaded.Email)

	assert.ErrorIs(t, store.UpdateUser(ctx, "u999", user), domain.ErrUserNotFound)
}

func TestCartPersistence(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()
	require.NoError(t, store.CreateUser(ctx, "alice", "alice@example.com", "secret1", "u1"))

	cart := &domain.Cart{}
	cart.AddItem(domain.CartItem{ProductID: "ITEM001", Name: "Laptop Pro 15", Price: 999.99, Quantity: 1})
	require.NoError(t, store.UpdateCart(ctx, "u1", cart))

	// Mutating the caller's copy after the write must not affect storage.
	cart.AddItem(domain.CartItem{ProductID: "ITEM002", Name: "Wireless Mouse", Price: 29.99, Quantity: 1})

	stored, err := store.GetCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "ITEM001", stored.Items[0].ProductID)

	require.NoError(t, store.ClearCart(ctx, "u1"))
	stored, err = store.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, stored.IsEmpty())
}

func TestAddPurchase(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()
	require.NoError(t, store.CreateUser(ctx, "alice", "alice@example.com", "secret1", "u1"))

	records := []domain.PurchaseRecord{
		{ID: "ITEM001", Name: "Laptop Pro 15", Price: 999.99, Quantity: 1},
	}
	require.NoError(t, store.AddPurchase(ctx, "u1", records, "ORD_u1_1", 999.99))
	require.NoError(t, store.AddPurchase(ctx, "u1", records, "ORD_u1_2", 999.99))

	user, err := store.FindUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, user.History.Records, 2)

	orders, err := store.ListOrders(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD_u1_1", orders[0].ID)
	assert.Equal(t, "ORD_u1_2", orders[1].ID)

	limited, err := store.ListOrders(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	assert.ErrorIs(t, store.AddPurchase(ctx, "u999", records, "ORD_X", 1), domain.ErrUserNotFound)
}

func TestTokens(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()

	require.NoError(t, store.SaveToken(ctx, "token_alice_1", "u1"))

	userID, err := store.UserIDFromToken(ctx, "token_alice_1")
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	// Re-saving the same token is idempotent.
	require.NoError(t, store.SaveToken(ctx, "token_alice_1", "u1"))

	_, err = store.UserIDFromToken(ctx, "token_unknown_1")
	assert.ErrorIs(t, err, domain.ErrTokenRequired)
}
