package repository

import (
	"context"

	"github.com/communitystore/backend/domain"
)

// UserStore is the persistence boundary for user aggregates, orders and
// tokens. Two implementations exist: the MongoDB adapter and the in-process
// fallback. The backend is selected once at startup and callers never learn
// which one is answering.
//
// Not-found conditions are reported through the domain errors
// (domain.ErrUserNotFound, domain.ErrTokenRequired); uniqueness violations
// through domain.ErrUsernameExists and domain.ErrEmailExists.
type UserStore interface {
	// Kind names the backend ("mongodb" or "memory") for logs and health checks.
	Kind() string
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// CreateUser inserts a fresh aggregate with an empty cart and history.
	// Both uniqueness constraints are re-checked immediately before the write;
	// the email is normalized (trimmed, lowercased) before storing.
	CreateUser(ctx context.Context, username, email, password, userID string) error
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindUserByEmail matches case-insensitively against stored emails.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// EmailExists is a cheaper existence probe than FindUserByEmail.
	EmailExists(ctx context.Context, email string) (bool, error)
	// UpdateUser replaces the whole aggregate for userID. The email is
	// re-normalized on write.
	UpdateUser(ctx context.Context, userID string, user *domain.User) error

	// Cart convenience wrappers: load the aggregate, mutate the embedded cart,
	// save the aggregate back.
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	UpdateCart(ctx context.Context, userID string, cart *domain.Cart) error
	ClearCart(ctx context.Context, userID string) error

	// AddPurchase appends records to the user's embedded history and persists a
	// separate immutable order record. The two writes are not transactional: a
	// failure partway leaves at most a partial effect, which is logged rather
	// than rolled back.
	AddPurchase(ctx context.Context, userID string, records []domain.PurchaseRecord, orderID string, total float64) error
	// ListOrders returns up to limit order records for the user, oldest first.
	ListOrders(ctx context.Context, userID string, limit int) ([]domain.Order, error)

	// SaveToken maps token to userID. Tokens never expire; re-saving the same
	// token string replaces any prior mapping.
	SaveToken(ctx context.Context, token, userID string) error
	// UserIDFromToken resolves a token, returning domain.ErrTokenRequired when
	// it is unknown.
	UserIDFromToken(ctx context.Context, token string) (string, error)
}
