package memory

import (
	"context"
	"sync"
	"time"

	"github.com/communitystore/backend/domain"
	"github.com/communitystore/backend/repository"
)

// userStore is the in-process fallback backend used when MongoDB is not
// reachable at startup. State is process-wide and guarded by a single coarse
// lock; aggregates are deep-copied on the way in and out so callers never
// alias store memory.
type userStore struct {
	mu     sync.RWMutex
	users  map[string]*domain.User   // keyed by user id
	orders map[string][]domain.Order // keyed by user id
	tokens map[string]string         // token -> user id
}

// NewUserStore creates an empty in-memory store.
func NewUserStore() repository.UserStore {
	return &userStore{
		users:  make(map[string]*domain.User),
		orders: make(map[string][]domain.Order),
		tokens: make(map[string]string),
	}
}

func (s *userStore) Kind() string { return "memory" }

func (s *userStore) Ping(ctx context.Context) error { return nil }

func (s *userStore) CreateUser(ctx context.Context, username, email, password, userID string) error {
	normalized := domain.NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Check-and-write happens under one lock, so the check is the write-time check.
	for _, user := range s.users {
		if user.Username == username {
			return domain.ErrUsernameExists
		}
	}
	for _, user := range s.users {
		if domain.NormalizeEmail(user.Email) == normalized {
			return domain.ErrEmailExists
		}
	}

	s.users[userID] = &domain.User{
		ID:       userID,
		Username: username,
		Email:    normalized,
		Password: password,
	}
	return nil
}

func (s *userStore) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			return user.Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *userStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	normalized := domain.NormalizeEmail(email)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if domain.NormalizeEmail(user.Email) == normalized {
			return user.Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *userStore) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user.Clone(), nil
}

func (s *userStore) EmailExists(ctx context.Context, email string) (bool, error) {
	normalized := domain.NormalizeEmail(email)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if domain.NormalizeEmail(user.Email) == normalized {
			return true, nil
		}
	}
	return false, nil
}

func (s *userStore) UpdateUser(ctx context.Context, userID string, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidPayload
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		return domain.ErrUserNotFound
	}

	replacement := user.Clone()
	replacement.ID = userID
	replacement.Email = domain.NormalizeEmail(replacement.Email)
	s.users[userID] = replacement
	return nil
}

func (s *userStore) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	user, err := s.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart := user.Cart.Clone()
	return &cart, nil
}

func (s *userStore) UpdateCart(ctx context.Context, userID string, cart *domain.Cart) error {
	user, err := s.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Cart = cart.Clone()
	return s.UpdateUser(ctx, userID, user)
}

func (s *userStore) ClearCart(ctx context.Context, userID string) error {
	user, err := s.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Cart.Clear()
	return s.UpdateUser(ctx, userID, user)
}

func (s *userStore) AddPurchase(ctx context.Context, userID string, records []domain.PurchaseRecord, orderID string, total float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}

	user.History.RecordPurchases(records)

	items := make([]domain.PurchaseRecord, len(records))
	copy(items, records)
	s.orders[userID] = append(s.orders[userID], domain.Order{
		ID:          orderID,
		UserID:      userID,
		Items:       items,
		Total:       total,
		PurchasedAt: time.Now(),
	})
	return nil
}

func (s *userStore) ListOrders(ctx context.Context, userID string, limit int) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := s.orders[userID]
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	out := make([]domain.Order, len(orders))
	copy(out, orders)
	return out, nil
}

func (s *userStore) SaveToken(ctx context.Context, token, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	return nil
}

func (s *userStore) UserIDFromToken(ctx context.Context, token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.tokens[token]
	if !ok {
		return "", domain.ErrTokenRequired
	}
	return userID, nil
}
