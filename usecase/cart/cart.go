package cart

import (
	"context"

	"go.uber.org/zap"

	"github.com/communitystore/backend/domain"
	"github.com/communitystore/backend/internal/catalog"
	"github.com/communitystore/backend/repository"
)

// UseCase implements the load-mutate-save cart operations. There is no
// locking around the read-modify-write: concurrent requests against the same
// user can race and lose updates, which the reference design accepts.
type UseCase struct {
	store   repository.UserStore
	catalog *catalog.Store
	logger  *zap.Logger
}

func New(store repository.UserStore, cat *catalog.Store, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{store: store, catalog: cat, logger: logger}
}

// Get returns the user's current cart.
func (uc *UseCase) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	return uc.store.GetCart(ctx, userID)
}

// Add puts quantity units of a catalog product into the cart, merging with any
// existing line for the same product.
func (uc *UseCase) Add(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	product, ok := uc.catalog.GetByID(productID)
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	user, err := uc.store.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Cart.AddItem(domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	})
	if err := uc.store.UpdateCart(ctx, userID, &user.Cart); err != nil {
		return nil, err
	}
	return &user.Cart, nil
}

// UpdateQuantity sets a line's quantity exactly; zero removes the line.
func (uc *UseCase) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	user, err := uc.store.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.Cart.UpdateQuantity(productID, quantity) {
		return nil, domain.ErrCartItemNotFound
	}
	if err := uc.store.UpdateCart(ctx, userID, &user.Cart); err != nil {
		return nil, err
	}
	return &user.Cart, nil
}

// Remove drops a line from the cart.
func (uc *UseCase) Remove(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	user, err := uc.store.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.Cart.RemoveItem(productID) {
		return nil, domain.ErrCartItemNotFound
	}
	if err := uc.store.UpdateCart(ctx, userID, &user.Cart); err != nil {
		return nil, err
	}
	return &user.Cart, nil
}

// Clear empties the cart.
func (uc *UseCase) Clear(ctx context.Context, userID string) error {
	return uc.store.ClearCart(ctx, userID)
}
