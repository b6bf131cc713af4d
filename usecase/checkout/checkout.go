package checkout

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/communitystore/backend/domain"
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

// Checkout converts the user's cart into purchase records and an order, then
// clears the cart. The order write and the history write are best effort, not
// one transaction; a failure to clear the cart afterwards is logged and the
// checkout still counts.
func (uc *UseCase) Checkout(ctx context.Context, userID string) (*domain.Order, error) {
	user, err := uc.store.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Cart.IsEmpty() {
		return nil, domain.ErrCartEmpty
	}

	orderID := fmt.Sprintf("ORD_%s_%d", userID, time.Now().Unix())
	total := user.Cart.Total()

	records := make([]domain.PurchaseRecord, 0, len(user.Cart.Items))
	for _, item := range user.Cart.Items {
		records = append(records, domain.PurchaseRecord{
			ID:       item.ProductID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	if err := uc.store.AddPurchase(ctx, userID, records, orderID, total); err != nil {
		uc.logger.Error("purchase save failed",
			zap.String("order_id", orderID),
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, domain.WrapError(domain.ErrCodeInternal, "Failed to save purchase", err)
	}

	if err := uc.store.ClearCart(ctx, userID); err != nil {
		uc.logger.Warn("cart not cleared after checkout",
			zap.String("order_id", orderID),
			zap.String("user_id", userID),
			zap.Error(err))
	}

	return &domain.Order{
		ID:          orderID,
		UserID:      userID,
		Items:       records,
		Total:       total,
		PurchasedAt: time.Now(),
	}, nil
}

// History lists the user's order records, capped at 100.
func (uc *UseCase) History(ctx context.Context, userID string) ([]domain.Order, error) {
	if _, err := uc.store.FindUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return uc.store.ListOrders(ctx, userID, 100)
}
