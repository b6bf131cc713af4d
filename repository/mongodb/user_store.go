package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/communitystore/backend/domain"
	"github.com/communitystore/backend/repository"
)

type userStore struct {
	db     *mongo.Database
	logger *zap.Logger
}

// NewUserStore creates a MongoDB-backed user store over an already connected
// database handle.
func NewUserStore(db *mongo.Database, logger *zap.Logger) repository.UserStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &userStore{db: db, logger: logger}
}

func (s *userStore) users() *mongo.Collection  { return s.db.Collection("users") }
func (s *userStore) orders() *mongo.Collection { return s.db.Collection("orders") }
func (s *userStore) tokens() *mongo.Collection { return s.db.Collection("tokens") }

func (s *userStore) Kind() string { return "mongodb" }

func (s *userStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

func (s *userStore) CreateUser(ctx context.Context, username, email, password, userID string) error {
	normalized := domain.NormalizeEmail(email)

	if err := s.users().FindOne(ctx, bson.M{"username": username}).Err(); err == nil {
		return domain.ErrUsernameExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	taken, err := s.EmailExists(ctx, normalized)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrEmailExists
	}

	// Re-check both constraints right before the insert. This narrows, but
	// does not eliminate, the race window between check and write; the unique
	// indexes created at connect close the rest.
	if err := s.users().FindOne(ctx, bson.M{"email": normalized}).Err(); err == nil {
		return domain.ErrEmailExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	if err := s.users().FindOne(ctx, bson.M{"username": username}).Err(); err == nil {
		return domain.ErrUsernameExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	doc := userDoc{
		ID:       userID,
		Username: username,
		Email:    normalized,
		Password: password,
		Cart:     []cartItemDoc{},
		History:  []purchaseDoc{},
	}
	if _, err := s.users().InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return s.classifyDuplicate(ctx, username, normalized, err)
		}
		return err
	}
	return nil
}

// classifyDuplicate decides which unique index rejected an insert so the
// caller gets the right conflict message.
func (s *userStore) classifyDuplicate(ctx context.Context, username, email string, cause error) error {
	if err := s.users().FindOne(ctx, bson.M{"username": username}).Err(); err == nil {
		return domain.ErrUsernameExists
	}
	if err := s.users().FindOne(ctx, bson.M{"email": email}).Err(); err == nil {
		return domain.ErrEmailExists
	}
	return cause
}

func (s *userStore) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := s.users().FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (s *userStore) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *userStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	normalized := domain.NormalizeEmail(email)
	user, err := s.findOne(ctx, bson.M{"email": normalized})
	if !errors.Is(err, domain.ErrUserNotFound) {
		return user, err
	}
	// Degraded mode: documents written before email normalization may carry
	// mixed-case addresses the direct query misses. Scan and compare.
	return s.scanForEmail(ctx, normalized)
}

func (s *userStore) scanForEmail(ctx context.Context, normalized string) (*domain.User, error) {
	cursor, err := s.users().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		if domain.NormalizeEmail(doc.Email) == normalized {
			return doc.toDomain(), nil
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return nil, domain.ErrUserNotFound
}

func (s *userStore) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.findOne(ctx, bson.M{"_id": userID})
}

func (s *userStore) EmailExists(ctx context.Context, email string) (bool, error) {
	normalized := domain.NormalizeEmail(email)
	err := s.users().FindOne(ctx, bson.M{"email": normalized}).Err()
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, err
	}
	_, err = s.scanForEmail(ctx, normalized)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	return false, err
}

func (s *userStore) UpdateUser(ctx context.Context, userID string, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidPayload
	}

	doc := toUserDoc(userID, user)
	update := bson.M{"$set": bson.M{
		"username":        doc.Username,
		"email":           doc.Email,
		"password":        doc.Password,
		"fullName":        doc.FullName,
		"bio":             doc.Bio,
		"cart":            doc.Cart,
		"purchaseHistory": doc.History,
	}}

	result, err := s.users().UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
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
	user, err := s.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	user.History.RecordPurchases(records)

	order := orderDoc{
		ID:        orderID,
		UserID:    userID,
		Total:     total,
		Timestamp: timeNow(),
	}
	for _, record := range records {
		order.Items = append(order.Items, orderItemDoc{
			ProductID: record.ID,
			Name:      record.Name,
			Price:     record.Price,
			Quantity:  int32(record.Quantity),
			Subtotal:  record.Subtotal(),
		})
	}

	// Two separate writes, best effort: the order document first, then the
	// aggregate. A failure between them leaves the order recorded without the
	// history entries. That partial state is logged, not rolled back.
	if _, err := s.orders().InsertOne(ctx, order); err != nil {
		return err
	}
	if err := s.UpdateUser(ctx, userID, user); err != nil {
		s.logger.Warn("order recorded but history update failed",
			zap.String("order_id", orderID),
			zap.String("user_id", userID),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *userStore) ListOrders(ctx context.Context, userID string, limit int) ([]domain.Order, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := s.orders().Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []domain.Order
	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		orders = append(orders, doc.toDomain())
	}
	return orders, cursor.Err()
}

func (s *userStore) SaveToken(ctx context.Context, token, userID string) error {
	// Drop any prior mapping for this token string before inserting.
	if _, err := s.tokens().DeleteOne(ctx, bson.M{"token": token}); err != nil {
		return err
	}
	_, err := s.tokens().InsertOne(ctx, tokenDoc{
		Token:     token,
		UserID:    userID,
		CreatedAt: timeNow(),
	})
	return err
}

func (s *userStore) UserIDFromToken(ctx context.Context, token string) (string, error) {
	var doc tokenDoc
	if err := s.tokens().FindOne(ctx, bson.M{"token": token}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", domain.ErrTokenRequired
		}
		return "", err
	}
	if doc.UserID == "" {
		return "", domain.ErrTokenRequired
	}
	return doc.UserID, nil
}
