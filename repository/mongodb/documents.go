package mongodb

import (
	"time"

	"github.com/communitystore/backend/domain"
)

var timeNow = time.Now

// userDoc mirrors the users collection schema: the aggregate with cart and
// purchase history embedded as arrays.
type userDoc struct {
	ID       string        `bson:"_id"`
	Username string        `bson:"username"`
	Email    string        `bson:"email"`
	Password string        `bson:"password"`
	FullName string        `bson:"fullName"`
	Bio      string        `bson:"bio"`
	Cart     []cartItemDoc `bson:"cart"`
	History  []purchaseDoc `bson:"purchaseHistory"`
}

type cartItemDoc struct {
	ProductID string  `bson:"productId"`
	Name      string  `bson:"name"`
	Price     float64 `bson:"price"`
	Quantity  int32   `bson:"quantity"`
}

type purchaseDoc struct {
	ID       string  `bson:"id"`
	Name     string  `bson:"name"`
	Price    float64 `bson:"price"`
	Quantity int32   `bson:"quantity"`
}

// orderDoc is one immutable document per checkout in the orders collection.
type orderDoc struct {
	ID        string         `bson:"_id"`
	UserID    string         `bson:"userId"`
	Items     []orderItemDoc `bson:"items"`
	Total     float64        `bson:"total"`
	Timestamp time.Time      `bson:"timestamp"`
}

type orderItemDoc struct {
	ProductID string  `bson:"productId"`
	Name      string  `bson:"name"`
	Price     float64 `bson:"price"`
	Quantity  int32   `bson:"quantity"`
	Subtotal  float64 `bson:"subtotal"`
}

// tokenDoc maps a bearer token to its user in the tokens collection.
type tokenDoc struct {
	Token     string    `bson:"token"`
	UserID    string    `bson:"userId"`
	CreatedAt time.Time `bson:"createdAt"`
}

func toUserDoc(userID string, user *domain.User) userDoc {
	doc := userDoc{
		ID:       userID,
		Username: user.Username,
		Email:    domain.NormalizeEmail(user.Email),
		Password: user.Password,
		FullName: user.FullName,
		Bio:      user.Bio,
		Cart:     make([]cartItemDoc, 0, len(user.Cart.Items)),
		History:  make([]purchaseDoc, 0, len(user.History.Records)),
	}
	for _, item := range user.Cart.Items {
		doc.Cart = append(doc.Cart, cartItemDoc{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  int32(item.Quantity),
		})
	}
	for _, record := range user.History.Records {
		doc.History = append(doc.History, purchaseDoc{
			ID:       record.ID,
			Name:     record.Name,
			Price:    record.Price,
			Quantity: int32(record.Quantity),
		})
	}
	return doc
}

func (d userDoc) toDomain() *domain.User {
	user := &domain.User{
		ID:       d.ID,
		Username: d.Username,
		Email:    d.Email,
		Password: d.Password,
		FullName: d.FullName,
		Bio:      d.Bio,
	}
	for _, item := range d.Cart {
		if item.ProductID == "" {
			continue
		}
		user.Cart.Items = append(user.Cart.Items, domain.CartItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  int(item.Quantity),
		})
	}
	for _, record := range d.History {
		if record.ID == "" {
			continue
		}
		user.History.Records = append(user.History.Records, domain.PurchaseRecord{
			ID:       record.ID,
			Name:     record.Name,
			Price:    record.Price,
			Quantity: int(record.Quantity),
		})
	}
	return user
}

func (d orderDoc) toDomain() domain.Order {
	order := domain.Order{
		ID:          d.ID,
		UserID:      d.UserID,
		Total:       d.Total,
		PurchasedAt: d.Timestamp,
	}
	for _, item := range d.Items {
		order.Items = append(order.Items, domain.PurchaseRecord{
			ID:       item.ProductID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: int(item.Quantity),
		})
	}
	return order
}
