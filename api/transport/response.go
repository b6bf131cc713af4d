// Package transport defines the wire types of the JSON API. Field names and
// the success/message envelope are a compatibility contract with existing
// clients; do not rename them.
package transport

import (
	"encoding/json"
	"strconv"

	"github.com/communitystore/backend/domain"
)

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewError builds a failure envelope from a message.
func NewError(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// ProfilePayload is the optional nested profile block of a user payload.
type ProfilePayload struct {
	FullName string `json:"fullName,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// UserPayload is the public view of an account.
type UserPayload struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Profile  *ProfilePayload `json:"profile,omitempty"`
}

// NewUserPayload converts a user aggregate, attaching the profile block only
// when at least one profile field is set.
func NewUserPayload(user *domain.User) UserPayload {
	payload := UserPayload{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
	if user.FullName != "" || user.Bio != "" {
		payload.Profile = &ProfilePayload{FullName: user.FullName, Bio: user.Bio}
	}
	return payload
}

// AuthResponse answers signup, login and profile updates.
type AuthResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserPayload `json:"user"`
}

// MeResponse answers GET /api/me.
type MeResponse struct {
	Success bool        `json:"success"`
	User    UserPayload `json:"user"`
}

// CartItemPayload is one cart line on the wire.
type CartItemPayload struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CartResponse answers every cart mutation with the full resulting cart.
type CartResponse struct {
	Success bool              `json:"success"`
	Cart    []CartItemPayload `json:"cart"`
	Total   float64           `json:"total"`
}

// NewCartResponse flattens a cart into the wire shape.
func NewCartResponse(cart *domain.Cart) CartResponse {
	resp := CartResponse{Success: true, Cart: []CartItemPayload{}}
	if cart == nil {
		return resp
	}
	for _, item := range cart.Items {
		resp.Cart = append(resp.Cart, CartItemPayload{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	resp.Total = cart.Total()
	return resp
}

// CatalogItemPayload is one product on the wire.
type CatalogItemPayload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// CatalogResponse answers GET /api/catalog.
type CatalogResponse struct {
	Success bool                 `json:"success"`
	Items   []CatalogItemPayload `json:"items"`
}

// SearchResponse answers GET /api/search.
type SearchResponse struct {
	Success bool                 `json:"success"`
	Query   string               `json:"query"`
	Results []CatalogItemPayload `json:"results"`
}

// NewCatalogItems converts catalog items to wire payloads.
func NewCatalogItems(items []domain.CatalogItem) []CatalogItemPayload {
	payloads := make([]CatalogItemPayload, 0, len(items))
	for _, item := range items {
		payloads = append(payloads, CatalogItemPayload{
			ID:          item.ID,
			Name:        item.Name,
			Price:       item.Price,
			Description: item.Description,
		})
	}
	return payloads
}

// OrderItemPayload is one purchased line of an order on the wire.
type OrderItemPayload struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// PaymentSummary is the masked payment block of a checkout response. Only the
// last four digits of a card number ever appear.
type PaymentSummary struct {
	Last4          string `json:"last4,omitempty"`
	CardholderName string `json:"cardholderName,omitempty"`
}

// OrderPayload is an order on the wire. PurchasedAt is a unix-seconds string.
type OrderPayload struct {
	OrderID         string             `json:"orderId"`
	PurchasedAt     string             `json:"purchasedAt"`
	Items           []OrderItemPayload `json:"items"`
	Total           float64            `json:"total"`
	ShippingAddress json.RawMessage    `json:"shippingAddress,omitempty"`
	PaymentSummary  *PaymentSummary    `json:"paymentSummary,omitempty"`
}

// NewOrderPayload converts an order record to the wire shape.
func NewOrderPayload(order domain.Order) OrderPayload {
	payload := OrderPayload{
		OrderID:     order.ID,
		PurchasedAt: strconv.FormatInt(order.PurchasedAt.Unix(), 10),
		Items:       []OrderItemPayload{},
		Total:       order.Total,
	}
	for _, item := range order.Items {
		payload.Items = append(payload.Items, OrderItemPayload{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return payload
}

// CheckoutResponse answers POST /api/checkout.
type CheckoutResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Order   OrderPayload `json:"order"`
}

// HistoryResponse answers GET /api/purchase-history.
type HistoryResponse struct {
	Success bool           `json:"success"`
	History []OrderPayload `json:"history"`
}

// HealthResponse answers GET /api/health.
type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Port      int    `json:"port"`
	Backend   string `json:"backend"`
	Online    bool   `json:"online"`
	LastCheck string `json:"lastCheck,omitempty"`
}
