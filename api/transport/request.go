package transport

import "encoding/json"

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

type UpdateCartRequest struct {
	Quantity *int `json:"quantity"`
}

type PaymentMethod struct {
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
}

type CheckoutRequest struct {
	// ShippingAddress is echoed back verbatim in the order; its inner shape is
	// the client's business.
	ShippingAddress json.RawMessage `json:"shippingAddress"`
	PaymentMethod   *PaymentMethod  `json:"paymentMethod"`
}

type ProfileUpdateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Bio      string `json:"bio"`
}
