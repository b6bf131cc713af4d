package domain

import "strings"

// User is the account aggregate. Cart and PurchaseHistory are owned exclusively
// by their user and are loaded and saved with it as one unit.
type User struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Password string          `json:"-"`
	FullName string          `json:"fullName,omitempty"`
	Bio      string          `json:"bio,omitempty"`
	Cart     Cart            `json:"cart"`
	History  PurchaseHistory `json:"history"`
}

// Clone returns a deep copy of the aggregate.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Cart = u.Cart.Clone()
	clone.History = u.History.Clone()
	return &clone
}

// NormalizeEmail trims surrounding whitespace and lowercases an email address.
// Every email comparison and every stored email goes through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
