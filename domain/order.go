package domain

import "time"

// Order is the immutable record written at checkout, one per completed
// purchase. It duplicates the purchased lines so the order survives later
// changes to the user aggregate.
type Order struct {
	ID          string           `json:"orderId"`
	UserID      string           `json:"userId"`
	Items       []PurchaseRecord `json:"items"`
	Total       float64          `json:"total"`
	PurchasedAt time.Time        `json:"purchasedAt"`
}
