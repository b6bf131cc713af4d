package domain

// PurchaseRecord is one purchased line, immutable once recorded.
type PurchaseRecord struct {
	ID       string  `json:"id" bson:"id"`
	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// Subtotal returns price multiplied by quantity.
func (r PurchaseRecord) Subtotal() float64 {
	return r.Price * float64(r.Quantity)
}

// PurchaseHistory is an append-only ordered list of purchase records. Unlike
// Cart, records sharing an id are kept as separate entries: buying the same
// product twice produces two records.
type PurchaseHistory struct {
	Records []PurchaseRecord `json:"records" bson:"records"`
}

// RecordPurchase appends a single record.
func (h *PurchaseHistory) RecordPurchase(record PurchaseRecord) {
	h.Records = append(h.Records, record)
}

// RecordPurchases appends records in order.
func (h *PurchaseHistory) RecordPurchases(records []PurchaseRecord) {
	h.Records = append(h.Records, records...)
}

// HasPurchase reports whether any record matches the given id.
func (h *PurchaseHistory) HasPurchase(id string) bool {
	for _, record := range h.Records {
		if record.ID == id {
			return true
		}
	}
	return false
}

// TotalSpent is the sum of record subtotals. Zero for an empty history.
func (h *PurchaseHistory) TotalSpent() float64 {
	total := 0.0
	for _, record := range h.Records {
		total += record.Subtotal()
	}
	return total
}

// Clear empties the history. Administrative and test use only; checkout
// appends, it never clears.
func (h *PurchaseHistory) Clear() {
	h.Records = nil
}

// Clone returns a deep copy of the history.
func (h *PurchaseHistory) Clone() PurchaseHistory {
	if len(h.Records) == 0 {
		return PurchaseHistory{}
	}
	records := make([]PurchaseRecord, len(h.Records))
	copy(records, h.Records)
	return PurchaseHistory{Records: records}
}
