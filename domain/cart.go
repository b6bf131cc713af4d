package domain

// CartItem is a single cart line: a catalog product plus the quantity taken.
type CartItem struct {
	ProductID string  `json:"productId" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Subtotal returns price multiplied by quantity.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart is an ordered collection of items keyed by product id. A product id
// appears at most once; adding an id that is already present merges quantities
// instead of duplicating the line. Insertion order is preserved across updates.
//
// Mutate the cart through its methods. Items is exported for serialization only.
type Cart struct {
	Items []CartItem `json:"items" bson:"items"`
}

func (c *Cart) find(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// AddItem merges the item into an existing line with the same product id, or
// appends a new line. Items with quantity <= 0 and no existing line are
// silently ignored.
func (c *Cart) AddItem(item CartItem) {
	if existing := c.find(item.ProductID); existing != nil {
		existing.Quantity += item.Quantity
		return
	}
	if item.Quantity > 0 {
		c.Items = append(c.Items, item)
	}
}

// UpdateQuantity sets the quantity of an existing line exactly. A quantity of
// zero (or below) removes the line. Returns false when the product is not in
// the cart.
func (c *Cart) UpdateQuantity(productID string, quantity int) bool {
	existing := c.find(productID)
	if existing == nil {
		return false
	}
	if quantity <= 0 {
		c.RemoveItem(productID)
		return true
	}
	existing.Quantity = quantity
	return true
}

// RemoveItem drops the line matching productID. Returns true when a line was
// removed.
func (c *Cart) RemoveItem(productID string) bool {
	kept := c.Items[:0]
	removed := false
	for _, item := range c.Items {
		if item.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	c.Items = kept
	return removed
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Items = nil
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total is the sum of line subtotals. Zero for an empty cart.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// Clone returns a deep copy of the cart.
func (c *Cart) Clone() Cart {
	if len(c.Items) == 0 {
		return Cart{}
	}
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}
