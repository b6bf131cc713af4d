package domain

// CatalogItem is a product in the fixed store catalog. Catalog contents are
// defined at startup and never mutated.
type CatalogItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}
