package catalog

import (
	"strings"

	"github.com/communitystore/backend/domain"
)

// items is the fixed store catalog. It is defined here at compile time and
// never mutated at runtime.
var items = []domain.CatalogItem{
	{ID: "ITEM001", Name: "Laptop Pro 15", Price: 999.99, Description: "High-performance laptop with 16GB RAM and SSD"},
	{ID: "ITEM002", Name: "Wireless Mouse", Price: 29.99, Description: "Ergonomic wireless mouse with long battery life"},
	{ID: "ITEM003", Name: "Mechanical Keyboard", Price: 79.99, Description: "RGB backlit mechanical keyboard with blue switches"},
	{ID: "ITEM004", Name: "4K Monitor", Price: 299.99, Description: "Ultra sharp IPS panel with 95% DCI-P3 coverage"},
	{ID: "ITEM005", Name: "USB-C Hub", Price: 49.99, Description: "7-in-1 USB-C hub with HDMI and SD card reader"},
	{ID: "ITEM006", Name: "Monitor Stand", Price: 39.99, Description: "Adjustable monitor stand with cable management"},
	{ID: "ITEM007", Name: "Webcam HD", Price: 79.99, Description: "1080p HD webcam with built-in microphone"},
	{ID: "ITEM008", Name: "Laptop Stand", Price: 59.99, Description: "Aluminum laptop stand for better ergonomics"},
	{ID: "ITEM009", Name: "USB-C Cable", Price: 19.99, Description: "6ft USB-C to USB-C charging cable"},
	{ID: "ITEM010", Name: "Gaming Headset", Price: 149.99, Description: "Wireless gaming headset with surround sound"},
	{ID: "ITEM011", Name: "External Hard Drive", Price: 89.99, Description: "2TB portable external hard drive"},
	{ID: "ITEM012", Name: "Wireless Charger", Price: 34.99, Description: "Fast wireless charging pad for phones"},
	{ID: "ITEM013", Name: "Laptop Sleeve", Price: 24.99, Description: "Protective laptop sleeve with padding"},
	{ID: "ITEM014", Name: "HDMI Cable", Price: 14.99, Description: "10ft high-speed HDMI 2.0 cable"},
	{ID: "ITEM015", Name: "Mouse Pad", Price: 29.99, Description: "Large gaming mouse pad with RGB lighting"},
}

// Store serves the read-only product catalog.
type Store struct {
	items []domain.CatalogItem
}

// NewStore returns a store over the fixed catalog.
func NewStore() *Store {
	return &Store{items: items}
}

// Search returns every item whose id, name or description contains the
// trimmed, lowercased query as a substring, in catalog definition order.
// An empty query after normalization yields no results, not the full catalog.
func (s *Store) Search(query string) []domain.CatalogItem {
	normalized := strings.ToLower(strings.TrimSpace(query))
	results := []domain.CatalogItem{}
	if normalized == "" {
		return results
	}
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item.ID), normalized) ||
			strings.Contains(strings.ToLower(item.Name), normalized) ||
			strings.Contains(strings.ToLower(item.Description), normalized) {
			results = append(results, item)
		}
	}
	return results
}

// GetAll returns the full catalog in definition order.
func (s *Store) GetAll() []domain.CatalogItem {
	out := make([]domain.CatalogItem, len(s.items))
	copy(out, s.items)
	return out
}

// GetByID returns the item with the exact, case-sensitive id, or false.
func (s *Store) GetByID(id string) (domain.CatalogItem, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.CatalogItem{}, false
}
