package models

import "time"

// Item statuses. Transitions are one-directional in practice
// (available -> sold/spoiled) but updates may write any value.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusSpoiled   = "spoiled"
)

// Item represents one unit of produce tracked through its warehouse lifecycle.
type Item struct {
	ID          FlexID    `json:"id"`
	ProductName string    `json:"product_name"`
	FarmerName  string    `json:"farmer_name"`
	FarmerPhone string    `json:"farmer_phone"`
	Quantity    float64   `json:"quantity"`
	PricePerKg  float64   `json:"price_per_kg"`
	Quality     string    `json:"quality"`
	Warehouse   string    `json:"warehouse"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemDraft carries the caller-provided fields for a new item. The service
// assigns id, status and created_at.
type ItemDraft struct {
	ProductName string  `json:"product_name"`
	FarmerName  string  `json:"farmer_name"`
	FarmerPhone string  `json:"farmer_phone"`
	Quantity    float64 `json:"quantity"`
	PricePerKg  float64 `json:"price_per_kg"`
	Quality     string  `json:"quality"`
	Warehouse   string  `json:"warehouse"`
}

// ItemPatch is a partial item update. Nil fields are left untouched; any
// non-nil field overwrites the stored value.
type ItemPatch struct {
	ProductName *string  `json:"product_name"`
	FarmerName  *string  `json:"farmer_name"`
	FarmerPhone *string  `json:"farmer_phone"`
	Quantity    *float64 `json:"quantity"`
	PricePerKg  *float64 `json:"price_per_kg"`
	Quality     *string  `json:"quality"`
	Warehouse   *string  `json:"warehouse"`
	Status      *string  `json:"status"`
}

// Apply merges the patch over the item, shallow-merge semantics.
func (p ItemPatch) Apply(item *Item) {
	if p.ProductName != nil {
		item.ProductName = *p.ProductName
	}
	if p.FarmerName != nil {
		item.FarmerName = *p.FarmerName
	}
	if p.FarmerPhone != nil {
		item.FarmerPhone = *p.FarmerPhone
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.PricePerKg != nil {
		item.PricePerKg = *p.PricePerKg
	}
	if p.Quality != nil {
		item.Quality = *p.Quality
	}
	if p.Warehouse != nil {
		item.Warehouse = *p.Warehouse
	}
	if p.Status != nil {
		item.Status = *p.Status
	}
}

// InventoryFilters narrows an inventory listing. Filters combine
// conjunctively; empty fields are ignored.
type InventoryFilters struct {
	Status      string
	ProductName string
	Warehouse   string
	Search      string
}

// SeedInventory returns a fresh copy of the built-in demo inventory used to
// self-heal an empty store.
func SeedInventory() []Item {
	return []Item{
		{
			ID:          1,
			ProductName: "Potato",
			FarmerName:  "Ahmed Ali",
			FarmerPhone: "0300-1234567",
			Quantity:    100,
			PricePerKg:  40,
			Quality:     "Premium",
			Warehouse:   "Lahore",
			Status:      StatusAvailable,
			CreatedAt:   time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          2,
			ProductName: "Wheat",
			FarmerName:  "Muhammad Hussain",
			FarmerPhone: "0312-7654321",
			Quantity:    200,
			PricePerKg:  60,
			Quality:     "Standard",
			Warehouse:   "Faisalabad",
			Status:      StatusAvailable,
			CreatedAt:   time.Date(2024, 1, 14, 14, 20, 0, 0, time.UTC),
		},
	}
}
