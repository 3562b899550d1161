package models

import "time"

// Transaction types produced by the current flows. The field is otherwise a
// free string and is never validated on read.
const (
	TxTypeSale     = "sale"
	TxTypeAddition = "addition"
)

// Transaction is an immutable ledger entry snapshotting an addition or sale
// event. Entries are never updated or deleted once recorded.
type Transaction struct {
	ID          FlexID    `json:"id"`
	Type        string    `json:"type"`
	ProductName string    `json:"product_name"`
	FarmerName  string    `json:"farmer_name"`
	Quantity    float64   `json:"quantity"`
	PricePerKg  float64   `json:"price_per_kg"`
	TotalPrice  float64   `json:"total_price"`
	Date        time.Time `json:"date"`
	Note        string    `json:"note,omitempty"`
	Buyer       string    `json:"buyer,omitempty"`
}

// SeedTransactions returns the built-in demo ledger seeded at login, a single
// historical sale.
func SeedTransactions() []Transaction {
	return []Transaction{
		{
			ID:          1,
			Type:        TxTypeSale,
			ProductName: "Tomato",
			FarmerName:  "Fatima Bibi",
			Quantity:    50,
			PricePerKg:  80,
			TotalPrice:  4000,
			Date:        time.Date(2024, 1, 13, 9, 15, 0, 0, time.UTC),
			Buyer:       "Sabzi Mandi",
		},
	}
}
