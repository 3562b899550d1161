package models

// Stats is the dashboard summary derived from the inventory and transaction
// lists. JSON field names match what the dashboard consumers expect.
type Stats struct {
	TotalItems   int     `json:"totalItems"`
	SoldItems    int     `json:"soldItems"`
	SpoiledItems int     `json:"spoiledItems"`
	TotalRevenue float64 `json:"totalRevenue"`
}
