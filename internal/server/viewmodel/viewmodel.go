// Package viewmodel maps domain data to display-ready structures. It holds
// everything the original portal rendered through markup templates, kept as
// pure functions so the service layer stays renderer-agnostic.
package viewmodel

import (
	"fmt"
	"strconv"
	"time"

	"github.com/agriverse/warehouse/internal/domain/models"
)

const displayDateLayout = "Jan 2, 2006"

// Badge is a labeled display variant for statuses and qualities.
type Badge struct {
	Variant string `json:"variant"`
	Label   string `json:"label"`
}

// StatusBadge maps an item status to its display badge. Unknown statuses fall
// back to a neutral badge echoing the raw value.
func StatusBadge(status string) Badge {
	switch status {
	case models.StatusAvailable:
		return Badge{Variant: "success", Label: "For Sale"}
	case models.StatusSold:
		return Badge{Variant: "primary", Label: "Sold"}
	case models.StatusSpoiled:
		return Badge{Variant: "danger", Label: "Spoiled"}
	default:
		return Badge{Variant: "secondary", Label: status}
	}
}

// QualityBadge maps a quality grade to its display badge.
func QualityBadge(quality string) Badge {
	switch quality {
	case "Premium":
		return Badge{Variant: "success", Label: quality}
	case "Standard":
		return Badge{Variant: "warning", Label: quality}
	case "Regular":
		return Badge{Variant: "secondary", Label: quality}
	default:
		return Badge{Variant: "secondary", Label: quality}
	}
}

// ItemRow is one row of the inventory table.
type ItemRow struct {
	ID          models.FlexID `json:"id"`
	ProductName string        `json:"product_name"`
	AddedOn     string        `json:"added_on"`
	FarmerName  string        `json:"farmer_name"`
	FarmerPhone string        `json:"farmer_phone"`
	Quantity    string        `json:"quantity"`
	PricePerKg  string        `json:"price_per_kg"`
	Quality     Badge         `json:"quality"`
	Warehouse   string        `json:"warehouse"`
	Status      Badge         `json:"status"`
}

// ItemRows maps inventory items to table rows, preserving order.
func ItemRows(items []models.Item) []ItemRow {
	rows := make([]ItemRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, ItemRow{
			ID:          item.ID,
			ProductName: item.ProductName,
			AddedOn:     FormatDate(item.CreatedAt),
			FarmerName:  item.FarmerName,
			FarmerPhone: item.FarmerPhone,
			Quantity:    fmt.Sprintf("%s kg", formatNumber(item.Quantity)),
			PricePerKg:  fmt.Sprintf("Rs %s per kg", formatNumber(item.PricePerKg)),
			Quality:     QualityBadge(item.Quality),
			Warehouse:   item.Warehouse,
			Status:      StatusBadge(item.Status),
		})
	}
	return rows
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Icon        string `json:"icon"`
	ProductName string `json:"product_name"`
	Quantity    string `json:"quantity"`
	FarmerName  string `json:"farmer_name"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
}

// Activities maps ledger entries to activity feed entries, preserving order.
func Activities(transactions []models.Transaction) []Activity {
	feed := make([]Activity, 0, len(transactions))
	for _, tx := range transactions {
		icon := "box"
		if tx.Type == models.TxTypeSale {
			icon = "shopping-cart"
		}
		feed = append(feed, Activity{
			Icon:        icon,
			ProductName: tx.ProductName,
			Quantity:    fmt.Sprintf("%s kg", formatNumber(tx.Quantity)),
			FarmerName:  tx.FarmerName,
			Date:        FormatDate(tx.Date),
			Amount:      fmt.Sprintf("Rs %s", formatNumber(tx.TotalPrice)),
		})
	}
	return feed
}

// FormatDate renders a timestamp for display.
func FormatDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
