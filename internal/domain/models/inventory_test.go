package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemPatchAppliesOnlySetFields(t *testing.T) {
	item := Item{
		ProductName: "Potato",
		FarmerName:  "Ahmed Ali",
		Quantity:    100,
		PricePerKg:  40,
		Status:      StatusAvailable,
	}

	status := StatusSold
	quantity := 80.0
	ItemPatch{Status: &status, Quantity: &quantity}.Apply(&item)

	assert.Equal(t, StatusSold, item.Status)
	assert.Equal(t, 80.0, item.Quantity)
	// Untouched fields survive the merge.
	assert.Equal(t, "Potato", item.ProductName)
	assert.Equal(t, "Ahmed Ali", item.FarmerName)
	assert.Equal(t, 40.0, item.PricePerKg)
}

func TestItemPatchOverwritesWithZeroValues(t *testing.T) {
	item := Item{Quality: "Premium"}

	empty := ""
	ItemPatch{Quality: &empty}.Apply(&item)

	assert.Equal(t, "", item.Quality)
}

func TestSeedInventoryReturnsFreshCopies(t *testing.T) {
	first := SeedInventory()
	first[0].ProductName = "mutated"

	second := SeedInventory()
	assert.Equal(t, "Potato", second[0].ProductName)
	assert.Len(t, second, 2)
	assert.Equal(t, "Wheat", second[1].ProductName)
}
