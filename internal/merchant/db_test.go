package merchant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenkhata/greenkhata/internal/model"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantNil     bool
		merchant    string
		category    model.Category
		subcategory model.Subcategory
	}{
		{
			name:        "food delivery",
			text:        "Rs.450 debited for Swiggy order",
			merchant:    "swiggy",
			category:    model.CategoryFood,
			subcategory: model.SubDelivery,
		},
		{
			name:        "grocery beats delivery for quick commerce",
			text:        "Paid Rs.899 to Blinkit",
			merchant:    "blinkit",
			category:    model.CategoryFood,
			subcategory: model.SubGrocery,
		},
		{
			name:        "case insensitive",
			text:        "UBER ride completed, Rs.230 charged",
			merchant:    "uber",
			category:    model.CategoryTransport,
			subcategory: model.SubCab,
		},
		{
			name:        "fuel retailer",
			text:        "HPCL pump: Rs.2000 for diesel",
			merchant:    "hpcl",
			category:    model.CategoryTransport,
			subcategory: model.SubFuel,
		},
		{
			name:        "electricity board",
			text:        "BESCOM bill of Rs.1540 due on 15-Jun",
			merchant:    "bescom",
			category:    model.CategoryEnergy,
			subcategory: model.SubElectricity,
		},
		{
			name:        "dth wins over mobile recharge",
			text:        "Tata Sky recharge successful",
			merchant:    "tata sky",
			category:    model.CategoryBills,
			subcategory: model.SubDTH,
		},
		{
			name:        "ott premium does not become insurance",
			text:        "Your Netflix premium plan renewed",
			merchant:    "netflix",
			category:    model.CategoryEntertainment,
			subcategory: model.SubOTT,
		},
		{
			name:        "multi word merchant",
			text:        "Booked on Air India for Rs.5600",
			merchant:    "air india",
			category:    model.CategoryTransport,
			subcategory: model.SubFlight,
		},
		{
			name:        "whole word only",
			text:        "molasses delivered to warehouse",
			wantNil:     true,
			category:    model.CategoryOther,
			subcategory: "",
		},
		{
			name:    "empty text",
			text:    "   ",
			wantNil: true,
		},
		{
			name:    "no merchant",
			text:    "Meeting at 4pm tomorrow",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.text)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.merchant, got.Merchant)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.subcategory, got.Subcategory)
			assert.InDelta(t, MatchConfidence, got.Confidence, 1e-9)
		})
	}
}

func TestMatchPriorityOrder(t *testing.T) {
	// "amazon fresh" is in the grocery group; plain "amazon" is generic
	// online shopping. Grocery is evaluated first, so the fresh variant
	// must not fall through to shopping.
	got := Match("Order placed with Amazon Fresh for Rs.640")
	require.NotNil(t, got)
	assert.Equal(t, "amazon fresh", got.Merchant)
	assert.Equal(t, model.CategoryFood, got.Category)

	got = Match("Amazon order shipped")
	require.NotNil(t, got)
	assert.Equal(t, "amazon", got.Merchant)
	assert.Equal(t, model.CategoryShopping, got.Category)
	assert.Equal(t, model.SubOnline, got.Subcategory)
}
