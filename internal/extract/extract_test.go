package extract

import (
	"fmt"
	"testing"

	"github.com/greenkhata/greenkhata/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantity(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		want          *model.Quantity
		wantCommodity string
	}{
		{
			name: "kwh units",
			text: "Your meter recorded 320 kWh this month",
			want: &model.Quantity{Value: 320, Unit: model.UnitKWh, Commodity: "electricity"},
		},
		{
			name: "electricity units keyword",
			text: "Consumed 145 units, bill Rs.980",
			want: &model.Quantity{Value: 145, Unit: model.UnitKWh, Commodity: "electricity"},
		},
		{
			name: "diesel liters",
			text: "Filled 40 liters diesel at HPCL pump",
			want: &model.Quantity{Value: 40, Unit: model.UnitLiter, Commodity: "diesel"},
		},
		{
			name: "petrol litres with thousands separator",
			text: "1,200 litres petrol delivered",
			want: &model.Quantity{Value: 1200, Unit: model.UnitLiter, Commodity: "petrol"},
		},
		{
			name: "lpg liters",
			text: "LPG refill 15 ltr",
			want: &model.Quantity{Value: 15, Unit: model.UnitLiter, Commodity: "lpg"},
		},
		{
			name: "gallons converted to liters",
			text: "Bought 1 gallon of diesel",
			want: &model.Quantity{Value: 3.78541, Unit: model.UnitLiter, Commodity: "diesel"},
		},
		{
			name: "cubic meters natural gas",
			text: "Gas consumption 85 m3 for March",
			want: &model.Quantity{Value: 85, Unit: model.UnitM3, Commodity: "natural_gas"},
		},
		{
			name: "cng kilograms",
			text: "CNG filled 8.5 kg at station",
			want: &model.Quantity{Value: 8.5, Unit: model.UnitKg, Commodity: "cng"},
		},
		{
			name: "distance km",
			text: "Trip completed 23 km with Ola",
			want: &model.Quantity{Value: 23, Unit: model.UnitKm, Commodity: "distance"},
		},
		{
			name: "miles converted to km",
			text: "Drove 1 mile to the site",
			want: &model.Quantity{Value: 1.60934, Unit: model.UnitKm, Commodity: "distance"},
		},
		{
			name: "kg co2e",
			text: "Saved 12 kg CO2e this week",
			want: &model.Quantity{Value: 12, Unit: model.UnitKgCO2e, Commodity: "emissions"},
		},
		{
			name: "tonnes co2e converted to kg",
			text: "Offset purchase of 1 tonne CO2e confirmed",
			want: &model.Quantity{Value: 1000, Unit: model.UnitKgCO2e, Commodity: "emissions"},
		},
		{
			name: "kwh wins over liters",
			text: "Generator used 20 liters, produced 55 kWh",
			want: &model.Quantity{Value: 55, Unit: model.UnitKWh, Commodity: "electricity"},
		},
		{
			name: "no quantity",
			text: "Payment received, thank you",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantity(tt.text)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want.Unit, got.Unit)
			assert.Equal(t, tt.want.Commodity, got.Commodity)
			assert.InDelta(t, tt.want.Value, got.Value, 1e-6)
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "rs prefix", text: "Payment of Rs.500 received", want: 500},
		{name: "rs prefix no dot", text: "Rs 1,500.00 debited", want: 1500},
		{name: "rupee symbol", text: "₹2500.50 credited", want: 2500.50},
		{name: "inr prefix", text: "INR 10,000 transferred", want: 10000},
		{name: "suffix form", text: "Paid 750 Rs at counter", want: 750},
		{name: "labeled amount", text: "Amount: 1200 towards invoice", want: 1200},
		{name: "after debit verb", text: "Your account has been debited 5000", want: 5000},
		{name: "verb with currency token", text: "debited Rs.5000 towards EMI", want: 5000},
		{name: "indian comma grouping", text: "Rs.1,25,000.00 transferred", want: 125000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Amount(tt.text)
			require.NotNil(t, got)
			assert.Equal(t, "INR", got.Currency)
			assert.InDelta(t, tt.want, got.Value, 1e-9)
		})
	}

	assert.Nil(t, Amount(""))
	assert.Nil(t, Amount("Your order has been confirmed"))
}

// An amount-less alert must not surface dates or masked account digits as
// money: the verb pattern only accepts a number adjacent to the verb.
func TestAmountIgnoresNonAdjacentDigits(t *testing.T) {
	assert.Nil(t, Amount("Your A/c XX1234 was debited on 12-08-2025. Call bank if not you"))
	assert.Nil(t, Amount("Amount will be credited to A/c XX9876 within 3 days"))
}

func TestAmountIdempotent(t *testing.T) {
	first := Amount("Rs.2,499.50 debited for subscription")
	require.NotNil(t, first)

	again := Amount(fmt.Sprintf("Rs.%.2f", first.Value))
	require.NotNil(t, again)
	assert.InDelta(t, first.Value, again.Value, 1e-9)
}
