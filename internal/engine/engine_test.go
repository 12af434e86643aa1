package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenkhata/greenkhata/internal/model"
)

func TestClassifyExpenseSwiggyUPI(t *testing.T) {
	e := NewRulesOnly(nil)

	got := e.ClassifyExpense(model.Message{
		Text:   "Rs.500 debited from A/c XX1234 to SWIGGY@ybl. UPI Ref: 123456789012",
		Sender: "HDFCBK",
	})

	assert.Equal(t, model.CategoryFood, got.Category)
	assert.Equal(t, model.SubDelivery, got.Subcategory)
	assert.Equal(t, "swiggy", got.Merchant)
	assert.Equal(t, model.TransactionDebit, got.TransactionType)
	assert.True(t, got.UPI.IsUPI)
	assert.Equal(t, "123456789012", got.UPI.UPIRef)
	assert.Equal(t, "swiggy@ybl", got.UPI.UPIID)
	require.NotNil(t, got.Amount)
	assert.InDelta(t, 500, got.Amount.Value, 1e-9)
	require.NotNil(t, got.Industry)
}

func TestClassifyExpenseAttachesIndustry(t *testing.T) {
	e := NewRulesOnly(nil)

	got := e.ClassifyExpense(model.Message{Text: "Payment to Tata Steel for raw materials"})

	require.NotNil(t, got.Industry)
	assert.Equal(t, model.SectorManufacturing, got.Industry.Sector)
	assert.Equal(t, model.MatchMerchant, got.Industry.MatchType)
	assert.Greater(t, got.Industry.Confidence, 0.9)
}

func TestProcessMessageDieselPurchase(t *testing.T) {
	e := NewRulesOnly(nil)

	got := e.ProcessMessage(model.Message{Text: "Filled 40 liters diesel at HPCL pump", Sender: "HPCL"})

	require.NotNil(t, got.Quantity)
	assert.InDelta(t, 40, got.Quantity.Value, 1e-9)
	assert.Equal(t, model.UnitLiter, got.Quantity.Unit)
	assert.Equal(t, "diesel", got.Quantity.Commodity)
	assert.Equal(t, model.CategoryFuel, got.Classification.Category)
	assert.Equal(t, model.Scope1, got.Scope.Scope)
	assert.True(t, got.IsImportant)
	assert.False(t, got.IsSpam)
	assert.Contains(t, got.ReasonCodes, "important_transaction")
	assert.Contains(t, got.ReasonCodes, "quantity_l")
}

func TestProcessMessageOTPIsSpam(t *testing.T) {
	e := NewRulesOnly(nil)

	got := e.ProcessMessage(model.Message{Text: "Your OTP is 123456. Do not share.", Sender: "HDFCBK"})

	assert.True(t, got.IsSpam)
	assert.False(t, got.IsImportant)
	assert.Contains(t, got.ReasonCodes, "spam_detected")
	assert.Equal(t, model.CategoryOther, got.Classification.Category)
}

func TestProcessMessageEmpty(t *testing.T) {
	e := NewRulesOnly(nil)

	got := e.ProcessMessage(model.Message{})

	assert.True(t, got.IsSpam)
	assert.False(t, got.IsImportant)
	assert.Equal(t, []string{"empty_message"}, got.ReasonCodes)
	assert.Nil(t, got.Quantity)
	assert.Nil(t, got.Amount)
}

func TestProcessMessageKWhElectricity(t *testing.T) {
	e := NewRulesOnly(nil)

	got := e.ProcessMessage(model.Message{Text: "Meter reading: 450 kWh consumed this cycle"})

	require.NotNil(t, got.Quantity)
	assert.Equal(t, model.UnitKWh, got.Quantity.Unit)
	assert.Equal(t, model.CategoryEnergy, got.Classification.Category)
	assert.Equal(t, model.Scope2, got.Scope.Scope)
	assert.True(t, got.IsImportant)
}

func TestDetectSpamScenarios(t *testing.T) {
	e := NewRulesOnly(nil)

	v := e.DetectSpam(model.Message{Text: "Your OTP is 123456. Do not share.", Sender: "HDFCBK"})
	assert.True(t, v.IsSpam)
	assert.Contains(t, v.ReasonCodes, "otp")
	assert.Nil(t, v.MLScore)

	v = e.DetectSpam(model.Message{Text: "Rs.500 debited from A/c XX1234. UPI Ref 123456789012", Sender: "HDFCBK"})
	assert.False(t, v.IsSpam)
	assert.True(t, v.IsTransactional)
}

func TestDetectSpamWithModelScorer(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)

	v := e.DetectSpam(model.Message{Text: "Your OTP is 123456. Do not share.", Sender: "HDFCBK"})
	assert.True(t, v.IsSpam)
	require.NotNil(t, v.MLScore)
	assert.Greater(t, *v.MLScore, 0.0)
	assert.Less(t, *v.MLScore, 1.0)
}
