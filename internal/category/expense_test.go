package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenkhata/greenkhata/internal/model"
)

func TestExpenseMerchantWins(t *testing.T) {
	got := Expense("Rs.450 paid to Swiggy, UPI Ref 123456789012")

	assert.Equal(t, model.CategoryFood, got.Category)
	assert.Equal(t, model.SubDelivery, got.Subcategory)
	assert.Equal(t, "swiggy", got.Merchant)
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)
	assert.Equal(t, model.TransactionDebit, got.TransactionType)
	require.NotNil(t, got.Amount)
	assert.InDelta(t, 450, got.Amount.Value, 1e-9)
	assert.Equal(t, "INR", got.Amount.Currency)
	assert.True(t, got.UPI.IsUPI)
	assert.Equal(t, "123456789012", got.UPI.UPIRef)
	assert.Equal(t, []string{"amount_extracted", "upi_transaction", "merchant_detected"}, got.ReasonCodes)
}

func TestExpenseUPIMerchantFallback(t *testing.T) {
	// "tata-sky" never matches the database as raw text, but the VPA local
	// part normalizes its separators to spaces before the second lookup.
	got := Expense("Paid Rs.350 to tata-sky@okaxis")

	assert.Equal(t, model.CategoryBills, got.Category)
	assert.Equal(t, model.SubDTH, got.Subcategory)
	assert.Equal(t, "tata sky", got.Merchant)
	assert.InDelta(t, 0.9*0.95, got.Confidence, 1e-9)
	assert.Contains(t, got.ReasonCodes, "upi_merchant_detected")
	assert.NotContains(t, got.ReasonCodes, "merchant_detected")
}

func TestExpenseKeywordFallback(t *testing.T) {
	got := Expense("Power consumption charge of Rs.900 levied")

	assert.Equal(t, model.CategoryEnergy, got.Category)
	assert.Equal(t, model.SubElectricity, got.Subcategory)
	assert.InDelta(t, 0.7, got.Confidence, 1e-9)
	assert.Empty(t, got.Merchant)
	assert.Contains(t, got.ReasonCodes, "keyword_matched")
	assert.Contains(t, got.ReasonCodes, "Power")
}

func TestExpenseKeywordReasonCodesCapped(t *testing.T) {
	// Fires cab ("Trip"), fuel ("petrol"), public ("journey") and online
	// ("checkout"); only the first three matched words survive as reason
	// codes.
	got := Expense("Trip starts, petrol filled, journey logged, checkout complete")

	assert.Equal(t, "keyword_matched", got.ReasonCodes[0])
	assert.Len(t, got.ReasonCodes, 1+maxKeywordReasonCodes)
}

func TestExpenseP2PTransfer(t *testing.T) {
	got := Expense("Paid Rs.500 to rahul123@okhdfcbank via UPI")

	assert.Equal(t, model.CategoryTransfer, got.Category)
	assert.Equal(t, model.SubP2P, got.Subcategory)
	assert.InDelta(t, 0.6, got.Confidence, 1e-9)
	assert.Equal(t, model.TransactionDebit, got.TransactionType)
	assert.Contains(t, got.ReasonCodes, "upi_p2p_transfer")
}

func TestExpenseCreditReceived(t *testing.T) {
	got := Expense("Rs.2000 credited")

	assert.Equal(t, model.CategoryTransfer, got.Category)
	assert.Equal(t, model.SubP2P, got.Subcategory)
	assert.InDelta(t, 0.5, got.Confidence, 1e-9)
	assert.Contains(t, got.ReasonCodes, "credit_received")
}

func TestExpenseSalaryKeyword(t *testing.T) {
	// "salary" is in the transfer keyword rules, so salaried credits
	// resolve at the keyword step rather than the credit heuristic.
	got := Expense("Salary credited for August")

	assert.Equal(t, model.CategoryTransfer, got.Category)
	assert.Equal(t, model.SubSalary, got.Subcategory)
	assert.InDelta(t, 0.7, got.Confidence, 1e-9)
}

func TestExpenseUnclassified(t *testing.T) {
	got := Expense("Hello, we leave at noon")

	assert.Equal(t, model.CategoryOther, got.Category)
	assert.Equal(t, model.SubGeneral, got.Subcategory)
	assert.InDelta(t, 0.3, got.Confidence, 1e-9)
	assert.Nil(t, got.Amount)
	assert.Equal(t, []string{"unclassified"}, got.ReasonCodes)
}

func TestExpenseEmpty(t *testing.T) {
	got := Expense("")

	assert.Equal(t, model.CategoryOther, got.Category)
	assert.Equal(t, []string{"empty_message"}, got.ReasonCodes)
}
