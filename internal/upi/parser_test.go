package upi

import (
	"testing"

	"github.com/greenkhata/greenkhata/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.UPIDetails
	}{
		{
			name: "standard debit message",
			text: "Rs.500.00 debited from A/c XX1234 to SWIGGY@ybl on 31-01-26. UPI Ref: 123456789012",
			want: model.UPIDetails{
				IsUPI:           true,
				TransactionType: model.TransactionDebit,
				UPIRef:          "123456789012",
				UPIID:           "swiggy@ybl",
				MerchantName:    "swiggy",
				AccountNumber:   "1234",
			},
		},
		{
			name: "credit message",
			text: "Rs.1000.00 credited to A/c XX5678 from JOHN@okaxis. UPI Ref: 987654321012",
			want: model.UPIDetails{
				IsUPI:           true,
				TransactionType: model.TransactionCredit,
				UPIRef:          "987654321012",
				UPIID:           "john@okaxis",
				MerchantName:    "john",
				AccountNumber:   "5678",
			},
		},
		{
			name: "vpa separators become spaces in merchant guess",
			text: "Paid to raju.kirana-store@paytm via UPI",
			want: model.UPIDetails{
				IsUPI:           true,
				TransactionType: model.TransactionDebit,
				UPIID:           "raju.kirana-store@paytm",
				MerchantName:    "raju kirana store",
				PaymentApp:      "paytm",
			},
		},
		{
			name: "payment app only",
			text: "Payment successful via PhonePe",
			want: model.UPIDetails{
				IsUPI:      true,
				PaymentApp: "phonepe",
			},
		},
		{
			name: "bank detected without upi",
			text: "HDFC Bank: cheque cleared",
			want: model.UPIDetails{
				Bank: "hdfc",
			},
		},
		{
			name: "generic upi keyword flags isupi",
			text: "Use BHIM for instant transfers",
			want: model.UPIDetails{
				IsUPI:      true,
				PaymentApp: "bhim",
			},
		},
		{
			name: "short reference ignored",
			text: "Txn 12345 completed",
			want: model.UPIDetails{},
		},
		{
			name: "empty text",
			text: "",
			want: model.UPIDetails{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text))
		})
	}
}
