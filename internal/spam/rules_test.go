package spam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRulesPersonalGate(t *testing.T) {
	// Content that would otherwise be strongly transactional.
	text := "Rs.500 debited from A/c XX1234. UPI Ref: 123456789012"

	for _, from := range []string{"9876543210", "+919876543210", "", "+91-98765 43210"} {
		got := DetectRules(text, from)
		assert.True(t, got.IsSpam, "sender %q", from)
		assert.False(t, got.IsTransactional, "sender %q", from)
		assert.Equal(t, 1.0, got.Score, "sender %q", from)
		assert.Equal(t, []string{"personal_number"}, got.Signals, "sender %q", from)
	}
}

func TestDetectRulesTransactional(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		from        string
		wantSignals []string
		wantScore   float64
	}{
		{
			name:        "debit with reference",
			text:        "Rs.500 debited from A/c XX1234 to SWIGGY@ybl. UPI Ref: 123456789012",
			from:        "HDFCBK",
			wantSignals: []string{"dlt_header", "debit_credit", "account_info", "txn_ref"},
			// Importance 1.1 overshoots; the score floors at zero.
			wantScore: 0,
		},
		{
			name:        "emi confirmation",
			text:        "EMI of Rs 4,500 paid to Bajaj Finserv via auto debit",
			from:        "BAJFIN",
			wantSignals: []string{"dlt_header", "debit_credit", "emi_payment"},
			wantScore:   1.0 - (0.5 + 0.4),
		},
		{
			name:        "bill plus expense keywords",
			text:        "Electricity bill paid successfully, 320 kWh consumed",
			from:        "BESCOM",
			wantSignals: []string{"dlt_header", "bill_payment", "expense_related"},
			wantScore:   1.0 - (0.3 + 0.25),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectRules(tt.text, tt.from)
			assert.False(t, got.IsSpam)
			assert.True(t, got.IsTransactional)
			assert.InDelta(t, tt.wantScore, got.Score, 1e-9)
			assert.Equal(t, tt.wantSignals, got.Signals)
		})
	}
}

func TestDetectRulesSpam(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantSignal string
		wantScore  float64
	}{
		{
			name:       "otp",
			text:       "Your OTP is 123456. Do not share.",
			wantSignal: "otp",
			wantScore:  0.6,
		},
		{
			name:       "promotional",
			text:       "Flat 50% discount this weekend only!",
			wantSignal: "promotional",
			wantScore:  0.5,
		},
		{
			name:       "marketing",
			text:       "Introducing our new store, download app today",
			wantSignal: "marketing",
			wantScore:  0.4,
		},
		{
			name:       "delivery",
			text:       "Your package is out for delivery",
			wantSignal: "delivery",
			wantScore:  0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectRules(tt.text, "VM-NOTIFY")
			assert.True(t, got.IsSpam)
			assert.False(t, got.IsTransactional)
			assert.Contains(t, got.Signals, tt.wantSignal)
			assert.InDelta(t, tt.wantScore, got.Score, 1e-9)
		})
	}
}

func TestDetectRulesSpamScoreCapped(t *testing.T) {
	text := "Your OTP for the exclusive offer: subscribe now, reminder: order status delivered"
	got := DetectRules(text, "VM-NOTIFY")
	assert.True(t, got.IsSpam)
	assert.Equal(t, 1.0, got.Score)
}

func TestDetectRulesDefaultsToSpam(t *testing.T) {
	// No importance signal, no spam signal: conservative policy says spam.
	got := DetectRules("hello how are you doing", "VM-NOTIFY")
	assert.True(t, got.IsSpam)
	assert.InDelta(t, 0.6, got.Score, 1e-9)
	assert.Contains(t, got.Signals, "unclassified")
}

func TestDetectRulesEmptyText(t *testing.T) {
	got := DetectRules("   ", "HDFCBK")
	assert.True(t, got.IsSpam)
	assert.Equal(t, 1.0, got.Score)
	assert.Equal(t, []string{"empty"}, got.Signals)
}

func TestDetectRulesWeakImportanceFallsThrough(t *testing.T) {
	// A lone expense keyword (0.25) is below the transactional threshold.
	// Because an importance signal fired, the unclassified default does
	// not apply: the message is neither transactional nor spam.
	got := DetectRules("diesel stock update for the depot", "VM-DEPOT")
	assert.False(t, got.IsSpam)
	assert.False(t, got.IsTransactional)
	assert.InDelta(t, 0.0, got.Score, 1e-9)
	assert.Contains(t, got.Signals, "expense_related")
	assert.NotContains(t, got.Signals, "unclassified")
}

type stubScorer struct{ spamProb float64 }

func (s stubScorer) Score(string) Prediction {
	return Prediction{Classes: []string{"transaction", "spam"}, Probabilities: []float64{1 - s.spamProb, s.spamProb}}
}

func TestDetectorPredict(t *testing.T) {
	d := NewDetector(stubScorer{spamProb: 0.9})

	got := d.Predict("Your OTP is 123456. Do not share.", "HDFCBK")
	assert.True(t, got.IsSpam)
	assert.Contains(t, got.ReasonCodes, "otp")
	require.NotNil(t, got.MLScore)
	assert.InDelta(t, 0.9, *got.MLScore, 1e-9)
	// Decision stays rules-only: the rule score is the confidence.
	assert.InDelta(t, 0.6, got.Confidence, 1e-9)

	txn := d.Predict("Rs.500 debited from A/c XX1234. UPI Ref: 123456789012", "HDFCBK")
	assert.False(t, txn.IsSpam)
	assert.True(t, txn.IsTransactional)
	assert.InDelta(t, 1.0-txn.RuleScore, txn.Confidence, 1e-9)
}

func TestDetectorWithoutScorer(t *testing.T) {
	d := NewDetector(nil)
	got := d.Predict("Flat 50% discount today", "VM-PROMO")
	assert.True(t, got.IsSpam)
	assert.Nil(t, got.MLScore)
}
