package extract

import (
	"regexp"
	"strings"

	"github.com/greenkhata/greenkhata/internal/model"
)

// amountPatterns are tried in order; the first strictly positive parse wins.
var amountPatterns = []*regexp.Regexp{
	// Currency-prefixed: Rs.500, ₹2500.50, INR 10,000.
	regexp.MustCompile(`(?i)(?:rs\.?|₹|inr)\s*([\d,]+(?:\.\d{1,2})?)`),
	// Currency-suffixed: 500 Rs.
	regexp.MustCompile(`(?i)([\d,]+(?:\.\d{1,2})?)\s*(?:rs\.?|₹|inr)`),
	// Labeled: Amount: 1200.
	regexp.MustCompile(`(?i)(?:amount|amt)[:.\s]*([\d,]+(?:\.\d{1,2})?)`),
	// Immediately following a transaction verb: debited 5000, credited Rs.200.
	// The number must be adjacent to the verb (an optional currency token may
	// sit between); otherwise dates or masked account digits later in an
	// amount-less alert would parse as money.
	regexp.MustCompile(`(?i)(?:debited|credited|paid|received)\s*(?:rs\.?|₹|inr)?\s*([\d,]+(?:\.\d{1,2})?)`),
}

// Amount extracts the first monetary amount from text. Only INR amounts are
// recognized. Returns nil when no pattern yields a positive value.
func Amount(text string) *model.MonetaryAmount {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil
	}

	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		if v, ok := parseNumber(m[1]); ok && v > 0 {
			return &model.MonetaryAmount{Value: v, Currency: "INR"}
		}
	}
	return nil
}
