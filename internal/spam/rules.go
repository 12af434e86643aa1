// Package spam decides whether a message is a relevant financial transaction
// or noise. The decision is rules-only: a hard sender gate, then weighted
// importance signals, then weighted spam signals. For an MSME expense tool
// "spam" means anything that is not a business-relevant transaction, OTPs and
// delivery updates included.
package spam

import (
	"regexp"
	"strings"

	"github.com/greenkhata/greenkhata/internal/model"
	"github.com/greenkhata/greenkhata/internal/sender"
)

// signal is one weighted rule in a scoring table. Tables are ordered slices:
// evaluation order doubles as the order signals surface in reason codes.
type signal struct {
	re     *regexp.Regexp
	tag    string
	weight float64
}

// importanceSignals mark business-relevant transactions. A combined weight of
// importanceThreshold or more classifies the message as transactional.
var importanceSignals = []signal{
	{tag: "debit_credit", weight: 0.5,
		re: regexp.MustCompile(`(?i)\b(debited|credited|withdrawn|deposited|transferred|paid\s*to|received\s*from|sent\s*to)\b`)},
	{tag: "account_info", weight: 0.3,
		re: regexp.MustCompile(`(?i)\b(a/c\s*[x*]+\d+|acct?\s*[x*]+\d+|available\s*bal|avl\s*bal|current\s*bal|closing\s*bal|statement)\b`)},
	{tag: "txn_ref", weight: 0.3,
		re: regexp.MustCompile(`(?i)\b(upi\s*ref|imps\s*ref|neft\s*ref|txn\s*id|ref\s*no|transaction\s*id)\b`)},
	{tag: "emi_payment", weight: 0.4,
		re: regexp.MustCompile(`(?i)\b(emi\s*of\s*rs|emi\s*paid|emi\s*due|loan\s*emi|emi\s*amount|auto\s*debit|mandate)\b`)},
	{tag: "bill_payment", weight: 0.3,
		re: regexp.MustCompile(`(?i)\b(bill\s*paid|payment\s*successful|payment\s*received|payment\s*confirmed|recharge\s*successful)\b`)},
	{tag: "expense_related", weight: 0.25,
		re: regexp.MustCompile(`(?i)\b(fuel|diesel|petrol|electricity|kwh|invoice|dispatch|vendor|supplier|material|purchase\s*order)\b`)},
}

// spamSignals mark non-transactional noise.
var spamSignals = []signal{
	{tag: "otp", weight: 0.6,
		re: regexp.MustCompile(`(?i)\b(otp|one[-\s]?time\s*password|verification\s*code|auth\s*code|code\s*is\s*\d{4,8}|your\s*otp|otp\s*for|valid\s*for\s*\d+\s*min|do\s*not\s*share|pin\s*is)\b`)},
	{tag: "promotional", weight: 0.5,
		re: regexp.MustCompile(`(?i)\b(offer|discount|sale|deal|cashback|coupon|promo|off\s*on|flat\s*\d+%|upto\s*\d+%|limited\s*time|exclusive|special\s*price|shop\s*now|buy\s*now|order\s*now)\b`)},
	{tag: "marketing", weight: 0.4,
		re: regexp.MustCompile(`(?i)\b(new\s*launch|introducing|check\s*out|visit\s*store|download\s*app|install\s*now|subscribe|follow\s*us|like\s*us)\b`)},
	{tag: "alerts", weight: 0.3,
		re: regexp.MustCompile(`(?i)\b(reminder|due\s*date|upcoming|scheduled|expiring|renewal|kyc\s*update|update\s*kyc|link\s*pan|verify)\b`)},
	{tag: "delivery", weight: 0.3,
		re: regexp.MustCompile(`(?i)\b(out\s*for\s*delivery|delivered|shipped|dispatched|arriving|in\s*transit|track\s*your|order\s*status)\b`)},
	{tag: "service_notif", weight: 0.3,
		re: regexp.MustCompile(`(?i)\b(subscription|plan\s*activated|plan\s*expired|data\s*balance|validity|recharged|activated|deactivated)\b`)},
}

const (
	// importanceThreshold is the combined importance weight at which a
	// message counts as transactional.
	importanceThreshold = 0.5
	// spamThreshold is deliberately low: most non-transaction traffic is
	// noise for an expense tool.
	spamThreshold = 0.3
	// unclassifiedSpamScore is the default when no signal fires either
	// way. Absence of evidence defaults to spam; this is policy, not an
	// accident.
	unclassifiedSpamScore = 0.6
)

// DetectRules classifies a message as spam or transactional using the
// weighted signal tables. Messages from personal numbers are always spam and
// never transactional, regardless of content.
func DetectRules(text, from string) model.SpamResult {
	t := strings.TrimSpace(text)
	if t == "" {
		return model.SpamResult{IsSpam: true, Score: 1.0, Signals: []string{"empty"}}
	}

	var signals []string

	// Hard gate: personal numbers cannot produce trusted transactions.
	if sender.IsPersonalNumber(from) {
		return model.SpamResult{IsSpam: true, Score: 1.0, Signals: []string{"personal_number"}}
	}
	if sender.IsRegisteredHeader(from) {
		signals = append(signals, "dlt_header")
	}

	var importance float64
	for _, s := range importanceSignals {
		if s.re.MatchString(t) {
			importance += s.weight
			signals = append(signals, s.tag)
		}
	}

	if importance >= importanceThreshold {
		score := 1.0 - importance
		if score < 0 {
			score = 0
		}
		return model.SpamResult{
			IsSpam:          false,
			Score:           score,
			Signals:         signals,
			IsTransactional: true,
		}
	}

	var spamScore float64
	for _, s := range spamSignals {
		if s.re.MatchString(t) {
			spamScore += s.weight
			signals = append(signals, s.tag)
		}
	}

	if spamScore == 0 && importance == 0 {
		signals = append(signals, "unclassified")
		spamScore = unclassifiedSpamScore
	}
	if spamScore > 1.0 {
		spamScore = 1.0
	}

	return model.SpamResult{
		IsSpam:  spamScore >= spamThreshold,
		Score:   spamScore,
		Signals: signals,
	}
}
