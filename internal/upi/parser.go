// Package upi parses Indian UPI payment metadata out of transaction messages:
// reference numbers, virtual payment addresses, banks, payment apps, masked
// account suffixes, and the debit/credit direction. Every field is extracted
// independently; a miss on one never blocks the others.
package upi

import (
	"regexp"
	"strings"

	"github.com/greenkhata/greenkhata/internal/model"
)

var (
	// Reference numbers carried by UPI/IMPS/NEFT confirmations are 12+
	// digits.
	reRef = regexp.MustCompile(`(?i)\b(?:upi\s*(?:ref|id|txn)?[:.\s]*|ref(?:erence)?[:.\s]*|txn[:.\s]*)(\d{12,})\b`)

	// Virtual payment address: local@handle.
	reVPA = regexp.MustCompile(`\b([a-zA-Z0-9._-]+@[a-zA-Z]+)\b`)

	reDebit  = regexp.MustCompile(`(?i)\b(debited|debit|paid|spent|payment\s*of|sent|transferred)\b`)
	reCredit = regexp.MustCompile(`(?i)\b(credited|credit|received|got|deposited)\b`)

	// Masked account suffix: A/c XX1234, Acct **5678.
	reAccount = regexp.MustCompile(`(?i)\b(?:a/c|acct?|account)\s*(?:no\.?|number)?\s*[x*]*(\d{4,})\b`)

	reBank = regexp.MustCompile(`(?i)\b(hdfc|icici|sbi|axis|kotak|pnb|bob|canara|union|idbi|yes\s*bank|indusind|federal|rbl|au\s*small|equitas|idfc|bandhan)\b`)

	reApp = regexp.MustCompile(`(?i)\b(gpay|google\s*pay|phonepe|paytm|bhim|amazon\s*pay|whatsapp\s*pay|cred|fampay)\b`)

	reUPIKeyword = regexp.MustCompile(`(?i)\b(upi|bhim|vpa)\b`)

	vpaSeparators = strings.NewReplacer(".", " ", "_", " ", "-", " ")
)

// Parse extracts UPI transaction details from message text. IsUPI is set when
// a reference, VPA, or payment app is found, or when a generic UPI keyword
// appears.
func Parse(text string) model.UPIDetails {
	t := strings.TrimSpace(text)
	var d model.UPIDetails
	if t == "" {
		return d
	}

	if m := reRef.FindStringSubmatch(t); m != nil {
		d.IsUPI = true
		d.UPIRef = m[1]
	}

	if m := reVPA.FindStringSubmatch(t); m != nil {
		d.IsUPI = true
		d.UPIID = strings.ToLower(m[1])
		// The local part doubles as a merchant-name guess.
		local := strings.SplitN(d.UPIID, "@", 2)[0]
		d.MerchantName = strings.TrimSpace(vpaSeparators.Replace(local))
	}

	switch {
	case reDebit.MatchString(t):
		d.TransactionType = model.TransactionDebit
	case reCredit.MatchString(t):
		d.TransactionType = model.TransactionCredit
	}

	if m := reAccount.FindStringSubmatch(t); m != nil {
		d.AccountNumber = m[1]
	}

	if m := reBank.FindStringSubmatch(t); m != nil {
		d.Bank = strings.ToLower(m[1])
	}

	if m := reApp.FindStringSubmatch(t); m != nil {
		d.IsUPI = true
		d.PaymentApp = strings.ToLower(m[1])
	}

	if reUPIKeyword.MatchString(t) {
		d.IsUPI = true
	}

	return d
}
