// Package sender classifies SMS sender identifiers. Indian transactional SMS
// arrives either from a regulator-registered alphanumeric DLT header
// (HDFCBK, VM-SWIGGY) or from a plain mobile number; only the former can be
// trusted as a business origin.
package sender

import (
	"regexp"
	"strings"
)

var (
	// Indian mobile numbers: optional +91 prefix, 10 digits starting 6-9.
	rePersonalIN = regexp.MustCompile(`^(\+?91)?[6-9]\d{9}$`)
	// International fallback: any bare 10-15 digit number.
	rePersonalIntl = regexp.MustCompile(`^\+?\d{10,15}$`)

	// DLT headers: 2-8 alphanumerics, optionally a two-letter route prefix
	// (XX-HDFCBK, AD-ICICIB).
	reHeader = regexp.MustCompile(`(?i)^([A-Z]{2}-)?[A-Z0-9]{2,8}$`)
	// Longer registered headers such as HDFCBANK or AIRTEL-DM.
	reHeaderExt = regexp.MustCompile(`(?i)^[A-Z]{2,}-?[A-Z0-9]+$`)

	sepReplacer = strings.NewReplacer("-", "", " ", "")
)

// Gate is the verdict on a sender identifier. Both fields can be false for
// strings that look like neither a mobile number nor a registered header;
// callers must treat that case as untrusted.
type Gate struct {
	IsPersonal         bool
	IsRegisteredHeader bool
}

// Untrusted reports whether the sender matched neither shape.
func (g Gate) Untrusted() bool {
	return !g.IsPersonal && !g.IsRegisteredHeader
}

// Classify categorizes a sender identifier. A missing sender is treated as
// personal/unknown so that it is never trusted as a business header.
func Classify(sender string) Gate {
	s := strings.TrimSpace(sender)
	if s == "" {
		return Gate{IsPersonal: true}
	}

	if IsPersonalNumber(s) {
		return Gate{IsPersonal: true}
	}
	if IsRegisteredHeader(s) {
		return Gate{IsRegisteredHeader: true}
	}
	return Gate{}
}

// IsPersonalNumber reports whether sender looks like a personal or unknown
// mobile number rather than a registered business header. Empty senders
// count as personal.
func IsPersonalNumber(sender string) bool {
	s := strings.TrimSpace(sender)
	if s == "" {
		return true
	}

	cleaned := sepReplacer.Replace(s)
	return rePersonalIN.MatchString(cleaned) || rePersonalIntl.MatchString(cleaned)
}

// IsRegisteredHeader reports whether sender matches a DLT-style alphanumeric
// header. Personal numbers never qualify, even when they fit the
// alphanumeric shape.
func IsRegisteredHeader(sender string) bool {
	s := strings.TrimSpace(sender)
	if s == "" {
		return false
	}

	if rePersonalIN.MatchString(sepReplacer.Replace(s)) {
		return false
	}
	return reHeader.MatchString(s) || reHeaderExt.MatchString(s)
}
