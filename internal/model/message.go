// Package model defines the core domain models used throughout the
// classification pipeline. Everything here is a plain value type: inputs are
// never mutated and results carry no handles or callbacks.
package model

// Message is a single inbound SMS with an optional sender identifier.
// An empty Sender means the origin is unknown.
type Message struct {
	Text   string
	Sender string
}

// Unit is the normalized physical unit of an extracted quantity.
type Unit string

// Supported quantity units. Imperial inputs (miles, gallons, tonnes) are
// converted at extraction time and never appear here.
const (
	UnitKWh    Unit = "kwh"
	UnitLiter  Unit = "l"
	UnitM3     Unit = "m3"
	UnitKm     Unit = "km"
	UnitKg     Unit = "kg"
	UnitKgCO2e Unit = "kgco2e"
)

// Quantity is a physical quantity extracted from message text.
// Value is always non-negative; Commodity refines what was measured
// (e.g. "diesel" for liters, "electricity" for kWh).
type Quantity struct {
	Commodity string
	Unit      Unit
	Value     float64
}

// MonetaryAmount is a strictly positive monetary value. Only INR is produced
// by the extractor today.
type MonetaryAmount struct {
	Currency string
	Value    float64
}

// TransactionType distinguishes the direction of a parsed payment.
type TransactionType string

// Transaction directions.
const (
	TransactionDebit  TransactionType = "debit"
	TransactionCredit TransactionType = "credit"
	TransactionNone   TransactionType = ""
)

// UPIDetails holds payment metadata parsed from a transaction message.
// All string fields are lower-cased when present and empty when absent.
type UPIDetails struct {
	TransactionType TransactionType
	UPIRef          string
	UPIID           string
	MerchantName    string
	PaymentApp      string
	AccountNumber   string
	Bank            string
	IsUPI           bool
}
