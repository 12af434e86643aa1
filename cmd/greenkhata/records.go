package main

import "github.com/greenkhata/greenkhata/internal/model"

// JSON shapes for machine-readable output. These stay flat and stable so
// downstream scripts can depend on them.

type amountJSON struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
}

type quantityJSON struct {
	Commodity string  `json:"commodity,omitempty"`
	Unit      string  `json:"unit"`
	Value     float64 `json:"value"`
}

type upiJSON struct {
	ID      string `json:"id,omitempty"`
	Ref     string `json:"ref,omitempty"`
	App     string `json:"app,omitempty"`
	Bank    string `json:"bank,omitempty"`
	Account string `json:"account,omitempty"`
}

type expenseJSON struct {
	ID              string      `json:"id"`
	Sender          string      `json:"sender,omitempty"`
	Category        string      `json:"category"`
	Subcategory     string      `json:"subcategory"`
	Confidence      float64     `json:"confidence"`
	Merchant        string      `json:"merchant,omitempty"`
	TransactionType string      `json:"transaction_type,omitempty"`
	Amount          *amountJSON `json:"amount,omitempty"`
	UPI             *upiJSON    `json:"upi,omitempty"`
	Sector          string      `json:"sector,omitempty"`
	SectorMatch     string      `json:"sector_match,omitempty"`
	ReasonCodes     []string    `json:"reason_codes"`
}

type scanJSON struct {
	ID          string        `json:"id"`
	Sender      string        `json:"sender,omitempty"`
	Category    string        `json:"category"`
	Subcategory string        `json:"subcategory"`
	Activity    string        `json:"activity,omitempty"`
	Confidence  float64       `json:"confidence"`
	Scope       int           `json:"scope"`
	ScopeLabel  string        `json:"scope_label"`
	ScopeReason string        `json:"scope_reason"`
	Quantity    *quantityJSON `json:"quantity,omitempty"`
	Amount      *amountJSON   `json:"amount,omitempty"`
	IsImportant bool          `json:"is_important"`
	IsSpam      bool          `json:"is_spam"`
	ReasonCodes []string      `json:"reason_codes"`
}

func amountRecord(a *model.MonetaryAmount) *amountJSON {
	if a == nil {
		return nil
	}
	return &amountJSON{Currency: a.Currency, Value: a.Value}
}

func quantityRecord(q *model.Quantity) *quantityJSON {
	if q == nil {
		return nil
	}
	return &quantityJSON{Commodity: q.Commodity, Unit: string(q.Unit), Value: q.Value}
}

func expenseRecord(id string, msg model.Message, r model.ExpenseResult) expenseJSON {
	rec := expenseJSON{
		ID:              id,
		Sender:          msg.Sender,
		Category:        string(r.Category),
		Subcategory:     string(r.Subcategory),
		Confidence:      r.Confidence,
		Merchant:        r.Merchant,
		TransactionType: string(r.TransactionType),
		Amount:          amountRecord(r.Amount),
		ReasonCodes:     r.ReasonCodes,
	}
	if r.UPI.IsUPI {
		rec.UPI = &upiJSON{
			ID:      r.UPI.UPIID,
			Ref:     r.UPI.UPIRef,
			App:     r.UPI.PaymentApp,
			Bank:    r.UPI.Bank,
			Account: r.UPI.AccountNumber,
		}
	}
	if r.Industry != nil {
		rec.Sector = string(r.Industry.Sector)
		rec.SectorMatch = string(r.Industry.MatchType)
	}
	return rec
}

func scanRecord(id string, msg model.Message, r model.ProcessResult) scanJSON {
	return scanJSON{
		ID:          id,
		Sender:      msg.Sender,
		Category:    string(r.Classification.Category),
		Subcategory: string(r.Classification.Subcategory),
		Activity:    r.Classification.Activity,
		Confidence:  r.Classification.Confidence,
		Scope:       int(r.Scope.Scope),
		ScopeLabel:  r.Scope.Scope.String(),
		ScopeReason: r.Scope.Reason,
		Quantity:    quantityRecord(r.Quantity),
		Amount:      amountRecord(r.Amount),
		IsImportant: r.IsImportant,
		IsSpam:      r.IsSpam,
		ReasonCodes: r.ReasonCodes,
	}
}
