// Package engine sequences the classification pipeline. It exposes the two
// public entry points consumed by collaborators: ClassifyExpense for the
// personal-expense/ledger path and ProcessMessage for the MSME carbon path.
// Both are deterministic and side-effect-free per call; all state is the
// immutable table set loaded at construction.
package engine

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/greenkhata/greenkhata/internal/category"
	"github.com/greenkhata/greenkhata/internal/extract"
	"github.com/greenkhata/greenkhata/internal/hashvec"
	"github.com/greenkhata/greenkhata/internal/industry"
	"github.com/greenkhata/greenkhata/internal/model"
	"github.com/greenkhata/greenkhata/internal/scope"
	"github.com/greenkhata/greenkhata/internal/spam"
)

// Lightweight importance/spam screens for the carbon path. These are
// deliberately coarser than the full rule engine in internal/spam: the
// carbon orchestrator only needs an is-this-worth-keeping flag, not a
// scored verdict.
var (
	reDebitCredit = regexp.MustCompile(`(?i)\b(debited|credited|withdrawn|deposited|transferred|paid\s*to|received\s*from|sent\s*to)\b`)
	reAccountInfo = regexp.MustCompile(`(?i)\b(a/c\s*[x*]+\d+|acct?\s*[x*]+\d+|available\s*bal|avl\s*bal|current\s*bal|closing\s*bal|statement)\b`)
	reTxnRef      = regexp.MustCompile(`(?i)\b(upi\s*ref|imps\s*ref|neft\s*ref|txn\s*id|ref\s*no|transaction\s*id)\b`)
	reEMI         = regexp.MustCompile(`(?i)\b(emi\s*of\s*rs|emi\s*paid|emi\s*due|loan\s*emi|emi\s*amount|auto\s*debit|mandate)\b`)
	reBillPayment = regexp.MustCompile(`(?i)\b(bill\s*paid|payment\s*successful|payment\s*received|payment\s*confirmed|recharge\s*successful)\b`)
	reExpense     = regexp.MustCompile(`(?i)\b(fuel|diesel|petrol|electricity|kwh|invoice|dispatch|vendor|supplier|material|purchase\s*order)\b`)

	reOTP   = regexp.MustCompile(`(?i)\b(otp|one[-\s]?time\s*password|verification\s*code|auth\s*code|code\s*is\s*\d{4,8}|your\s*otp|otp\s*for|valid\s*for\s*\d+\s*min|do\s*not\s*share|pin\s*is)\b`)
	rePromo = regexp.MustCompile(`(?i)\b(offer|discount|sale|deal|cashback|coupon|promo|off\s*on|flat\s*\d+%|upto\s*\d+%|limited\s*time|exclusive|special\s*price|shop\s*now|buy\s*now|order\s*now)\b`)
)

// modelScorer adapts the hashed-feature linear model to the spam package's
// Scorer interface.
type modelScorer struct {
	m *hashvec.Model
}

func (s modelScorer) Score(text string) spam.Prediction {
	p := s.m.Score(text)
	return spam.Prediction{Classes: p.Classes, Probabilities: p.Probabilities}
}

// Engine holds the assembled pipeline. Construct once, share freely: every
// method is safe for concurrent use.
type Engine struct {
	detector *spam.Detector
	logger   *slog.Logger
}

// New builds an engine with the embedded statistical model attached as the
// detector's secondary scorer. A corrupt model artifact is fatal.
func New(logger *slog.Logger) (*Engine, error) {
	m, err := hashvec.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("loading spam model: %w", err)
	}
	return &Engine{
		detector: spam.NewDetector(modelScorer{m: m}),
		logger:   logger,
	}, nil
}

// NewRulesOnly builds an engine without the statistical scorer. Used by
// tests and by callers that want the rule engine's behavior in isolation.
func NewRulesOnly(logger *slog.Logger) *Engine {
	return &Engine{detector: spam.NewDetector(nil), logger: logger}
}

// DetectSpam runs the full spam/transaction rule engine, with the model's
// probability attached when a scorer is present.
func (e *Engine) DetectSpam(msg model.Message) spam.Verdict {
	return e.detector.Predict(msg.Text, msg.Sender)
}

// ClassifyExpense runs the personal-expense cascade and attaches a
// best-effort industry classification for B2B callers.
func (e *Engine) ClassifyExpense(msg model.Message) model.ExpenseResult {
	result := category.Expense(msg.Text)

	ind := industry.Classify(msg.Text)
	result.Industry = &ind

	if e.logger != nil {
		e.logger.Debug("expense classified",
			"category", result.Category,
			"subcategory", result.Subcategory,
			"merchant", result.Merchant,
			"confidence", result.Confidence,
		)
	}
	return result
}

// ProcessMessage runs the carbon pipeline: lightweight importance/spam
// screens, quantity and amount extraction, the quantity-aware carbon
// cascade, and GHG scope attribution.
func (e *Engine) ProcessMessage(msg model.Message) model.ProcessResult {
	t := strings.TrimSpace(msg.Text)

	if t == "" {
		return model.ProcessResult{
			IsSpam:      true,
			ReasonCodes: []string{"empty_message"},
		}
	}

	isSpam := reOTP.MatchString(t) || rePromo.MatchString(t)
	isImportant := reDebitCredit.MatchString(t) || reAccountInfo.MatchString(t) ||
		reTxnRef.MatchString(t) || reEMI.MatchString(t) ||
		reBillPayment.MatchString(t) || reExpense.MatchString(t)

	qty := extract.Quantity(t)
	amount := extract.Amount(t)

	classification := category.Carbon(t, qty)
	scopeResult := scope.Attribute(t, classification, qty)

	reasons := append([]string(nil), classification.ReasonCodes...)
	if isImportant {
		reasons = append(reasons, "important_transaction")
	}
	if isSpam {
		reasons = append(reasons, "spam_detected")
	}
	if qty != nil {
		reasons = append(reasons, "quantity_"+string(qty.Unit))
	}
	if amount != nil {
		reasons = append(reasons, "amount_extracted")
	}

	if e.logger != nil {
		e.logger.Debug("message processed",
			"category", classification.Category,
			"scope", scopeResult.Scope.String(),
			"important", isImportant,
			"spam", isSpam,
		)
	}

	return model.ProcessResult{
		IsImportant:    isImportant,
		IsSpam:         isSpam,
		Classification: classification,
		Scope:          scopeResult,
		Quantity:       qty,
		Amount:         amount,
		ReasonCodes:    reasons,
	}
}
