package cli

import (
	"fmt"
	"strings"

	"github.com/greenkhata/greenkhata/internal/display"
	"github.com/greenkhata/greenkhata/internal/model"
	"github.com/greenkhata/greenkhata/internal/spam"
)

// RenderExpense formats an expense classification for the terminal.
func RenderExpense(r model.ExpenseResult) string {
	catInfo := display.Category(r.Category)
	subInfo := display.Subcategory(r.Subcategory)

	var b strings.Builder

	fmt.Fprintf(&b, "%s%s / %s\n",
		IconStyle.Render(catInfo.Icon),
		BoldStyle.Render(catInfo.Label),
		subInfo.Label,
	)
	fmt.Fprintf(&b, "%s\n", SubtleStyle.Render(fmt.Sprintf("confidence %.2f", r.Confidence)))

	if r.Merchant != "" {
		fmt.Fprintf(&b, "Merchant: %s\n", InfoStyle.Render(r.Merchant))
	}
	if r.Amount != nil {
		fmt.Fprintf(&b, "Amount:   %s\n", SuccessStyle.Render(fmt.Sprintf("%s %.2f", r.Amount.Currency, r.Amount.Value)))
	}
	if r.TransactionType != model.TransactionNone {
		fmt.Fprintf(&b, "Type:     %s\n", string(r.TransactionType))
	}
	if r.UPI.IsUPI {
		b.WriteString(renderUPI(r.UPI))
	}
	if r.Industry != nil && r.Industry.Sector != model.SectorOther {
		sec := display.Sector(r.Industry.Sector)
		fmt.Fprintf(&b, "Sector:   %s%s %s\n",
			IconStyle.Render(sec.Icon), sec.Label,
			SubtleStyle.Render(fmt.Sprintf("(%.2f, %s)", r.Industry.Confidence, r.Industry.MatchType)),
		)
	}
	if len(r.ReasonCodes) > 0 {
		fmt.Fprintf(&b, "Reasons:  %s\n", SubtleStyle.Render(strings.Join(r.ReasonCodes, ", ")))
	}

	return b.String()
}

func renderUPI(u model.UPIDetails) string {
	var parts []string
	if u.UPIID != "" {
		parts = append(parts, "id "+u.UPIID)
	}
	if u.UPIRef != "" {
		parts = append(parts, "ref "+u.UPIRef)
	}
	if u.PaymentApp != "" {
		parts = append(parts, "app "+u.PaymentApp)
	}
	if u.Bank != "" {
		parts = append(parts, "bank "+u.Bank)
	}
	if u.AccountNumber != "" {
		parts = append(parts, "a/c ..."+u.AccountNumber)
	}
	if len(parts) == 0 {
		return "UPI:      yes\n"
	}
	return fmt.Sprintf("UPI:      %s\n", strings.Join(parts, ", "))
}

// RenderProcess formats a carbon pipeline result for the terminal.
func RenderProcess(r model.ProcessResult) string {
	var b strings.Builder

	if r.IsSpam {
		fmt.Fprintf(&b, "%s\n", SpamStyle.Render(SpamIcon+" not relevant"))
	} else if r.IsImportant {
		fmt.Fprintf(&b, "%s\n", SuccessStyle.Render(SuccessIcon+" important transaction"))
	}

	catInfo := display.Category(r.Classification.Category)
	fmt.Fprintf(&b, "%s%s / %s %s\n",
		IconStyle.Render(catInfo.Icon),
		BoldStyle.Render(catInfo.Label),
		string(r.Classification.Subcategory),
		SubtleStyle.Render(fmt.Sprintf("(%.2f)", r.Classification.Confidence)),
	)

	scopeInfo := display.ForScope(r.Scope.Scope)
	fmt.Fprintf(&b, "Scope:    %s %s\n",
		BoldStyle.Render(scopeInfo.Label),
		SubtleStyle.Render("— "+r.Scope.Reason),
	)

	if r.Quantity != nil {
		fmt.Fprintf(&b, "Quantity: %g %s", r.Quantity.Value, string(r.Quantity.Unit))
		if r.Quantity.Commodity != "" {
			fmt.Fprintf(&b, " (%s)", r.Quantity.Commodity)
		}
		b.WriteString("\n")
	}
	if r.Amount != nil {
		fmt.Fprintf(&b, "Amount:   %s %.2f\n", r.Amount.Currency, r.Amount.Value)
	}
	if len(r.ReasonCodes) > 0 {
		fmt.Fprintf(&b, "Reasons:  %s\n", SubtleStyle.Render(strings.Join(r.ReasonCodes, ", ")))
	}

	return b.String()
}

// RenderVerdict formats a spam/transaction verdict for the terminal.
func RenderVerdict(v spam.Verdict) string {
	var b strings.Builder

	switch {
	case v.IsSpam:
		fmt.Fprintf(&b, "%s\n", SpamStyle.Render(SpamIcon+" spam"))
	case v.IsTransactional:
		fmt.Fprintf(&b, "%s\n", SuccessStyle.Render(MoneyIcon+" transactional"))
	default:
		fmt.Fprintf(&b, "%s\n", SubtleStyle.Render("unclassified"))
	}

	fmt.Fprintf(&b, "Rule score: %.2f  confidence: %.2f\n", v.RuleScore, v.Confidence)
	if v.MLScore != nil {
		fmt.Fprintf(&b, "Model:      %.3f spam probability\n", *v.MLScore)
	}
	if len(v.ReasonCodes) > 0 {
		fmt.Fprintf(&b, "Signals:    %s\n", SubtleStyle.Render(strings.Join(v.ReasonCodes, ", ")))
	}

	return b.String()
}
