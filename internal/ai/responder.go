package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/taxmateNG/tax-assistant-service/internal/models"
)

// Responder produces the user-facing reply for a chat question. The
// deterministic calculation is always authoritative; the provider only
// phrases it.
type Responder struct {
	provider Provider
}

// NewResponder wraps a provider; a nil provider always answers
// deterministically.
func NewResponder(provider Provider) *Responder {
	return &Responder{provider: provider}
}

// Answer returns the reply text and its source ("llm" or "deterministic").
func (r *Responder) Answer(ctx context.Context, question string, calc *models.VATBreakdown) (string, string) {
	fallback := DeterministicAnswer(calc)
	if r.provider == nil {
		return fallback, "deterministic"
	}

	prompt := buildPrompt(question, calc, fallback)
	reply, err := r.provider.Complete(ctx, prompt)
	if err != nil || strings.TrimSpace(reply) == "" {
		return fallback, "deterministic"
	}
	return strings.TrimSpace(reply), "llm"
}

// buildPrompt grounds the model with the computed figures so it cannot
// invent amounts.
func buildPrompt(question string, calc *models.VATBreakdown, summary string) string {
	var sb strings.Builder
	sb.WriteString("A user asked a Nigerian VAT question. The figures below were computed deterministically and are correct; rephrase them as a short helpful answer without changing any number.\n\n")
	sb.WriteString("Question: ")
	sb.WriteString(question)
	sb.WriteString("\n\nComputed facts:\n")
	sb.WriteString(summary)
	return sb.String()
}

// DeterministicAnswer renders the calculation as plain text; it is the
// reply of last resort when no LLM is reachable.
func DeterministicAnswer(calc *models.VATBreakdown) string {
	if calc == nil || !calc.BaseAmount.IsPositive() {
		return "I couldn't determine an amount from your message. Please include a value, for example \"Calculate VAT on ₦10,000\"."
	}

	var sb strings.Builder
	if calc.Quantity != nil && calc.UnitPrice != nil {
		unit := calc.Unit
		if unit == "" {
			unit = "unit"
		}
		fmt.Fprintf(&sb, "%s %s at ₦%s each gives a base amount of ₦%s. ",
			calc.Quantity.String(), unit, calc.UnitPrice.StringFixed(2), calc.BaseAmount.StringFixed(2))
	} else {
		fmt.Fprintf(&sb, "Base amount: ₦%s. ", calc.BaseAmount.StringFixed(2))
	}

	if calc.Exempt {
		fmt.Fprintf(&sb, "This item is VAT-exempt (%s), so VAT is ₦0.00 and the total stays ₦%s.",
			calc.ExemptCategory, calc.Total.StringFixed(2))
	} else {
		fmt.Fprintf(&sb, "VAT at 7.5%% is ₦%s, bringing the total to ₦%s.",
			calc.VATAmount.StringFixed(2), calc.Total.StringFixed(2))
	}
	return sb.String()
}
