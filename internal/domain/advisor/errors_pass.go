package advisor

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
	"github.com/tu-usuario/invoice-studio/internal/domain/invoice"
)

// detectErrors pasada de errores: incoherencias aritméticas y campos
// obligatorios ausentes. Los desajustes de cálculo llevan corrección
// automática; los campos ausentes solo se señalan.
func detectErrors(inv entity.Invoice) []Suggestion {
	var out []Suggestion

	// Deriva del subtotal frente a la suma de líneas.
	calculated := decimal.Zero
	for _, it := range inv.Items {
		calculated = calculated.Add(it.Amount)
	}
	if !withinEpsilon(calculated, inv.Subtotal) {
		s := newSuggestion(TypeError, SeverityHigh,
			"Subtotal Mismatch",
			fmt.Sprintf("Calculated subtotal (%s%s) doesn't match displayed subtotal",
				inv.Currency.Symbol, calculated.StringFixed(2)))
		s.AutoFix = true
		s.Fix = RecomputeTotalsFix()
		out = append(out, s)
	}

	if inv.From.Name == "" {
		out = append(out, newSuggestion(TypeError, SeverityHigh,
			"Missing Sender Information",
			"Sender name is required for a valid invoice"))
	}
	if inv.To.Name == "" {
		out = append(out, newSuggestion(TypeError, SeverityHigh,
			"Missing Client Information",
			"Client name is required for a valid invoice"))
	}

	for i, it := range inv.Items {
		if it.Quantity.LessThanOrEqual(decimal.Zero) {
			out = append(out, newSuggestion(TypeError, SeverityMedium,
				fmt.Sprintf("Invalid Quantity in Item %d", i+1),
				"Quantity must be greater than 0"))
		}
		if it.Rate.IsNegative() {
			out = append(out, newSuggestion(TypeError, SeverityMedium,
				fmt.Sprintf("Negative Rate in Item %d", i+1),
				"Rate cannot be negative"))
		}
		if !withinEpsilon(it.Amount, invoice.ItemAmount(it.Quantity, it.Rate)) {
			s := newSuggestion(TypeError, SeverityMedium,
				fmt.Sprintf("Amount Calculation Error in Item %d", i+1),
				"Item amount doesn't match quantity × rate")
			s.AutoFix = true
			s.Fix = RecomputeItemAmountFix(it.ID)
			out = append(out, s)
		}
	}
	return out
}
