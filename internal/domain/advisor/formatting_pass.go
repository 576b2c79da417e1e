package advisor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
)

// cannedNotes nota de cortesía que deja la corrección de formato.
const cannedNotes = "Thank you for your business! Please contact us if you have any questions about this invoice."

// formatting pasada de formato: consistencia de decimales, tarifas redondas
// y nota de cierre.
func formatting(inv entity.Invoice) []Suggestion {
	var out []Suggestion

	// Decimales de las tarifas frente a los decimales de la moneda.
	// Informativo: el hallazgo conserva la marca de autocorrección del
	// editor pero no trae comando (no hay corrección real diseñada).
	if hasInconsistentDecimals(inv) {
		s := newSuggestion(TypeFormatting, SeverityLow,
			"Inconsistent Decimal Places",
			fmt.Sprintf("%s should use %d decimal places", inv.Currency.Name, inv.Currency.DecimalDigits))
		s.AutoFix = true
		out = append(out, s)
	}

	// Tarifas con centavos en facturas de varias líneas: la corrección
	// redondea todas las tarifas al entero y recalcula los montos.
	if inv.Currency.DecimalDigits > 0 && len(inv.Items) > 1 && hasOddCents(inv.Items) {
		s := newSuggestion(TypeFormatting, SeverityLow,
			"Consider Round Numbers",
			"Round rates to whole numbers for cleaner invoices")
		s.Fix = RoundRatesFix()
		out = append(out, s)
	}

	if inv.Notes == "" && len(inv.Items) > 0 {
		s := newSuggestion(TypeFormatting, SeverityLow,
			"Add Professional Notes",
			"Include thank you message and contact information")
		s.Fix = SetNotesFix(cannedNotes)
		out = append(out, s)
	}
	return out
}

// hasInconsistentDecimals indica si alguna tarifa tiene una cantidad de
// decimales distinta de la configurada para la moneda.
func hasInconsistentDecimals(inv entity.Invoice) bool {
	for _, it := range inv.Items {
		if decimalPlaces(it.Rate) != inv.Currency.DecimalDigits {
			return true
		}
	}
	return false
}

// hasOddCents indica si alguna tarifa no es un número entero.
func hasOddCents(items []entity.InvoiceItem) bool {
	for _, it := range items {
		if !it.Rate.Equal(it.Rate.Round(0)) {
			return true
		}
	}
	return false
}

// decimalPlaces cantidad de decimales de la representación mínima de d
// (los ceros finales no cuentan, igual que en la entrada del usuario).
func decimalPlaces(d decimal.Decimal) int32 {
	s := d.String()
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return int32(len(s) - i - 1)
	}
	return 0
}
