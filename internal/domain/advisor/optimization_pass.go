package advisor

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
)

// Textos enlatados de las correcciones de optimización.
const (
	cannedPaymentTerms = "Payment due within 30 days. Late payments subject to 1.5% monthly service charge."
	longTermsThreshold = 60 // días
	shortDescription   = 10 // caracteres
)

var bundlingShare = decimal.NewFromFloat(0.05)

// optimizations pasada de optimización: condiciones que no invalidan la
// factura pero afectan cobro, claridad o presentación.
func optimizations(inv entity.Invoice, now time.Time) []Suggestion {
	var out []Suggestion

	// Arranque de una factura vacía con un ítem de servicio habitual.
	if len(inv.Items) == 0 {
		s := newSuggestion(TypeOptimization, SeverityLow,
			"Add Common Services",
			"Start with popular service items")
		s.Fix = AppendItemFix("Consultation", decimal.NewFromInt(1), decimal.NewFromInt(150))
		out = append(out, s)
	}

	if inv.PaymentTerms == "" {
		s := newSuggestion(TypeOptimization, SeverityMedium,
			"Add Payment Terms",
			"Clear payment terms improve cash flow and reduce disputes")
		s.Fix = SetPaymentTermsFix(cannedPaymentTerms)
		out = append(out, s)
	}

	// Vencimiento a más de 60 días de hoy.
	daysOut := int(math.Ceil(inv.DueDate.Sub(now).Hours() / 24))
	if daysOut > longTermsThreshold {
		s := newSuggestion(TypeOptimization, SeverityLow,
			"Long Payment Terms",
			"Consider shorter payment terms (30 days) for better cash flow")
		s.Fix = ResetDueDateFix(now)
		out = append(out, s)
	}

	// País EE. UU. con moneda distinta de USD: informativo, sin corrección.
	if inv.Country == "US" && inv.Currency.Code != "USD" {
		out = append(out, newSuggestion(TypeOptimization, SeverityLow,
			"Currency Mismatch",
			"Consider using USD for US-based clients to avoid exchange rate issues"))
	}

	for i, it := range inv.Items {
		if len(it.Description) < shortDescription {
			out = append(out, newSuggestion(TypeOptimization, SeverityLow,
				fmt.Sprintf("Improve Item %d Description", i+1),
				"More detailed descriptions help clients understand charges"))
		}
	}

	// Muchas líneas pequeñas: sugerir agrupación. Informativo.
	if len(inv.Items) > 5 && hasSmallItem(inv) {
		out = append(out, newSuggestion(TypeOptimization, SeverityLow,
			"Consider Item Bundling",
			"Bundle small items to simplify the invoice and improve readability"))
	}
	return out
}

// hasSmallItem indica si alguna línea pesa menos del 5% del total.
func hasSmallItem(inv entity.Invoice) bool {
	threshold := inv.Total.Mul(bundlingShare)
	for _, it := range inv.Items {
		if it.Amount.LessThan(threshold) {
			return true
		}
	}
	return false
}
