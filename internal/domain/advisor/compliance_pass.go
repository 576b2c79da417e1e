package advisor

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
)

// abnThreshold total desde el cual Australia exige ABN en la factura.
var abnThreshold = decimal.NewFromFloat(82.50)

// compliance pasada de cumplimiento: requisitos formales por jurisdicción.
func compliance(inv entity.Invoice, now time.Time) []Suggestion {
	var out []Suggestion

	// Numeración: muchos regímenes exigen numeración secuencial, así que un
	// número sin dígitos se señala.
	if digitsOf(inv.InvoiceNumber) == "" {
		out = append(out, newSuggestion(TypeCompliance, SeverityMedium,
			"Non-Sequential Invoice Number",
			"Many jurisdictions require sequential invoice numbering for tax compliance"))
	}

	if inv.Country == "DE" && inv.From.TaxID == "" {
		out = append(out, newSuggestion(TypeCompliance, SeverityHigh,
			"German Tax ID Required",
			"German businesses must include tax ID (Steuernummer) on invoices"))
	}

	if inv.Country == "AU" && inv.Total.GreaterThanOrEqual(abnThreshold) && inv.From.TaxID == "" {
		out = append(out, newSuggestion(TypeCompliance, SeverityHigh,
			"ABN Required",
			"Australian businesses must include ABN on tax invoices over $82.50"))
	}

	if inv.Date.After(now) {
		out = append(out, newSuggestion(TypeCompliance, SeverityMedium,
			"Future Invoice Date",
			"Invoice date should not be in the future"))
	}
	return out
}

// digitsOf devuelve solo los dígitos de s.
func digitsOf(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
