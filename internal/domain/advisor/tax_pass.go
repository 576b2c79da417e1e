package advisor

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
	"github.com/tu-usuario/invoice-studio/pkg/catalog"
)

// taxIntelligence pasada de impuestos: contrasta la tarifa y el tipo de
// impuesto de la factura con la regla de referencia del país. Sin regla
// para el país no hay nada que sugerir.
func taxIntelligence(inv entity.Invoice) []Suggestion {
	rule, ok := catalog.TaxRuleByCountry(inv.Country)
	if !ok {
		return nil
	}
	var out []Suggestion

	// Tarifa o tipo distintos de la regla: la corrección sincroniza ambos.
	if !inv.TaxRate.Equal(rule.Rate) || inv.TaxType != rule.Type {
		s := newSuggestion(TypeTax, SeverityMedium,
			fmt.Sprintf("Incorrect %s Rate", rule.Type),
			fmt.Sprintf("Standard %s rate for %s is %s%%", rule.Type, inv.Country, rule.Rate.String()))
		s.Fix = SyncTaxRuleFix(rule)
		out = append(out, s)
	}

	// Recordatorio de categoría de impuesto por línea.
	if len(rule.Categories) > 0 {
		for i, it := range inv.Items {
			if it.TaxCategory == "" {
				out = append(out, newSuggestion(TypeTax, SeverityLow,
					fmt.Sprintf("Missing Tax Category for Item %d", i+1),
					"Consider assigning a tax category: "+strings.Join(rule.Categories, ", ")))
			}
		}
	}

	// Nota advisoria para facturas de servicios en EE. UU.
	if inv.Type == entity.InvoiceTypeService && inv.Country == "US" {
		out = append(out, newSuggestion(TypeOptimization, SeverityLow,
			"Service Tax Optimization",
			"Consider if digital services qualify for different tax treatment in client's state"))
	}

	// Cumplimiento de IVA en la UE: el emisor debe declarar su número.
	if euVATCountries[inv.Country] && inv.From.TaxID == "" {
		out = append(out, newSuggestion(TypeCompliance, SeverityHigh,
			"VAT Number Required",
			"EU businesses must include VAT number on invoices"))
	}
	return out
}
