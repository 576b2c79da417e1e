package catalog

import "github.com/shopspring/decimal"

// TaxRule regla de impuesto de referencia para un país: tipo de impuesto
// (VAT, GST, Sales Tax, ...), tarifa estándar en porcentaje y categorías
// válidas para clasificar ítems. Inmutable, se consulta por país.
type TaxRule struct {
	Country    string          `json:"country"`
	Type       string          `json:"type"`
	Rate       decimal.Decimal `json:"rate"`
	Categories []string        `json:"categories"`
}

// TaxRules tabla de reglas de impuesto por país.
var TaxRules = []TaxRule{
	{Country: "US", Type: "Sales Tax", Rate: decimal.NewFromFloat(8.5), Categories: []string{"Standard", "Digital Services", "Consulting"}},
	{Country: "GB", Type: "VAT", Rate: decimal.NewFromInt(20), Categories: []string{"Standard Rate", "Reduced Rate", "Zero Rate"}},
	{Country: "DE", Type: "VAT", Rate: decimal.NewFromInt(19), Categories: []string{"Standard Rate", "Reduced Rate"}},
	{Country: "FR", Type: "VAT", Rate: decimal.NewFromInt(20), Categories: []string{"Standard Rate", "Reduced Rate", "Super Reduced Rate"}},
	{Country: "CA", Type: "GST/HST", Rate: decimal.NewFromInt(13), Categories: []string{"Taxable", "Zero-rated", "Exempt"}},
	{Country: "AU", Type: "GST", Rate: decimal.NewFromInt(10), Categories: []string{"Taxable", "GST-free", "Input taxed"}},
	{Country: "IN", Type: "GST", Rate: decimal.NewFromInt(18), Categories: []string{"5%", "12%", "18%", "28%"}},
	{Country: "JP", Type: "Consumption Tax", Rate: decimal.NewFromInt(10), Categories: []string{"Standard Rate", "Reduced Rate"}},
	{Country: "SG", Type: "GST", Rate: decimal.NewFromInt(8), Categories: []string{"Standard Rate", "Zero Rate"}},
	{Country: "NL", Type: "VAT", Rate: decimal.NewFromInt(21), Categories: []string{"High Rate", "Low Rate", "Zero Rate"}},
	{Country: "SE", Type: "VAT", Rate: decimal.NewFromInt(25), Categories: []string{"Standard Rate", "Reduced Rate", "Zero Rate"}},
	{Country: "NO", Type: "VAT", Rate: decimal.NewFromInt(25), Categories: []string{"Standard Rate", "Reduced Rate", "Zero Rate"}},
	{Country: "CH", Type: "VAT", Rate: decimal.NewFromFloat(7.7), Categories: []string{"Standard Rate", "Reduced Rate", "Special Rate"}},
	{Country: "BR", Type: "ICMS", Rate: decimal.NewFromInt(17), Categories: []string{"Standard", "Reduced", "Exempt"}},
	{Country: "MX", Type: "IVA", Rate: decimal.NewFromInt(16), Categories: []string{"General Rate", "Zero Rate", "Exempt"}},
	{Country: "LK", Type: "VAT", Rate: decimal.NewFromInt(15), Categories: []string{"Standard Rate", "Zero Rate", "Exempt"}},
}

// TaxRuleByCountry busca la regla de impuesto de un país.
// Devuelve (TaxRule{}, false) si el país no tiene regla; el caller debe
// dejar los campos dependientes sin cambios en ese caso.
func TaxRuleByCountry(countryCode string) (TaxRule, bool) {
	for _, r := range TaxRules {
		if r.Country == countryCode {
			return r, true
		}
	}
	return TaxRule{}, false
}
