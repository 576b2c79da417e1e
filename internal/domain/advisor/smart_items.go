package advisor

import "strings"

// salesItemSuggestions palabra clave → nombres de ítem sugeridos para
// facturas de venta.
var salesItemSuggestions = map[string][]string{
	"software":     {"Software License", "SaaS Subscription", "Mobile App", "Desktop Application", "Plugin/Extension"},
	"hardware":     {"Computer Equipment", "Network Hardware", "Mobile Device", "Accessories", "Replacement Parts"},
	"digital":      {"Digital Download", "E-book", "Online Course", "Digital Template", "Stock Photos"},
	"physical":     {"Physical Product", "Merchandise", "Printed Materials", "Equipment", "Supplies"},
	"subscription": {"Monthly Subscription", "Annual Subscription", "Premium Plan", "Enterprise License", "Support Package"},
}

// salesItemKeywords orden de evaluación de las palabras clave, para que una
// descripción que coincida con varias dé siempre el mismo resultado.
var salesItemKeywords = []string{"software", "hardware", "digital", "physical", "subscription"}

// salesItemFallback sugerencias genéricas cuando ninguna palabra clave
// coincide en una factura de venta.
var salesItemFallback = []string{"Product", "License", "Subscription", "Package", "Bundle"}

// SmartItemSuggestions propone nombres de ítem a partir de la descripción
// parcial que escribe el usuario. Para facturas de venta se usan las
// palabras clave del catálogo de productos; para servicios, el catálogo de
// servicios cubre la autocompleción y aquí no hay nada que sugerir.
func SmartItemSuggestions(description, invoiceType string) []string {
	if invoiceType != "sales" {
		return nil
	}
	lower := strings.ToLower(description)
	for _, key := range salesItemKeywords {
		if strings.Contains(lower, key) {
			return salesItemSuggestions[key]
		}
	}
	return salesItemFallback
}
