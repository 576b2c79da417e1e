// Package invoice contiene el cálculo de totales de la factura.
// Es el único componente autorizado a producir los campos derivados
// Subtotal, Tax y Total; la sesión de edición los escribe en la factura
// inmediatamente después de cada cambio de ítems o de tarifa.
package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Totals campos derivados de una factura.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals recalcula los totales a partir de las líneas y la tarifa de
// impuesto en porcentaje:
//
//	subtotal = Σ item.Amount
//	tax      = subtotal × rate / 100
//	total    = subtotal + tax
//
// No aplica redondeo: el redondeo a los decimales de la moneda es un asunto
// de presentación.
func ComputeTotals(items []entity.InvoiceItem, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount)
	}
	tax := subtotal.Mul(taxRate).Div(hundred)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// ItemAmount monto derivado de una línea: cantidad × tarifa.
func ItemAmount(quantity, rate decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate)
}

// Apply escribe los totales recalculados sobre una copia de la factura.
func Apply(inv entity.Invoice) entity.Invoice {
	t := ComputeTotals(inv.Items, inv.TaxRate)
	inv.Subtotal = t.Subtotal
	inv.Tax = t.Tax
	inv.Total = t.Total
	return inv
}
