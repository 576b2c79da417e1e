package advisor

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
	"github.com/tu-usuario/invoice-studio/internal/domain/invoice"
	"github.com/tu-usuario/invoice-studio/pkg/catalog"
)

// Comandos de corrección. Todos son transformaciones puras e idempotentes:
// el motor los adjunta a las sugerencias y el caller (la sesión de edición)
// decide aplicarlos, recalculando totales después.

// RecomputeTotalsFix vuelve a derivar subtotal, impuesto y total desde las
// líneas y la tarifa vigentes.
func RecomputeTotalsFix() *Fix {
	return NewFix(invoice.Apply)
}

// RecomputeItemAmountFix corrige el monto de la línea itemID a
// cantidad × tarifa. Si la línea ya no existe, no hace nada.
func RecomputeItemAmountFix(itemID string) *Fix {
	return NewFix(func(inv entity.Invoice) entity.Invoice {
		for i, it := range inv.Items {
			if it.ID == itemID {
				inv.Items[i].Amount = invoice.ItemAmount(it.Quantity, it.Rate)
			}
		}
		return inv
	})
}

// SyncTaxRuleFix fija la tarifa y el tipo de impuesto a los de la regla del
// país.
func SyncTaxRuleFix(rule catalog.TaxRule) *Fix {
	return NewFix(func(inv entity.Invoice) entity.Invoice {
		inv.TaxRate = rule.Rate
		inv.TaxType = rule.Type
		return inv
	})
}

// SetPaymentTermsFix escribe condiciones de pago enlatadas.
func SetPaymentTermsFix(terms string) *Fix {
	return NewFix(func(inv entity.Invoice) entity.Invoice {
		inv.PaymentTerms = terms
		return inv
	})
}

// SetNotesFix escribe la nota de cierre enlatada.
func SetNotesFix(notes string) *Fix {
	return NewFix(func(inv entity.Invoice) entity.Invoice {
		inv.Notes = notes
		return inv
	})
}

// ResetDueDateFix repone el vencimiento a now + 30 días.
func ResetDueDateFix(now time.Time) *Fix {
	return NewFix(func(inv entity.Invoice) entity.Invoice {
		inv.DueDate = now.AddDate(0, 0, entity.DefaultDueDays)
		return inv
	})
}

// AppendItemFix agrega una línea inicial. Solo actúa sobre una factura sin
// líneas, para que aplicar el comando dos veces no duplique el ítem.
func AppendItemFix(description string, quantity, rate decimal.Decimal) *Fix {
	return NewFix(func(inv entity.Invoice) entity.Invoice {
		if len(inv.Items) > 0 {
			return inv
		}
		inv.Items = append(inv.Items, entity.NewItem(description, quantity, rate))
		return inv
	})
}

// RoundRatesFix redondea cada tarifa al entero más cercano y recalcula el
// monto de la línea.
func RoundRatesFix() *Fix {
	return NewFix(func(inv entity.Invoice) entity.Invoice {
		for i, it := range inv.Items {
			rounded := it.Rate.Round(0)
			inv.Items[i].Rate = rounded
			inv.Items[i].Amount = invoice.ItemAmount(it.Quantity, rounded)
		}
		return inv
	})
}
