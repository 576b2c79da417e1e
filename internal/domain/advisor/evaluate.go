package advisor

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
)

// epsilon tolerancia fija para toda comparación de montos, en la unidad de
// la moneda de la factura.
var epsilon = decimal.NewFromFloat(0.01)

// euVATCountries países de la UE para los que se exige número de IVA del
// emisor cuando existe regla de impuesto.
var euVATCountries = map[string]bool{
	"DE": true, "FR": true, "NL": true, "BE": true, "AT": true, "IT": true,
	"ES": true, "PT": true, "IE": true, "FI": true, "GR": true,
}

// Evaluate produce la lista de sugerencias para un snapshot de la factura.
// Función pura del snapshot y del instante de evaluación: sin estado entre
// llamadas, sin efectos. Las pasadas corren en orden fijo (errores,
// impuestos, optimización, cumplimiento, formato) de modo que el consumidor
// pueda presentar por severidad sin perder estabilidad de orden.
func Evaluate(inv entity.Invoice, now time.Time) []Suggestion {
	var out []Suggestion
	out = append(out, detectErrors(inv)...)
	out = append(out, taxIntelligence(inv)...)
	out = append(out, optimizations(inv, now)...)
	out = append(out, compliance(inv, now)...)
	out = append(out, formatting(inv)...)
	return out
}

// withinEpsilon indica si dos montos coinciden dentro de la tolerancia.
func withinEpsilon(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(epsilon)
}
