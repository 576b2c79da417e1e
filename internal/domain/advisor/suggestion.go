// Package advisor implementa el motor de sugerencias: una función pura que
// inspecciona un snapshot inmutable de la factura y produce una lista
// ordenada y estable de hallazgos con correcciones de un clic.
//
// Cinco pasadas independientes en orden fijo (errores, impuestos,
// optimización, cumplimiento, formato) anexan al resultado; no hay estado
// oculto entre evaluaciones. Las correcciones se devuelven como comandos
// (valores Fix) que el caller aplica, no como closures con efectos.
package advisor

import (
	"fmt"
	"hash/fnv"

	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
)

// Tipos de sugerencia, en el orden de las pasadas.
const (
	TypeError        = "error"
	TypeTax          = "tax"
	TypeOptimization = "optimization"
	TypeCompliance   = "compliance"
	TypeFormatting   = "formatting"
)

// Severidades advisoras. Son prioridad de presentación, no una barrera de
// validación.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Fix comando de corrección adjunto a una sugerencia. Apply es una función
// pura sobre la factura recibida; aplicarla dos veces deja la factura en el
// mismo estado que aplicarla una vez.
type Fix struct {
	apply func(entity.Invoice) entity.Invoice
}

// NewFix construye un comando a partir de una transformación pura.
func NewFix(apply func(entity.Invoice) entity.Invoice) *Fix {
	return &Fix{apply: apply}
}

// Apply ejecuta la corrección sobre una copia de la factura y devuelve el
// resultado. El caller decide si adopta el resultado como nuevo snapshot.
func (f *Fix) Apply(inv entity.Invoice) entity.Invoice {
	return f.apply(inv.Clone())
}

// Suggestion hallazgo advisorio. Efímero: se regenera desde cero en cada
// cambio relevante de la factura y nunca se persiste.
//
// ID es un hash estable del contenido (tipo, título y descripción), de modo
// que el descarte por parte del usuario se pueda llevar por clave y no por
// posición en la lista.
type Suggestion struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AutoFix     bool   `json:"auto_fix,omitempty"`
	Fix         *Fix   `json:"-"`
}

// HasFix indica si la sugerencia trae un comando de corrección aplicable.
func (s Suggestion) HasFix() bool { return s.Fix != nil }

// newSuggestion construye el hallazgo y fija su ID de contenido.
func newSuggestion(typ, severity, title, description string) Suggestion {
	return Suggestion{
		ID:          contentID(typ, title, description),
		Type:        typ,
		Severity:    severity,
		Title:       title,
		Description: description,
	}
}

// contentID hash FNV-1a de tipo|título|descripción, en hexadecimal.
func contentID(typ, title, description string) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s", typ, title, description)
	return fmt.Sprintf("%016x", h.Sum64())
}
