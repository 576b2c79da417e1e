package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoice-studio/pkg/catalog"
)

// Tipos de factura.
const (
	InvoiceTypeService = "service"
	InvoiceTypeSales   = "sales"
)

// Clasificación opcional de un ítem.
const (
	ItemCategoryProduct = "product"
	ItemCategoryService = "service"
)

// DefaultDueDays plazo de vencimiento por defecto de una factura nueva.
const DefaultDueDays = 30

// Party emisor o receptor de la factura. Sin validación dura; las ausencias
// se reportan como sugerencias, no como errores.
type Party struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	TaxID   string `json:"tax_id,omitempty"`
}

// InvoiceItem línea facturable. Amount es derivado (Quantity × Rate) y se
// recalcula en cada edición de la línea.
type InvoiceItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	TaxCategory string          `json:"tax_category,omitempty"`
	Category    string          `json:"category,omitempty"` // product | service
}

// Theme apariencia del documento: colores hex, tipografía y logo opcional
// (data URL embebido) con ancho de presentación opcional en mm.
type Theme struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
	Logo           string `json:"logo,omitempty"`
	LogoWidthMM    int    `json:"logo_width_mm,omitempty"`
}

// DefaultTheme tema inicial de una sesión.
func DefaultTheme() Theme {
	return Theme{
		PrimaryColor:   "#3b82f6",
		SecondaryColor: "#64748b",
		FontFamily:     "Inter, sans-serif",
	}
}

// Invoice documento de facturación en memoria, propiedad exclusiva de la
// sesión de edición. Los campos derivados (Subtotal, Tax, Total) solo los
// escribe el recálculo de totales; el resto se reemplaza por copia completa,
// nunca se muta en sitio.
type Invoice struct {
	ID            string           `json:"id"`
	InvoiceNumber string           `json:"invoice_number"`
	Date          time.Time        `json:"date"`
	DueDate       time.Time        `json:"due_date"`
	Type          string           `json:"type"` // service | sales
	Currency      catalog.Currency `json:"currency"`
	Country       string           `json:"country"`
	From          Party            `json:"from"`
	To            Party            `json:"to"`
	Items         []InvoiceItem    `json:"items"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	Tax           decimal.Decimal  `json:"tax"`
	TaxRate       decimal.Decimal  `json:"tax_rate"`
	TaxType       string           `json:"tax_type"`
	Total         decimal.Decimal  `json:"total"`
	Notes         string           `json:"notes"`
	PaymentTerms  string           `json:"payment_terms"`
	Theme         Theme            `json:"theme"`
}

// NewInvoice crea la factura por defecto de una sesión: fecha de hoy,
// vencimiento a 30 días, sin partes ni ítems, moneda USD y tema por defecto.
func NewInvoice(now time.Time) Invoice {
	return Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: NewInvoiceNumber(now),
		Date:          now,
		DueDate:       now.AddDate(0, 0, DefaultDueDays),
		Type:          InvoiceTypeService,
		Currency:      catalog.DefaultCurrency(),
		TaxType:       "Tax",
		Subtotal:      decimal.Zero,
		Tax:           decimal.Zero,
		TaxRate:       decimal.Zero,
		Total:         decimal.Zero,
		Theme:         DefaultTheme(),
	}
}

// NewInvoiceNumber genera un número legible del estilo INV-XXXXXX a partir
// del instante de creación. No se garantiza numérico ni secuencial: el
// usuario puede sobrescribirlo.
func NewInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%06d", now.UnixMilli()%1_000_000)
}

// NewItem construye una línea con id nuevo y Amount derivado.
func NewItem(description string, quantity, rate decimal.Decimal) InvoiceItem {
	return InvoiceItem{
		ID:          uuid.NewString(),
		Description: description,
		Quantity:    quantity,
		Rate:        rate,
		Amount:      quantity.Mul(rate),
	}
}

// Duplicate devuelve una copia de la factura con id y número nuevos y la
// fecha de emisión puesta en now. El contenido (partes, ítems, tema) se
// conserva.
func (inv Invoice) Duplicate(now time.Time) Invoice {
	dup := inv.Clone()
	dup.ID = uuid.NewString()
	dup.InvoiceNumber = NewInvoiceNumber(now)
	dup.Date = now
	return dup
}

// Clone devuelve una copia de la factura con el slice de ítems duplicado,
// para que ningún lector observe una factura a medio actualizar.
func (inv Invoice) Clone() Invoice {
	out := inv
	out.Items = make([]InvoiceItem, len(inv.Items))
	copy(out.Items, inv.Items)
	return out
}
