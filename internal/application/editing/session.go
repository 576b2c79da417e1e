// Package editing implementa la sesión de edición de la factura: un único
// documento en memoria, sin persistencia, propiedad de un único usuario.
//
// Toda escritura reemplaza el snapshot completo (copy-on-write) y recalcula
// los totales de forma síncrona antes de liberar el lock, de modo que una
// lectura de sugerencias nunca observa un subtotal desfasado respecto de la
// lista de ítems.
package editing

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoice-studio/internal/domain"
	"github.com/tu-usuario/invoice-studio/internal/domain/advisor"
	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
	domInvoice "github.com/tu-usuario/invoice-studio/internal/domain/invoice"
	"github.com/tu-usuario/invoice-studio/pkg/catalog"
)

// InvoicePatch actualización parcial de la factura: solo los campos no nil
// se aplican. Los campos derivados no son parchables; los recalcula la
// sesión.
type InvoicePatch struct {
	InvoiceNumber *string
	Date          *time.Time
	DueDate       *time.Time
	Type          *string
	CurrencyCode  *string
	Country       *string
	From          *entity.Party
	To            *entity.Party
	Items         *[]entity.InvoiceItem
	TaxRate       *decimal.Decimal
	TaxType       *string
	Notes         *string
	PaymentTerms  *string
}

// ItemPatch actualización parcial de una línea. Cualquier edición recalcula
// el monto derivado.
type ItemPatch struct {
	Description *string
	Quantity    *decimal.Decimal
	Rate        *decimal.Decimal
	TaxCategory *string
	Category    *string
}

// Session sesión de edición con el snapshot único de la factura y las
// claves de sugerencias descartadas por el usuario.
type Session struct {
	mu        sync.RWMutex
	inv       entity.Invoice
	dismissed map[string]bool
	now       func() time.Time
}

// NewSession crea la sesión con la factura por defecto. now permite fijar
// el reloj en tests; con nil se usa time.Now.
func NewSession(now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		inv:       entity.NewInvoice(now()),
		dismissed: make(map[string]bool),
		now:       now,
	}
}

// Current devuelve el snapshot vigente de la factura.
func (s *Session) Current() entity.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inv
}

// Update aplica una actualización parcial y recalcula totales.
// Un código de moneda desconocido devuelve domain.ErrNotFound y deja la
// factura sin cambios.
func (s *Session) Update(patch InvoicePatch) (entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv := s.inv.Clone()
	if patch.CurrencyCode != nil {
		cur, ok := catalog.CurrencyByCode(*patch.CurrencyCode)
		if !ok {
			return entity.Invoice{}, domain.ErrNotFound
		}
		inv.Currency = cur
	}
	if patch.InvoiceNumber != nil {
		inv.InvoiceNumber = *patch.InvoiceNumber
	}
	if patch.Date != nil {
		inv.Date = *patch.Date
	}
	if patch.DueDate != nil {
		inv.DueDate = *patch.DueDate
	}
	if patch.Type != nil {
		if *patch.Type != entity.InvoiceTypeService && *patch.Type != entity.InvoiceTypeSales {
			return entity.Invoice{}, domain.ErrInvalidInput
		}
		inv.Type = *patch.Type
	}
	if patch.Country != nil {
		inv.Country = *patch.Country
	}
	if patch.From != nil {
		inv.From = *patch.From
	}
	if patch.To != nil {
		inv.To = *patch.To
	}
	if patch.Items != nil {
		inv.Items = append([]entity.InvoiceItem(nil), (*patch.Items)...)
	}
	if patch.TaxRate != nil {
		inv.TaxRate = *patch.TaxRate
	}
	if patch.TaxType != nil {
		inv.TaxType = *patch.TaxType
	}
	if patch.Notes != nil {
		inv.Notes = *patch.Notes
	}
	if patch.PaymentTerms != nil {
		inv.PaymentTerms = *patch.PaymentTerms
	}

	s.inv = domInvoice.Apply(inv)
	return s.inv, nil
}

// AddItem agrega una línea con el monto derivado y recalcula totales.
func (s *Session) AddItem(description string, quantity, rate decimal.Decimal, taxCategory, category string) (entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := entity.NewItem(description, quantity, rate)
	item.TaxCategory = taxCategory
	item.Category = category

	inv := s.inv.Clone()
	inv.Items = append(inv.Items, item)
	s.inv = domInvoice.Apply(inv)
	return s.inv, nil
}

// UpdateItem edita una línea por id, recalculando su monto, y luego los
// totales. Devuelve domain.ErrNotFound si la línea no existe.
func (s *Session) UpdateItem(itemID string, patch ItemPatch) (entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv := s.inv.Clone()
	idx := -1
	for i, it := range inv.Items {
		if it.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entity.Invoice{}, domain.ErrNotFound
	}

	it := inv.Items[idx]
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.Quantity != nil {
		it.Quantity = *patch.Quantity
	}
	if patch.Rate != nil {
		it.Rate = *patch.Rate
	}
	if patch.TaxCategory != nil {
		it.TaxCategory = *patch.TaxCategory
	}
	if patch.Category != nil {
		it.Category = *patch.Category
	}
	it.Amount = domInvoice.ItemAmount(it.Quantity, it.Rate)
	inv.Items[idx] = it

	s.inv = domInvoice.Apply(inv)
	return s.inv, nil
}

// RemoveItem elimina una línea por id y recalcula totales.
func (s *Session) RemoveItem(itemID string) (entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv := s.inv.Clone()
	kept := inv.Items[:0]
	found := false
	for _, it := range inv.Items {
		if it.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return entity.Invoice{}, domain.ErrNotFound
	}
	inv.Items = kept

	s.inv = domInvoice.Apply(inv)
	return s.inv, nil
}

// SetTheme reemplaza el tema conservando el logo ya subido si el nuevo tema
// no trae uno.
func (s *Session) SetTheme(theme entity.Theme) entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv := s.inv.Clone()
	if theme.Logo == "" {
		theme.Logo = inv.Theme.Logo
		if theme.LogoWidthMM == 0 {
			theme.LogoWidthMM = inv.Theme.LogoWidthMM
		}
	}
	inv.Theme = theme
	s.inv = inv
	return s.inv
}

// SetLogo guarda el logo como data URL en el tema. widthMM opcional (0 =
// tamaño por defecto del exportador).
func (s *Session) SetLogo(dataURL string, widthMM int) entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv := s.inv.Clone()
	inv.Theme.Logo = dataURL
	inv.Theme.LogoWidthMM = widthMM
	s.inv = inv
	return s.inv
}

// Reset repone la factura por defecto y limpia los descartes.
func (s *Session) Reset() entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inv = entity.NewInvoice(s.now())
	s.dismissed = make(map[string]bool)
	return s.inv
}

// Duplicate reemplaza el snapshot por una copia con id, número y fecha
// nuevos. Los descartes se limpian: la nueva factura se evalúa de cero.
func (s *Session) Duplicate() entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inv = s.inv.Duplicate(s.now())
	s.dismissed = make(map[string]bool)
	return s.inv
}

// Suggestions evalúa el snapshot vigente y filtra las sugerencias que el
// usuario descartó. El descarte es por clave de contenido, no por posición.
func (s *Session) Suggestions() []advisor.Suggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := advisor.Evaluate(s.inv, s.now())
	out := make([]advisor.Suggestion, 0, len(all))
	for _, sg := range all {
		if !s.dismissed[sg.ID] {
			out = append(out, sg)
		}
	}
	return out
}

// ApplyFix re-resuelve la sugerencia contra el snapshot vigente y aplica su
// comando de corrección. domain.ErrNotFound si la sugerencia ya no aplica;
// domain.ErrInvalidInput si no trae corrección.
func (s *Session) ApplyFix(suggestionID string) (entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sg := range advisor.Evaluate(s.inv, s.now()) {
		if sg.ID != suggestionID {
			continue
		}
		if sg.Fix == nil {
			return entity.Invoice{}, domain.ErrInvalidInput
		}
		s.inv = domInvoice.Apply(sg.Fix.Apply(s.inv))
		return s.inv, nil
	}
	return entity.Invoice{}, domain.ErrNotFound
}

// Dismiss descarta una sugerencia por clave hasta el próximo reset o
// duplicado. Descartar una clave desconocida no es un error: la sugerencia
// pudo haber dejado de aplicar entre render y clic.
func (s *Session) Dismiss(suggestionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dismissed[suggestionID] = true
}
