package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoice-studio/internal/application/editing"
	"github.com/tu-usuario/invoice-studio/internal/domain"
	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
	"github.com/tu-usuario/invoice-studio/pkg/catalog"
)

// PartyDTO emisor o receptor en la API.
type PartyDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	TaxID   string `json:"tax_id,omitempty"`
}

// ItemResponse línea de la factura en respuestas.
type ItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	TaxCategory string          `json:"tax_category,omitempty"`
	Category    string          `json:"category,omitempty"`
}

// ThemeDTO tema del documento.
type ThemeDTO struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
	Logo           string `json:"logo,omitempty"`
	LogoWidthMM    int    `json:"logo_width_mm,omitempty"`
}

// InvoiceResponse factura completa para la API, con fechas en formato
// YYYY-MM-DD.
type InvoiceResponse struct {
	ID            string           `json:"id"`
	InvoiceNumber string           `json:"invoice_number"`
	Date          string           `json:"date"`
	DueDate       string           `json:"due_date"`
	Type          string           `json:"type"`
	Currency      catalog.Currency `json:"currency"`
	Country       string           `json:"country"`
	From          PartyDTO         `json:"from"`
	To            PartyDTO         `json:"to"`
	Items         []ItemResponse   `json:"items"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	Tax           decimal.Decimal  `json:"tax"`
	TaxRate       decimal.Decimal  `json:"tax_rate"`
	TaxType       string           `json:"tax_type"`
	Total         decimal.Decimal  `json:"total"`
	Notes         string           `json:"notes"`
	PaymentTerms  string           `json:"payment_terms"`
	Theme         ThemeDTO         `json:"theme"`
}

// FromInvoice proyecta la entidad al DTO de respuesta.
func FromInvoice(inv entity.Invoice) InvoiceResponse {
	items := make([]ItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, ItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      it.Amount,
			TaxCategory: it.TaxCategory,
			Category:    it.Category,
		})
	}
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.Date.Format(DateLayout),
		DueDate:       inv.DueDate.Format(DateLayout),
		Type:          inv.Type,
		Currency:      inv.Currency,
		Country:       inv.Country,
		From:          PartyDTO(inv.From),
		To:            PartyDTO(inv.To),
		Items:         items,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		TaxRate:       inv.TaxRate,
		TaxType:       inv.TaxType,
		Total:         inv.Total,
		Notes:         inv.Notes,
		PaymentTerms:  inv.PaymentTerms,
		Theme:         ThemeDTO(inv.Theme),
	}
}

// UpdateInvoiceRequest body de PATCH /api/invoice. Solo los campos
// presentes se aplican.
type UpdateInvoiceRequest struct {
	InvoiceNumber *string          `json:"invoice_number,omitempty"`
	Date          *string          `json:"date,omitempty"`
	DueDate       *string          `json:"due_date,omitempty"`
	Type          *string          `json:"type,omitempty"`
	CurrencyCode  *string          `json:"currency_code,omitempty"`
	Country       *string          `json:"country,omitempty"`
	From          *PartyDTO        `json:"from,omitempty"`
	To            *PartyDTO        `json:"to,omitempty"`
	TaxRate       *decimal.Decimal `json:"tax_rate,omitempty"`
	TaxType       *string          `json:"tax_type,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	PaymentTerms  *string          `json:"payment_terms,omitempty"`
}

// ToPatch convierte el body en el parche de la sesión, validando fechas.
func (r UpdateInvoiceRequest) ToPatch() (editing.InvoicePatch, error) {
	patch := editing.InvoicePatch{
		InvoiceNumber: r.InvoiceNumber,
		Type:          r.Type,
		CurrencyCode:  r.CurrencyCode,
		Country:       r.Country,
		TaxRate:       r.TaxRate,
		TaxType:       r.TaxType,
		Notes:         r.Notes,
		PaymentTerms:  r.PaymentTerms,
	}
	if r.Date != nil {
		d, err := time.Parse(DateLayout, *r.Date)
		if err != nil {
			return editing.InvoicePatch{}, fmt.Errorf("%w: date: %v", domain.ErrInvalidInput, err)
		}
		patch.Date = &d
	}
	if r.DueDate != nil {
		d, err := time.Parse(DateLayout, *r.DueDate)
		if err != nil {
			return editing.InvoicePatch{}, fmt.Errorf("%w: due_date: %v", domain.ErrInvalidInput, err)
		}
		patch.DueDate = &d
	}
	if r.From != nil {
		p := entity.Party(*r.From)
		patch.From = &p
	}
	if r.To != nil {
		p := entity.Party(*r.To)
		patch.To = &p
	}
	return patch, nil
}

// AddItemRequest body de POST /api/invoice/items.
type AddItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	TaxCategory string          `json:"tax_category,omitempty"`
	Category    string          `json:"category,omitempty"`
}

// UpdateItemRequest body de PUT /api/invoice/items/:id.
type UpdateItemRequest struct {
	Description *string          `json:"description,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	TaxCategory *string          `json:"tax_category,omitempty"`
	Category    *string          `json:"category,omitempty"`
}

// SetLogoRequest body alternativo de POST /api/invoice/theme/logo cuando el
// logo ya viene como data URL en lugar de archivo multipart.
type SetLogoRequest struct {
	DataURL     string `json:"data_url"`
	LogoWidthMM int    `json:"logo_width_mm,omitempty"`
}

// SuggestionResponse hallazgo del motor de sugerencias en la API. HasFix
// indica si /apply tiene efecto para esta clave.
type SuggestionResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AutoFix     bool   `json:"auto_fix,omitempty"`
	HasFix      bool   `json:"has_fix"`
}

// ExportRequest body de POST /api/export. To solo aplica a share-email.
type ExportRequest struct {
	Format string `json:"format"`
	To     string `json:"to,omitempty"`
}

// ShareResponse respuesta de las exportaciones de compartir (sin archivo
// binario directo).
type ShareResponse struct {
	ShareURL string `json:"share_url,omitempty"`
	Message  string `json:"message,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// SmartItemsResponse sugerencias de nombres de ítem para autocompletar.
type SmartItemsResponse struct {
	Suggestions []string `json:"suggestions"`
}
