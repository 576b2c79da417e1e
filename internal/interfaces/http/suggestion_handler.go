package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/invoice-studio/internal/application/dto"
	"github.com/tu-usuario/invoice-studio/internal/application/editing"
	"github.com/tu-usuario/invoice-studio/internal/domain"
	"github.com/tu-usuario/invoice-studio/internal/domain/advisor"
)

// SuggestionHandler maneja las peticiones HTTP del motor de sugerencias.
type SuggestionHandler struct {
	session *editing.Session
}

// NewSuggestionHandler construye el handler.
func NewSuggestionHandler(session *editing.Session) *SuggestionHandler {
	return &SuggestionHandler{session: session}
}

// List godoc
// @Summary      Sugerencias vigentes para la factura
// @Description  Evaluación fresca del snapshot, sin las sugerencias descartadas.
// @Tags         suggestions
// @Produce      json
// @Success      200  {array}  dto.SuggestionResponse
// @Router       /api/invoice/suggestions [get]
func (h *SuggestionHandler) List(c *fiber.Ctx) error {
	suggestions := h.session.Suggestions()
	out := make([]dto.SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, dto.SuggestionResponse{
			ID:          s.ID,
			Type:        s.Type,
			Severity:    s.Severity,
			Title:       s.Title,
			Description: s.Description,
			AutoFix:     s.AutoFix,
			HasFix:      s.HasFix(),
		})
	}
	return c.JSON(out)
}

// Apply godoc
// @Summary      Aplica la corrección de una sugerencia
// @Tags         suggestions
// @Produce      json
// @Param        id  path  string  true  "clave de contenido de la sugerencia"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/invoice/suggestions/{id}/apply [post]
func (h *SuggestionHandler) Apply(c *fiber.Ctx) error {
	inv, err := h.session.ApplyFix(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la sugerencia ya no aplica"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_FIX", Message: "la sugerencia no trae corrección"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromInvoice(inv))
}

// Dismiss godoc
// @Summary      Descarta una sugerencia por clave
// @Tags         suggestions
// @Produce      json
// @Param        id  path  string  true  "clave de contenido de la sugerencia"
// @Success      204
// @Router       /api/invoice/suggestions/{id}/dismiss [post]
func (h *SuggestionHandler) Dismiss(c *fiber.Ctx) error {
	h.session.Dismiss(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// SmartItems godoc
// @Summary      Nombres de ítem sugeridos para autocompletar
// @Tags         suggestions
// @Produce      json
// @Param        description  query  string  true   "descripción parcial"
// @Param        type         query  string  false  "service | sales (por defecto el tipo de la factura)"
// @Success      200  {object}  dto.SmartItemsResponse
// @Router       /api/catalog/services/suggest [get]
func (h *SuggestionHandler) SmartItems(c *fiber.Ctx) error {
	invoiceType := c.Query("type")
	if invoiceType == "" {
		invoiceType = h.session.Current().Type
	}
	return c.JSON(dto.SmartItemsResponse{
		Suggestions: advisor.SmartItemSuggestions(c.Query("description"), invoiceType),
	})
}
