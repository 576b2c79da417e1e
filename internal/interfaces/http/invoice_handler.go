package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/invoice-studio/internal/application/dto"
	"github.com/tu-usuario/invoice-studio/internal/application/editing"
	"github.com/tu-usuario/invoice-studio/internal/domain"
	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
)

// InvoiceHandler maneja las peticiones HTTP de edición de la factura.
type InvoiceHandler struct {
	session *editing.Session
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(session *editing.Session) *InvoiceHandler {
	return &InvoiceHandler{session: session}
}

// Get godoc
// @Summary      Factura vigente de la sesión
// @Tags         invoice
// @Produce      json
// @Success      200  {object}  dto.InvoiceResponse
// @Router       /api/invoice [get]
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.FromInvoice(h.session.Current()))
}

// Update godoc
// @Summary      Actualización parcial de la factura
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateInvoiceRequest  true  "campos a actualizar; los totales se recalculan"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoice [patch]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	patch, err := in.ToPatch()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	inv, err := h.session.Update(patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "moneda desconocida"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromInvoice(inv))
}

// Reset godoc
// @Summary      Repone la factura por defecto
// @Tags         invoice
// @Produce      json
// @Success      200  {object}  dto.InvoiceResponse
// @Router       /api/invoice/reset [post]
func (h *InvoiceHandler) Reset(c *fiber.Ctx) error {
	return c.JSON(dto.FromInvoice(h.session.Reset()))
}

// Duplicate godoc
// @Summary      Duplica la factura con número y fecha nuevos
// @Tags         invoice
// @Produce      json
// @Success      200  {object}  dto.InvoiceResponse
// @Router       /api/invoice/duplicate [post]
func (h *InvoiceHandler) Duplicate(c *fiber.Ctx) error {
	return c.JSON(dto.FromInvoice(h.session.Duplicate()))
}

// AddItem godoc
// @Summary      Agrega una línea a la factura
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "description, quantity, rate"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoice/items [post]
func (h *InvoiceHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := h.session.AddItem(in.Description, in.Quantity, in.Rate, in.TaxCategory, in.Category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromInvoice(inv))
}

// UpdateItem godoc
// @Summary      Edita una línea; el monto se recalcula
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "id de la línea"
// @Param        body  body  dto.UpdateItemRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoice/items/{id} [put]
func (h *InvoiceHandler) UpdateItem(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := h.session.UpdateItem(id, editing.ItemPatch{
		Description: in.Description,
		Quantity:    in.Quantity,
		Rate:        in.Rate,
		TaxCategory: in.TaxCategory,
		Category:    in.Category,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromInvoice(inv))
}

// RemoveItem godoc
// @Summary      Elimina una línea de la factura
// @Tags         invoice
// @Produce      json
// @Param        id  path  string  true  "id de la línea"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoice/items/{id} [delete]
func (h *InvoiceHandler) RemoveItem(c *fiber.Ctx) error {
	inv, err := h.session.RemoveItem(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromInvoice(inv))
}

// SetTheme godoc
// @Summary      Reemplaza el tema del documento
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ThemeDTO  true  "colores hex, tipografía, logo opcional"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoice/theme [put]
func (h *InvoiceHandler) SetTheme(c *fiber.Ctx) error {
	var in dto.ThemeDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv := h.session.SetTheme(entity.Theme(in))
	return c.JSON(dto.FromInvoice(inv))
}

// SetLogo godoc
// @Summary      Sube el logo del tema
// @Description  Acepta archivo multipart (campo "logo") o JSON con data URL.
// @Tags         invoice
// @Accept       mpfd
// @Produce      json
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/invoice/theme/logo [post]
func (h *InvoiceHandler) SetLogo(c *fiber.Ctx) error {
	// Multipart: campo "logo" con la imagen.
	if file, err := c.FormFile("logo"); err == nil {
		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "archivo ilegible"})
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "archivo ilegible"})
		}
		dataURL, err := editing.EncodeLogo(data)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		widthMM := c.QueryInt("width_mm", 0)
		return c.JSON(dto.FromInvoice(h.session.SetLogo(dataURL, widthMM)))
	}

	// JSON: data URL ya armado por el cliente.
	var in dto.SetLogoRequest
	if err := c.BodyParser(&in); err != nil || in.DataURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se espera archivo multipart o data_url"})
	}
	if _, _, err := editing.DecodeLogo(in.DataURL); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.JSON(dto.FromInvoice(h.session.SetLogo(in.DataURL, in.LogoWidthMM)))
}
