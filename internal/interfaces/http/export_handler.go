package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/invoice-studio/internal/application/dto"
	"github.com/tu-usuario/invoice-studio/internal/application/editing"
	"github.com/tu-usuario/invoice-studio/internal/application/export"
	"github.com/tu-usuario/invoice-studio/internal/domain"
)

// ExportHandler maneja la exportación del documento renderizado.
type ExportHandler struct {
	session *editing.Session
	uc      *export.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(session *editing.Session, uc *export.UseCase) *ExportHandler {
	return &ExportHandler{session: session, uc: uc}
}

// Export godoc
// @Summary      Exporta o comparte la factura
// @Description  format: pdf | jpeg | print | share-whatsapp | share-email. Para archivos responde el binario; para compartir, un JSON con share_url.
// @Tags         export
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExportRequest  true  "formato y, para share-email, destinatario"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/export [post]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	var in dto.ExportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	// La exportación trabaja sobre una copia del snapshot y nunca muta la
	// factura de la sesión.
	res, err := h.uc.Export(h.session.Current(), in.Format, in.To)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupported) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "EXPORT", Message: err.Error()})
	}

	// Acciones de compartir: JSON con el enlace y el mensaje.
	if res.ShareURL != "" || res.Bytes == nil {
		return c.JSON(dto.ShareResponse{
			ShareURL: res.ShareURL,
			Message:  res.Message,
			Filename: res.Filename,
		})
	}

	disposition := "attachment"
	if res.Inline {
		disposition = "inline"
	}
	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentDisposition, disposition+`; filename="`+res.Filename+`"`)
	return c.Send(res.Bytes)
}
