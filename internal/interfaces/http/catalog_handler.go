package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/invoice-studio/internal/application/dto"
	"github.com/tu-usuario/invoice-studio/pkg/catalog"
)

// CatalogHandler sirve las tablas de referencia (solo lectura).
type CatalogHandler struct{}

// NewCatalogHandler construye el handler.
func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

// Currencies godoc
// @Summary      Monedas soportadas
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  catalog.Currency
// @Router       /api/catalog/currencies [get]
func (h *CatalogHandler) Currencies(c *fiber.Ctx) error {
	return c.JSON(catalog.Currencies)
}

// Countries godoc
// @Summary      Países soportados
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  catalog.Country
// @Router       /api/catalog/countries [get]
func (h *CatalogHandler) Countries(c *fiber.Ctx) error {
	return c.JSON(catalog.Countries)
}

// TaxRule godoc
// @Summary      Regla de impuesto de un país
// @Tags         catalog
// @Produce      json
// @Param        country  path  string  true  "código ISO 3166-1 alfa-2"
// @Success      200  {object}  catalog.TaxRule
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/tax-rules/{country} [get]
func (h *CatalogHandler) TaxRule(c *fiber.Ctx) error {
	rule, ok := catalog.TaxRuleByCountry(c.Params("country"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "país sin regla de impuesto"})
	}
	return c.JSON(rule)
}

// SearchServices godoc
// @Summary      Búsqueda de servicios del catálogo
// @Description  Subcadena sin distinguir mayúsculas sobre nombre, descripción y categoría.
// @Tags         catalog
// @Produce      json
// @Param        q  query  string  true  "consulta"
// @Success      200  {array}  catalog.ServiceMatch
// @Router       /api/catalog/services/search [get]
func (h *CatalogHandler) SearchServices(c *fiber.Ctx) error {
	matches := catalog.SearchServices(c.Query("q"))
	if matches == nil {
		matches = []catalog.ServiceMatch{}
	}
	return c.JSON(matches)
}
