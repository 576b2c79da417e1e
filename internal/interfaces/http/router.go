package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/invoice-studio/internal/application/editing"
	"github.com/tu-usuario/invoice-studio/internal/application/export"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Session  *editing.Session
	ExportUC *export.UseCase
}

// Router registra las rutas de la API. La sesión es única y ambiente:
// no hay usuarios ni autenticación, igual que en el editor.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Factura (sesión de edición)
	invoiceHandler := NewInvoiceHandler(deps.Session)
	inv := api.Group("/invoice")
	inv.Get("/", invoiceHandler.Get)
	inv.Patch("/", invoiceHandler.Update)
	inv.Post("/reset", invoiceHandler.Reset)
	inv.Post("/duplicate", invoiceHandler.Duplicate)
	inv.Post("/items", invoiceHandler.AddItem)
	inv.Put("/items/:id", invoiceHandler.UpdateItem)
	inv.Delete("/items/:id", invoiceHandler.RemoveItem)
	inv.Put("/theme", invoiceHandler.SetTheme)
	inv.Post("/theme/logo", invoiceHandler.SetLogo)

	// Motor de sugerencias
	suggestionHandler := NewSuggestionHandler(deps.Session)
	inv.Get("/suggestions", suggestionHandler.List)
	inv.Post("/suggestions/:id/apply", suggestionHandler.Apply)
	inv.Post("/suggestions/:id/dismiss", suggestionHandler.Dismiss)

	// Catálogos de referencia
	catalogHandler := NewCatalogHandler()
	cat := api.Group("/catalog")
	cat.Get("/currencies", catalogHandler.Currencies)
	cat.Get("/countries", catalogHandler.Countries)
	cat.Get("/tax-rules/:country", catalogHandler.TaxRule)
	cat.Get("/services/search", catalogHandler.SearchServices)
	cat.Get("/services/suggest", suggestionHandler.SmartItems)

	// Exportación
	exportHandler := NewExportHandler(deps.Session, deps.ExportUC)
	api.Post("/export", exportHandler.Export)
}
