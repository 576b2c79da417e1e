package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/invoice-studio/internal/application/dto"
	"github.com/tu-usuario/invoice-studio/internal/application/editing"
	"github.com/tu-usuario/invoice-studio/internal/application/export"
	"github.com/tu-usuario/invoice-studio/internal/infrastructure/pdf"
	"github.com/tu-usuario/invoice-studio/internal/infrastructure/raster"
	apphttp "github.com/tu-usuario/invoice-studio/internal/interfaces/http"
	"github.com/tu-usuario/invoice-studio/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// buildTestApp levanta la aplicación Fiber completa con una sesión nueva y
// el pipeline de exportación real (sin SMTP: share-email degrada a mailto).
func buildTestApp() (*fiber.App, *editing.Session) {
	session := editing.NewSession(func() time.Time { return fixedNow })
	uc := export.NewUseCase(
		pdf.NewMarotoRenderer(),
		raster.NewJPEGRenderer(),
		nil,
		logger.New(logger.Config{Env: "development", Level: "error"}),
	)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Session: session, ExportUC: uc})
	return app, session
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ── Factura ───────────────────────────────────────────────────────────────────

func TestGetInvoice(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/invoice/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	inv := decode[dto.InvoiceResponse](t, resp)
	assert.Contains(t, inv.InvoiceNumber, "INV-")
	assert.Equal(t, "USD", inv.Currency.Code)
	assert.Equal(t, "2026-03-10", inv.Date)
	assert.Equal(t, "2026-04-09", inv.DueDate)
}

func TestPatchInvoice_ActualizaEmisor(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPatch, "/api/invoice/", fiber.Map{
		"from":    fiber.Map{"name": "Acme Studio LLC", "email": "billing@acme.test"},
		"country": "US",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	inv := decode[dto.InvoiceResponse](t, resp)
	assert.Equal(t, "Acme Studio LLC", inv.From.Name)

	// El hallazgo de emisor ausente desaparece de la siguiente evaluación.
	resp = doJSON(t, app, http.MethodGet, "/api/invoice/suggestions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, s := range decode[[]dto.SuggestionResponse](t, resp) {
		assert.NotEqual(t, "Missing Sender Information", s.Title)
	}
}

func TestPatchInvoice_MonedaDesconocida(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPatch, "/api/invoice/", fiber.Map{"currency_code": "XXX"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	errResp := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", errResp.Code)
}

func TestPatchInvoice_FechaInvalida(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPatch, "/api/invoice/", fiber.Map{"date": "10/03/2026"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestItems_CicloCompleto(t *testing.T) {
	app, _ := buildTestApp()

	// alta
	resp := doJSON(t, app, http.MethodPost, "/api/invoice/items", fiber.Map{
		"description": "Desarrollo de API a medida",
		"quantity":    2,
		"rate":        150,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	inv := decode[dto.InvoiceResponse](t, resp)
	require.Len(t, inv.Items, 1)
	itemID := inv.Items[0].ID
	assert.Equal(t, "300", inv.Subtotal.String())

	// edición: el monto y los totales se recalculan
	resp = doJSON(t, app, http.MethodPut, "/api/invoice/items/"+itemID, fiber.Map{"quantity": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	inv = decode[dto.InvoiceResponse](t, resp)
	assert.Equal(t, "450", inv.Items[0].Amount.String())
	assert.Equal(t, "450", inv.Subtotal.String())

	// baja
	resp = doJSON(t, app, http.MethodDelete, "/api/invoice/items/"+itemID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	inv = decode[dto.InvoiceResponse](t, resp)
	assert.Empty(t, inv.Items)

	// baja repetida: la línea ya no existe
	resp = doJSON(t, app, http.MethodDelete, "/api/invoice/items/"+itemID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReset_NuevaFactura(t *testing.T) {
	app, _ := buildTestApp()

	first := decode[dto.InvoiceResponse](t, doJSON(t, app, http.MethodGet, "/api/invoice/", nil))
	resp := doJSON(t, app, http.MethodPost, "/api/invoice/reset", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	second := decode[dto.InvoiceResponse](t, resp)
	assert.NotEqual(t, first.ID, second.ID)
}

// ── Sugerencias ───────────────────────────────────────────────────────────────

func TestSuggestions_AplicarCorreccion(t *testing.T) {
	app, _ := buildTestApp()

	// Alemania con la tarifa por defecto (0) produce la sugerencia de IVA.
	resp := doJSON(t, app, http.MethodPatch, "/api/invoice/", fiber.Map{"country": "DE"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/invoice/suggestions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var target dto.SuggestionResponse
	for _, s := range decode[[]dto.SuggestionResponse](t, resp) {
		if s.Title == "Incorrect VAT Rate" {
			target = s
		}
	}
	require.NotEmpty(t, target.ID, "debe aparecer la sugerencia de tarifa de IVA")
	require.True(t, target.HasFix)

	resp = doJSON(t, app, http.MethodPost, "/api/invoice/suggestions/"+target.ID+"/apply", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	inv := decode[dto.InvoiceResponse](t, resp)
	assert.Equal(t, "19", inv.TaxRate.String())
	assert.Equal(t, "VAT", inv.TaxType)
}

func TestSuggestions_AplicarSinCorreccion(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/invoice/suggestions", nil)
	var target dto.SuggestionResponse
	for _, s := range decode[[]dto.SuggestionResponse](t, resp) {
		if s.Title == "Missing Sender Information" {
			target = s
		}
	}
	require.NotEmpty(t, target.ID)

	resp = doJSON(t, app, http.MethodPost, "/api/invoice/suggestions/"+target.ID+"/apply", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSuggestions_AplicarClaveInexistente(t *testing.T) {
	app, _ := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/invoice/suggestions/0000000000000000/apply", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSuggestions_Descartar(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/invoice/suggestions", nil)
	var target dto.SuggestionResponse
	for _, s := range decode[[]dto.SuggestionResponse](t, resp) {
		if s.Title == "Add Payment Terms" {
			target = s
		}
	}
	require.NotEmpty(t, target.ID)

	resp = doJSON(t, app, http.MethodPost, "/api/invoice/suggestions/"+target.ID+"/dismiss", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/invoice/suggestions", nil)
	for _, s := range decode[[]dto.SuggestionResponse](t, resp) {
		assert.NotEqual(t, "Add Payment Terms", s.Title, "la sugerencia descartada no vuelve")
	}
}

// ── Catálogos ─────────────────────────────────────────────────────────────────

func TestCatalog_Currencies(t *testing.T) {
	app, _ := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/api/catalog/currencies", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	currencies := decode[[]map[string]any](t, resp)
	assert.GreaterOrEqual(t, len(currencies), 14)
}

func TestCatalog_TaxRule(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/catalog/tax-rules/DE", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rule := decode[map[string]any](t, resp)
	assert.Equal(t, "VAT", rule["type"])

	resp = doJSON(t, app, http.MethodGet, "/api/catalog/tax-rules/ZZ", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalog_SearchServices(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/catalog/services/search?q=seo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	results := decode[[]map[string]any](t, resp)
	assert.NotEmpty(t, results)

	// Sin coincidencias la respuesta es una lista vacía, no null.
	resp = doJSON(t, app, http.MethodGet, "/api/catalog/services/search?q=zzzzzz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body))
}

func TestCatalog_SmartItems(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/catalog/services/suggest?description=software+license&type=sales", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.SmartItemsResponse](t, resp)
	assert.Contains(t, out.Suggestions, "Software License")
}

// ── Exportación ───────────────────────────────────────────────────────────────

func TestExport_FormatoDesconocido(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/export", fiber.Map{"format": "docx"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errResp := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "UNSUPPORTED_FORMAT", errResp.Code)
}

func TestExport_CompartirWhatsApp(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/export", fiber.Map{"format": "share-whatsapp"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.ShareResponse](t, resp)
	assert.Contains(t, out.ShareURL, "wa.me")
}

func TestExport_EmailSinSMTPDegradaAMailto(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/export", fiber.Map{
		"format": "share-email",
		"to":     "cliente@ejemplo.test",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.ShareResponse](t, resp)
	assert.Contains(t, out.ShareURL, "mailto:")
}
