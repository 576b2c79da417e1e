package editing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/invoice-studio/internal/application/editing"
	"github.com/tu-usuario/invoice-studio/internal/domain"
	"github.com/tu-usuario/invoice-studio/internal/domain/advisor"
	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la sesión de edición: un documento en memoria, escritura por
// reemplazo de snapshot y totales siempre recalculados antes de que cualquier
// lector (incluido el motor de sugerencias) vea la factura.
// ──────────────────────────────────────────────────────────────────────────────

var sessionNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestSession() *editing.Session {
	return editing.NewSession(func() time.Time { return sessionNow })
}

func strPtr(s string) *string { return &s }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func TestNewSession_FacturaPorDefecto(t *testing.T) {
	s := newTestSession()
	inv := s.Current()

	assert.NotEmpty(t, inv.ID)
	assert.Contains(t, inv.InvoiceNumber, "INV-")
	assert.Equal(t, entity.InvoiceTypeService, inv.Type)
	assert.Equal(t, "USD", inv.Currency.Code)
	assert.Equal(t, sessionNow, inv.Date)
	assert.Equal(t, sessionNow.AddDate(0, 0, 30), inv.DueDate)
	assert.Empty(t, inv.Items)
	assert.True(t, inv.Total.IsZero())
}

func TestUpdate_RecalculaTotales(t *testing.T) {
	s := newTestSession()
	_, err := s.AddItem("Consultoría mensual dedicada", decimal.NewFromInt(2), decimal.NewFromInt(150), "", "")
	require.NoError(t, err)

	inv, err := s.Update(editing.InvoicePatch{TaxRate: decPtr(decimal.NewFromInt(10))})
	require.NoError(t, err)

	assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(300)))
	assert.True(t, inv.Tax.Equal(decimal.NewFromInt(30)))
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(330)))
}

func TestUpdate_MonedaDesconocida(t *testing.T) {
	s := newTestSession()
	before := s.Current()

	_, err := s.Update(editing.InvoicePatch{CurrencyCode: strPtr("XXX")})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, before.Currency, s.Current().Currency,
		"un código desconocido deja la factura sin cambios")
}

func TestUpdate_TipoInvalido(t *testing.T) {
	s := newTestSession()
	_, err := s.Update(editing.InvoicePatch{Type: strPtr("recibo")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_CambioDeMoneda(t *testing.T) {
	s := newTestSession()
	inv, err := s.Update(editing.InvoicePatch{CurrencyCode: strPtr("JPY")})
	require.NoError(t, err)
	assert.Equal(t, "¥", inv.Currency.Symbol)
	assert.EqualValues(t, 0, inv.Currency.DecimalDigits)
}

func TestUpdateItem_RecalculaMontoYTotales(t *testing.T) {
	s := newTestSession()
	inv, err := s.AddItem("Desarrollo de API a medida", decimal.NewFromInt(1), decimal.NewFromInt(100), "", "")
	require.NoError(t, err)
	itemID := inv.Items[0].ID

	inv, err = s.UpdateItem(itemID, editing.ItemPatch{Quantity: decPtr(decimal.NewFromInt(3))})
	require.NoError(t, err)

	assert.True(t, inv.Items[0].Amount.Equal(decimal.NewFromInt(300)),
		"editar la cantidad recalcula el monto de la línea")
	assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(300)),
		"y el subtotal se recalcula en la misma operación")
}

func TestUpdateItem_NoExiste(t *testing.T) {
	s := newTestSession()
	_, err := s.UpdateItem("no-such-id", editing.ItemPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveItem(t *testing.T) {
	s := newTestSession()
	inv, err := s.AddItem("Auditoría de posicionamiento", decimal.NewFromInt(1), decimal.NewFromInt(200), "", "")
	require.NoError(t, err)

	inv, err = s.RemoveItem(inv.Items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, inv.Items)
	assert.True(t, inv.Subtotal.IsZero())

	_, err = s.RemoveItem("no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetTheme_ConservaLogo(t *testing.T) {
	s := newTestSession()
	s.SetLogo("data:image/png;base64,AAAA", 40)

	inv := s.SetTheme(entity.Theme{
		PrimaryColor:   "#111111",
		SecondaryColor: "#222222",
		FontFamily:     "Georgia, serif",
	})

	assert.Equal(t, "#111111", inv.Theme.PrimaryColor)
	assert.Equal(t, "data:image/png;base64,AAAA", inv.Theme.Logo,
		"un tema sin logo conserva el logo ya subido")
	assert.Equal(t, 40, inv.Theme.LogoWidthMM)
}

func TestReset_ReponeFacturaYDescartes(t *testing.T) {
	s := newTestSession()
	oldID := s.Current().ID

	// descartar el hallazgo de condiciones de pago
	sg := suggestionByTitle(t, s, "Add Payment Terms")
	s.Dismiss(sg.ID)
	require.False(t, hasSuggestion(s, "Add Payment Terms"))

	inv := s.Reset()

	assert.NotEqual(t, oldID, inv.ID)
	assert.True(t, hasSuggestion(s, "Add Payment Terms"),
		"el reset limpia los descartes y el hallazgo vuelve a aparecer")
}

func TestDuplicate_NuevaIdentidadMismoContenido(t *testing.T) {
	s := newTestSession()
	_, err := s.AddItem("Gestión de campañas publicitarias", decimal.NewFromInt(1), decimal.NewFromInt(500), "", "")
	require.NoError(t, err)
	before := s.Current()

	inv := s.Duplicate()

	assert.NotEqual(t, before.ID, inv.ID)
	assert.NotEqual(t, before.InvoiceNumber, inv.InvoiceNumber)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, before.Items[0].Description, inv.Items[0].Description)
}

func TestSuggestions_DescartePorClave(t *testing.T) {
	s := newTestSession()

	sg := suggestionByTitle(t, s, "Add Payment Terms")
	s.Dismiss(sg.ID)

	// La factura cambia y la lista de sugerencias se reordena por completo,
	// pero el descarte sigue aplicando: la clave es de contenido, no de
	// posición.
	_, err := s.Update(editing.InvoicePatch{Country: strPtr("DE")})
	require.NoError(t, err)

	assert.False(t, hasSuggestion(s, "Add Payment Terms"),
		"el descarte sobrevive a cambios que reordenan la lista")
	assert.True(t, hasSuggestion(s, "German Tax ID Required"),
		"los hallazgos nuevos sí aparecen")
}

func TestDismiss_ClaveDesconocidaNoFalla(t *testing.T) {
	s := newTestSession()
	s.Dismiss("una-clave-que-ya-no-aplica")
	assert.NotNil(t, s.Suggestions())
}

func TestApplyFix_SincronizaImpuesto(t *testing.T) {
	s := newTestSession()
	_, err := s.Update(editing.InvoicePatch{Country: strPtr("DE")})
	require.NoError(t, err)

	sg := suggestionByTitle(t, s, "Incorrect VAT Rate")
	inv, err := s.ApplyFix(sg.ID)
	require.NoError(t, err)

	assert.True(t, inv.TaxRate.Equal(decimal.NewFromInt(19)))
	assert.Equal(t, "VAT", inv.TaxType)
	assert.False(t, hasSuggestion(s, "Incorrect VAT Rate"),
		"aplicada la corrección, el hallazgo desaparece de la evaluación")
}

func TestApplyFix_RecalculaTotalesDespues(t *testing.T) {
	s := newTestSession()
	_, err := s.AddItem("Mantenimiento web trimestral", decimal.NewFromInt(1), decimal.NewFromInt(100), "", "")
	require.NoError(t, err)
	_, err = s.Update(editing.InvoicePatch{Country: strPtr("DE")})
	require.NoError(t, err)

	sg := suggestionByTitle(t, s, "Incorrect VAT Rate")
	inv, err := s.ApplyFix(sg.ID)
	require.NoError(t, err)

	assert.True(t, inv.Tax.Equal(decimal.NewFromInt(19)),
		"los totales se rederivan con la tarifa sincronizada")
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(119)))
}

func TestApplyFix_SugerenciaSinCorreccion(t *testing.T) {
	s := newTestSession()
	sg := suggestionByTitle(t, s, "Missing Sender Information")

	_, err := s.ApplyFix(sg.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"una sugerencia sin comando no se puede aplicar")
}

func TestApplyFix_SugerenciaQueYaNoAplica(t *testing.T) {
	s := newTestSession()
	_, err := s.ApplyFix("0000000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func suggestionByTitle(t *testing.T, s *editing.Session, title string) advisor.Suggestion {
	t.Helper()
	for _, sg := range s.Suggestions() {
		if sg.Title == title {
			return sg
		}
	}
	t.Fatalf("la sesión no produjo la sugerencia %q", title)
	return advisor.Suggestion{}
}

func hasSuggestion(s *editing.Session, title string) bool {
	for _, sg := range s.Suggestions() {
		if sg.Title == title {
			return true
		}
	}
	return false
}
