package export_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/invoice-studio/internal/application/export"
	"github.com/tu-usuario/invoice-studio/internal/domain"
	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
	"github.com/tu-usuario/invoice-studio/internal/domain/invoice"
	"github.com/tu-usuario/invoice-studio/pkg/logger"
)

// Renderizadores y emisor de correo falsos: el caso de uso solo orquesta,
// así que los tests verifican ruteo de formatos, nombres de archivo y
// envoltura de errores, no el contenido de los bytes.

type fakePDF struct {
	out []byte
	err error
}

func (f fakePDF) RenderPDF(entity.Invoice) ([]byte, error) { return f.out, f.err }

type fakeJPEG struct {
	out []byte
	err error
}

func (f fakeJPEG) RenderJPEG(entity.Invoice) ([]byte, error) { return f.out, f.err }

type fakeMail struct {
	to, subject string
	attachment  []byte
	err         error
}

func (f *fakeMail) Send(to, subject, body string, attachment []byte, filename string) error {
	f.to, f.subject, f.attachment = to, subject, attachment
	return f.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func testInvoice() entity.Invoice {
	inv := entity.NewInvoice(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	inv.InvoiceNumber = "INV-000123"
	inv.To.Name = "Cliente Uno SA"
	inv.Items = []entity.InvoiceItem{
		entity.NewItem("Consultoría mensual", decimal.NewFromInt(2), decimal.NewFromInt(150)),
	}
	inv.TaxRate = decimal.NewFromInt(10)
	return invoice.Apply(inv)
}

func TestExport_PDF(t *testing.T) {
	uc := export.NewUseCase(fakePDF{out: []byte("%PDF")}, fakeJPEG{}, nil, testLogger())

	res, err := uc.Export(testInvoice(), export.FormatPDF, "")
	require.NoError(t, err)

	assert.Equal(t, "invoice-INV-000123.pdf", res.Filename)
	assert.Equal(t, "application/pdf", res.ContentType)
	assert.False(t, res.Inline)
	assert.Equal(t, []byte("%PDF"), res.Bytes)
}

func TestExport_PrintEsPDFInline(t *testing.T) {
	uc := export.NewUseCase(fakePDF{out: []byte("%PDF")}, fakeJPEG{}, nil, testLogger())

	res, err := uc.Export(testInvoice(), export.FormatPrint, "")
	require.NoError(t, err)
	assert.True(t, res.Inline, "imprimir sirve el mismo PDF con disposición inline")
	assert.Equal(t, "application/pdf", res.ContentType)
}

func TestExport_JPEG(t *testing.T) {
	uc := export.NewUseCase(fakePDF{}, fakeJPEG{out: []byte{0xff, 0xd8}}, nil, testLogger())

	res, err := uc.Export(testInvoice(), export.FormatJPEG, "")
	require.NoError(t, err)
	assert.Equal(t, "invoice-INV-000123.jpg", res.Filename)
	assert.Equal(t, "image/jpeg", res.ContentType)
}

func TestExport_FormatoDesconocido(t *testing.T) {
	uc := export.NewUseCase(fakePDF{}, fakeJPEG{}, nil, testLogger())

	_, err := uc.Export(testInvoice(), "docx", "")
	assert.ErrorIs(t, err, domain.ErrUnsupported)
}

func TestExport_FalloDeRenderSeEnvuelve(t *testing.T) {
	uc := export.NewUseCase(fakePDF{err: errors.New("sin fuente")}, fakeJPEG{}, nil, testLogger())

	_, err := uc.Export(testInvoice(), export.FormatPDF, "")
	assert.ErrorIs(t, err, domain.ErrExportFailed)
}

func TestExport_WhatsApp(t *testing.T) {
	uc := export.NewUseCase(fakePDF{}, fakeJPEG{out: []byte{0xff, 0xd8}}, nil, testLogger())

	res, err := uc.Export(testInvoice(), export.FormatShareWhatsApp, "")
	require.NoError(t, err)

	assert.Contains(t, res.ShareURL, "https://wa.me/?text=")
	assert.Contains(t, res.Message, "Invoice INV-000123 for $330.00",
		"el mensaje lleva el total redondeado a los decimales de la moneda")
}

func TestExport_EmailConSMTP(t *testing.T) {
	mail := &fakeMail{}
	uc := export.NewUseCase(fakePDF{out: []byte("%PDF")}, fakeJPEG{}, mail, testLogger())

	res, err := uc.Export(testInvoice(), export.FormatShareEmail, "cliente@ejemplo.test")
	require.NoError(t, err)

	assert.Equal(t, "cliente@ejemplo.test", mail.to)
	assert.Equal(t, []byte("%PDF"), mail.attachment)
	assert.Nil(t, res.Bytes, "con el correo enviado no hay binario que devolver")
	assert.Contains(t, res.Message, "cliente@ejemplo.test")
}

func TestExport_EmailSinSMTP(t *testing.T) {
	uc := export.NewUseCase(fakePDF{out: []byte("%PDF")}, fakeJPEG{}, nil, testLogger())

	res, err := uc.Export(testInvoice(), export.FormatShareEmail, "cliente@ejemplo.test")
	require.NoError(t, err)
	assert.Contains(t, res.ShareURL, "mailto:cliente@ejemplo.test")
}

func TestExport_FalloDeCorreoSeEnvuelve(t *testing.T) {
	mail := &fakeMail{err: errors.New("conexión rechazada")}
	uc := export.NewUseCase(fakePDF{out: []byte("%PDF")}, fakeJPEG{}, mail, testLogger())

	_, err := uc.Export(testInvoice(), export.FormatShareEmail, "cliente@ejemplo.test")
	assert.ErrorIs(t, err, domain.ErrExportFailed)
}
