// Package export implementa el pipeline de exportación: toma el snapshot de
// la factura, lo entrega a un renderizador (PDF o raster JPEG) y produce un
// archivo descargable o una acción de compartir. Los fallos se registran en
// el log de diagnóstico; la factura en memoria nunca se modifica.
package export

import (
	"fmt"
	"net/url"

	"github.com/tu-usuario/invoice-studio/internal/domain"
	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
	"github.com/tu-usuario/invoice-studio/pkg/logger"
)

// Formatos de exportación soportados.
const (
	FormatPDF           = "pdf"
	FormatJPEG          = "jpeg"
	FormatPrint         = "print"
	FormatShareWhatsApp = "share-whatsapp"
	FormatShareEmail    = "share-email"
)

// DocumentRenderer renderiza la factura como documento PDF.
type DocumentRenderer interface {
	RenderPDF(inv entity.Invoice) ([]byte, error)
}

// SnapshotRenderer renderiza la factura como imagen raster JPEG
// (la instantánea A4 que usa el flujo de compartir).
type SnapshotRenderer interface {
	RenderJPEG(inv entity.Invoice) ([]byte, error)
}

// MailSender envía la factura por correo con un adjunto.
type MailSender interface {
	Send(to, subject, body string, attachment []byte, filename string) error
}

// Result salida de una exportación. Para archivos llenan Bytes/ContentType/
// Filename; para acciones de compartir, ShareURL y Message.
type Result struct {
	Filename    string `json:"filename,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Inline      bool   `json:"inline,omitempty"`
	Bytes       []byte `json:"-"`
	ShareURL    string `json:"share_url,omitempty"`
	Message     string `json:"message,omitempty"`
}

// UseCase orquesta la exportación sobre los renderizadores inyectados.
type UseCase struct {
	pdf  DocumentRenderer
	jpeg SnapshotRenderer
	mail MailSender
	log  *logger.Logger
}

// NewUseCase construye el caso de uso. mail puede ser nil si SMTP no está
// configurado; en ese caso share-email degrada a un enlace mailto.
func NewUseCase(pdf DocumentRenderer, jpeg SnapshotRenderer, mail MailSender, log *logger.Logger) *UseCase {
	return &UseCase{pdf: pdf, jpeg: jpeg, mail: mail, log: log}
}

// Export produce el artefacto del formato pedido a partir del snapshot.
// Un formato desconocido devuelve domain.ErrUnsupported; los fallos de
// renderizado se registran y se envuelven en domain.ErrExportFailed.
func (uc *UseCase) Export(inv entity.Invoice, format, to string) (Result, error) {
	switch format {
	case FormatPDF:
		return uc.exportPDF(inv, false)
	case FormatPrint:
		// Mismo PDF, disposición inline para el diálogo de impresión.
		return uc.exportPDF(inv, true)
	case FormatJPEG:
		return uc.exportJPEG(inv)
	case FormatShareWhatsApp:
		return uc.shareWhatsApp(inv)
	case FormatShareEmail:
		return uc.shareEmail(inv, to)
	default:
		return Result{}, fmt.Errorf("%w: %q", domain.ErrUnsupported, format)
	}
}

func (uc *UseCase) exportPDF(inv entity.Invoice, inline bool) (Result, error) {
	data, err := uc.pdf.RenderPDF(inv)
	if err != nil {
		uc.log.Error().Err(err).Str("format", FormatPDF).Msg("exportación PDF fallida")
		return Result{}, fmt.Errorf("%w: pdf: %v", domain.ErrExportFailed, err)
	}
	return Result{
		Filename:    fmt.Sprintf("invoice-%s.pdf", inv.InvoiceNumber),
		ContentType: "application/pdf",
		Inline:      inline,
		Bytes:       data,
	}, nil
}

func (uc *UseCase) exportJPEG(inv entity.Invoice) (Result, error) {
	data, err := uc.jpeg.RenderJPEG(inv)
	if err != nil {
		uc.log.Error().Err(err).Str("format", FormatJPEG).Msg("exportación JPEG fallida")
		return Result{}, fmt.Errorf("%w: jpeg: %v", domain.ErrExportFailed, err)
	}
	return Result{
		Filename:    fmt.Sprintf("invoice-%s.jpg", inv.InvoiceNumber),
		ContentType: "image/jpeg",
		Bytes:       data,
	}, nil
}

// shareWhatsApp devuelve la instantánea JPEG junto con el enlace wa.me con
// el mensaje enlatado; el cliente adjunta la imagen por su cuenta.
func (uc *UseCase) shareWhatsApp(inv entity.Invoice) (Result, error) {
	res, err := uc.exportJPEG(inv)
	if err != nil {
		return Result{}, err
	}
	msg := shareMessage(inv)
	res.Filename = "invoice-for-whatsapp.jpg"
	res.Message = msg
	res.ShareURL = "https://wa.me/?text=" + url.QueryEscape(msg)
	return res, nil
}

// shareEmail envía el PDF por SMTP; sin SMTP configurado degrada a un
// enlace mailto para el cliente de correo del usuario.
func (uc *UseCase) shareEmail(inv entity.Invoice, to string) (Result, error) {
	res, err := uc.exportPDF(inv, false)
	if err != nil {
		return Result{}, err
	}
	const subject = "Invoice"
	const body = "Please find the invoice attached."

	if uc.mail == nil {
		q := url.Values{"subject": {subject}, "body": {body}}
		res.ShareURL = "mailto:" + to + "?" + q.Encode()
		res.Message = body
		return res, nil
	}
	if err := uc.mail.Send(to, subject, body, res.Bytes, res.Filename); err != nil {
		uc.log.Error().Err(err).Str("to", to).Msg("envío de factura por correo fallido")
		return Result{}, fmt.Errorf("%w: email: %v", domain.ErrExportFailed, err)
	}
	res.Message = "Invoice sent to " + to
	res.Bytes = nil
	return res, nil
}

// shareMessage mensaje enlatado del flujo de compartir: número y total en
// la moneda de la factura, redondeado a sus decimales.
func shareMessage(inv entity.Invoice) string {
	return fmt.Sprintf("Invoice %s for %s%s",
		inv.InvoiceNumber, inv.Currency.Symbol, inv.Total.StringFixed(inv.Currency.DecimalDigits))
}
