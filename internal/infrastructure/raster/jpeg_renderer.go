// Package raster implementa la instantánea JPEG de la factura: una página
// con proporción A4 (794×1123 px a 96 DPI) sobre fondo blanco, pensada para
// el flujo de compartir, no para impresión de alta fidelidad (eso lo cubre
// el exportador PDF).
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
)

// Dimensiones A4 a 96 DPI, las mismas de la instantánea del editor.
const (
	pageWidth  = 794
	pageHeight = 1123
	marginX    = 60
	lineHeight = 18
	quality    = 90
)

// JPEGRenderer implementa export.SnapshotRenderer dibujando la factura con
// la fuente de mapa de bits de x/image.
type JPEGRenderer struct{}

// NewJPEGRenderer construye el renderizador.
func NewJPEGRenderer() *JPEGRenderer { return &JPEGRenderer{} }

// RenderJPEG dibuja la página y la codifica como JPEG calidad 90.
func (r *JPEGRenderer) RenderJPEG(inv entity.Invoice) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, pageWidth, pageHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	primary := parseHexColor(inv.Theme.PrimaryColor)
	gray := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	black := color.RGBA{A: 255}

	p := &page{img: img, y: 70}
	money := func(d decimal.Decimal) string {
		return inv.Currency.Symbol + d.StringFixed(inv.Currency.DecimalDigits)
	}

	// Encabezado
	p.writeLeft("INVOICE", primary)
	p.writeRight(inv.InvoiceNumber, black)
	p.newline()
	p.writeLeft(nonEmpty(inv.From.Name, "—"), black)
	p.writeRight("Date: "+inv.Date.Format("2006-01-02"), gray)
	p.newline()
	p.writeRight("Due: "+inv.DueDate.Format("2006-01-02"), gray)
	p.newline()
	p.rule(primary)

	// Partes
	p.writeLeft("FROM: "+partyLine(inv.From), gray)
	p.newline()
	p.writeLeft("BILL TO: "+partyLine(inv.To), gray)
	p.newline()
	p.rule(primary)

	// Líneas
	p.writeLeft("Qty   Description", gray)
	p.writeRight("Rate        Amount", gray)
	p.newline()
	for _, it := range inv.Items {
		p.writeLeft(fmt.Sprintf("%-5s %s", it.Quantity.String(), it.Description), black)
		p.writeRight(fmt.Sprintf("%s    %s", money(it.Rate), money(it.Amount)), black)
		p.newline()
	}
	p.rule(primary)

	// Totales
	p.writeRight("Subtotal: "+money(inv.Subtotal), black)
	p.newline()
	p.writeRight(fmt.Sprintf("%s (%s%%): %s", nonEmpty(inv.TaxType, "Tax"), inv.TaxRate.String(), money(inv.Tax)), black)
	p.newline()
	p.writeRight("TOTAL: "+money(inv.Total), primary)
	p.newline()

	// Notas y condiciones
	if inv.Notes != "" {
		p.newline()
		p.writeLeft("Notes: "+inv.Notes, gray)
		p.newline()
	}
	if inv.PaymentTerms != "" {
		p.writeLeft("Payment Terms: "+inv.PaymentTerms, gray)
		p.newline()
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("raster: codificar jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// page cursor de escritura de arriba hacia abajo.
type page struct {
	img *image.RGBA
	y   int
}

func (p *page) newline() { p.y += lineHeight }

// rule dibuja una línea separadora horizontal.
func (p *page) rule(c color.Color) {
	for x := marginX; x < pageWidth-marginX; x++ {
		p.img.Set(x, p.y-6, c)
	}
	p.newline()
}

func (p *page) writeLeft(s string, c color.Color) {
	p.write(s, c, marginX)
}

// writeRight alinea el texto contra el margen derecho usando el ancho fijo
// de la fuente.
func (p *page) writeRight(s string, c color.Color) {
	w := font.MeasureString(basicfont.Face7x13, s).Ceil()
	p.write(s, c, pageWidth-marginX-w)
}

func (p *page) write(s string, c color.Color, x int) {
	d := font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, p.y),
	}
	d.DrawString(s)
}

func partyLine(p entity.Party) string {
	parts := []string{nonEmpty(p.Name, "—")}
	if p.Address != "" {
		parts = append(parts, p.Address)
	}
	if p.Email != "" {
		parts = append(parts, p.Email)
	}
	if p.TaxID != "" {
		parts = append(parts, "Tax ID: "+p.TaxID)
	}
	return strings.Join(parts, "  |  ")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// parseHexColor convierte "#rrggbb" en color RGBA; un hex malformado cae al
// negro.
func parseHexColor(hex string) color.RGBA {
	hex = strings.TrimPrefix(hex, "#")
	out := color.RGBA{A: 255}
	if len(hex) != 6 {
		return out
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return out
	}
	out.R = uint8(v >> 16)
	out.G = uint8(v >> 8)
	out.B = uint8(v)
	return out
}
