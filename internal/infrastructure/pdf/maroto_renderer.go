// Package pdf implementa la exportación de la factura a PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Logo + Emisor        │  INVOICE + N° + Fechas      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FROM: nombre / dirección / contacto / tax id                │
//	│  BILL TO: nombre / dirección / contacto / tax id             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | Tarifa | Monto                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto (tipo y tarifa) / TOTAL        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTES + PAYMENT TERMS                                       │
//	└─────────────────────────────────────────────────────────────┘
//
// Los colores del tema de la factura tiñen el encabezado, las líneas y el
// total; el logo embebido en el tema se dibuja en la esquina superior.
package pdf

import (
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoice-studio/internal/application/editing"
	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// MarotoRenderer implementa export.DocumentRenderer usando Maroto v2.
type MarotoRenderer struct{}

// NewMarotoRenderer construye el renderizador.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

// RenderPDF genera el documento y devuelve sus bytes.
func (r *MarotoRenderer) RenderPDF(inv entity.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+inv.InvoiceNumber, true).
		WithAuthor(inv.From.Name, true).
		Build()

	m := maroto.New(cfg)
	primary := parseHexColor(inv.Theme.PrimaryColor)
	secondary := parseHexColor(inv.Theme.SecondaryColor)

	m.AddRows(headerRow(inv, primary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: primary, Thickness: 0.5}))
	m.AddRows(partiesRow(inv, primary))
	m.AddRows(line.NewRow(1, props.Line{Color: primary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(secondary))
	for _, tr := range tableItemRows(inv) {
		m.AddRows(tr)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: primary, Thickness: 0.3}))
	m.AddRows(totalsRow(inv, primary))

	if inv.Notes != "" || inv.PaymentTerms != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(footerRows(inv)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: logo + nombre del emisor (izq) e INVOICE + número + fechas (der).
func headerRow(inv entity.Invoice, primary *props.Color) []core.Row {
	left := col.New(7)
	if logo, ext, err := editing.DecodeLogo(inv.Theme.Logo); err == nil {
		left.Add(image.NewFromBytes(logo, logoExtension(ext), props.Rect{
			Percent: logoPercent(inv.Theme.LogoWidthMM),
		}))
	} else {
		left.Add(text.New(inv.From.Name, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: primary, Top: 1,
		}))
	}

	return []core.Row{row.New(20).Add(
		left,
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right,
				Color: primary, Top: 1,
			}),
			text.New(inv.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 8,
			}),
			text.New(fmt.Sprintf("Date: %s   Due: %s",
				inv.Date.Format("2006-01-02"), inv.DueDate.Format("2006-01-02"),
			), props.Text{Size: 8, Align: align.Right, Top: 15, Color: colorGray}),
		),
	)}
}

// partiesRow: emisor y receptor lado a lado.
func partiesRow(inv entity.Invoice, primary *props.Color) core.Row {
	party := func(label string, p entity.Party) core.Col {
		c := col.New(6).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: primary, Top: 1,
			}),
			text.New(nonEmpty(p.Name, "—"), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(nonEmpty(p.Address, "—"), props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s",
				nonEmpty(p.Email, "—"), nonEmpty(p.Phone, "—"),
			), props.Text{Size: 8, Top: 17, Color: colorGray}),
		)
		if p.TaxID != "" {
			c.Add(text.New("Tax ID: "+p.TaxID, props.Text{Size: 8, Top: 22, Color: colorGray}))
		}
		return c
	}
	return row.New(28).Add(
		party("FROM", inv.From),
		party("BILL TO", inv.To),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow(secondary *props.Color) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: secondary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Description", 6, align.Left),
		h("Rate", 2, align.Right),
		h("Amount", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la factura.
func tableItemRows(inv entity.Invoice) []core.Row {
	money := func(d decimal.Decimal) string {
		return inv.Currency.Symbol + d.StringFixed(inv.Currency.DecimalDigits)
	}
	result := make([]core.Row, 0, len(inv.Items))
	for _, it := range inv.Items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				money(it.Rate),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				money(it.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha; el impuesto lleva su
// tipo y tarifa.
func totalsRow(inv entity.Invoice, primary *props.Color) core.Row {
	money := func(d decimal.Decimal) string {
		return inv.Currency.Symbol + d.StringFixed(inv.Currency.DecimalDigits)
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := text.New("TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: primary, Right: 2,
	})
	grandValue := text.New(money(inv.Total), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: primary, Right: 1,
	})

	taxLabel := fmt.Sprintf("%s (%s%%):", nonEmpty(inv.TaxType, "Tax"), inv.TaxRate.String())
	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			label(taxLabel),
			grandLabel,
		),
		col.New(4).Add(
			value(money(inv.Subtotal)),
			value(money(inv.Tax)),
			grandValue,
		),
	)
}

// footerRows: notas y condiciones de pago.
func footerRows(inv entity.Invoice) []core.Row {
	var rows []core.Row
	if inv.Notes != "" {
		rows = append(rows,
			row.New(5).Add(col.New(12).Add(
				text.New("Notes", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
			)),
			row.New(8).Add(col.New(12).Add(
				text.New(inv.Notes, props.Text{Size: 8, Color: colorGray, Top: 1}),
			)),
		)
	}
	if inv.PaymentTerms != "" {
		rows = append(rows,
			row.New(5).Add(col.New(12).Add(
				text.New("Payment Terms", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
			)),
			row.New(8).Add(col.New(12).Add(
				text.New(inv.PaymentTerms, props.Text{Size: 8, Color: colorGray, Top: 1}),
			)),
		)
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// parseHexColor convierte "#rrggbb" en un color de Maroto. Un hex
// malformado cae al negro.
func parseHexColor(hex string) *props.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return &props.Color{}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return &props.Color{}
	}
	return &props.Color{
		Red:   int(v >> 16 & 0xff),
		Green: int(v >> 8 & 0xff),
		Blue:  int(v & 0xff),
	}
}

func logoExtension(format string) extension.Type {
	if format == "png" {
		return extension.Png
	}
	return extension.Jpg
}

// logoPercent traduce el ancho pedido en mm a porcentaje de la columna del
// header (~120 mm útiles en A4 con estos márgenes).
func logoPercent(widthMM int) float64 {
	if widthMM <= 0 {
		widthMM = 60
	}
	pct := float64(widthMM) / 120 * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}
