// Package pdf genera el recibo PDF de una transacción de pago.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + GSTIN     │  N° Recibo + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: Dirección                                          │
//	│  CLIENTE: Nombre + email + teléfono                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Descripción | Importe                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Importe / GST / TOTAL                             │
//	│  PAGO: Método + Estado       │  QR con ID + código           │
//	│  PIE: Código de verificación                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carwash-api/internal/application/billing"
	"github.com/jhoicas/carwash-api/pkg/gst"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 112, Blue: 160}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorOK      = &props.Color{Red: 20, Green: 130, Blue: 60}
	colorWarn    = &props.Color{Red: 200, Green: 60, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ billing.ReceiptRenderer = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa billing.ReceiptRenderer usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// RenderReceipt genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) RenderReceipt(ctx context.Context, r billing.Receipt) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo "+r.Transaction.ID, true).
		WithAuthor(nonEmpty(r.Issuer.Name, "Car Wash"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(issuerRow(r.Issuer))
	m.AddRows(customerRow(r.User))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(detailRow(r))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(r))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(paymentRow(r))
	m.AddRows(footerRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + GSTIN (izq) y N° recibo + fecha (der).
func headerRow(r billing.Receipt) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(r.Issuer.Name, "Car Wash"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("GSTIN: "+nonEmpty(r.Issuer.GSTIN, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PAYMENT RECEIPT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(receiptNumber(r.Transaction.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+r.Transaction.CreatedAt.Format("02 Jan 2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func issuerRow(issuer billing.Issuer) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ISSUED BY", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Address: "+nonEmpty(issuer.Address, "-"), props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
	)
}

func customerRow(user billing.UserInfo) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILLED TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(user.Name, "Customer"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Phone: %s",
				nonEmpty(user.Email, "-"),
				nonEmpty(user.Phone, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	}
	return row.New(8).Add(
		h("Description", 9, align.Left),
		h("Amount", 3, align.Right),
	)
}

func detailRow(r billing.Receipt) core.Row {
	desc := r.Transaction.Description
	if desc == "" {
		desc = "Car wash services"
	}
	return row.New(8).Add(
		col.New(9).Add(text.New(desc, props.Text{Size: 8, Top: 2, Left: 1})),
		col.New(3).Add(text.New(formatMoney(r.Transaction.Amount), props.Text{
			Size: 8, Align: align.Right, Top: 2, Right: 1,
		})),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(r billing.Receipt) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	tx := r.Transaction
	gstLabel := "GST:"
	if !tx.Amount.IsZero() {
		rate := tx.GST.Div(tx.Amount).Mul(decimal.NewFromInt(100)).Round(0)
		gstLabel = "GST (" + rate.String() + "%):"
	}

	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Amount:"),
			text.New(gstLabel, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6}),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 13,
			}),
		),
		col.New(3).Add(
			value(formatMoney(tx.Amount), 0),
			value(formatMoney(tx.GST), 6),
			text.New(formatMoney(tx.TotalAmount), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 13,
			}),
		),
	)
}

// paymentRow: método y estado del pago, con QR del ID de transacción y su código.
func paymentRow(r billing.Receipt) core.Row {
	tx := r.Transaction
	statusColor := colorWarn
	if tx.Status == "success" {
		statusColor = colorOK
	}
	return row.New(40).Add(
		col.New(8).Add(
			text.New("PAYMENT", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
			text.New("Method: "+strings.ToUpper(tx.PaymentMethod), props.Text{Size: 9, Top: 9}),
			text.New("Status: "+strings.ToUpper(tx.Status), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 15, Color: statusColor,
			}),
			text.New("Transaction ID: "+tx.ID, props.Text{Size: 7, Top: 22, Color: colorGray}),
		),
		col.New(4).Add(code.NewQr(tx.ID+"|"+r.Code, props.Rect{Percent: 90, Center: true})),
	)
}

func footerRow(r billing.Receipt) core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New("Verification code: "+nonEmpty(gst.ShortCode(r.Code), "-"), props.Text{
			Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1, Align: align.Center,
		}),
		text.New("This is a computer generated receipt and does not require a signature.", props.Text{
			Size: 6.5, Color: colorGray, Top: 7, Align: align.Center,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func receiptNumber(id string) string {
	short := strings.ReplaceAll(id, "-", "")
	if len(short) > 10 {
		short = short[:10]
	}
	return "RCPT-" + strings.ToUpper(short)
}

// formatMoney formatea con separador de miles y dos decimales.
// Ej: 1180 → "Rs. 1,180.00"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return "Rs. " + sign + string(buf) + frac
}
