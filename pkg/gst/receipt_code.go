package gst

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CodeParams datos que fija el código de verificación de un recibo.
// Cualquier cambio en montos, fecha o emisor produce un código distinto.
type CodeParams struct {
	TransactionID string
	IssuedAt      time.Time
	Amount        decimal.Decimal
	GST           decimal.Decimal
	Total         decimal.Decimal
	IssuerGSTIN   string
	CustomerID    string
}

// ReceiptCode SHA-384 en hexadecimal (minúsculas) sobre la concatenación en orden fijo:
// ID + fecha UTC (RFC3339) + importe + GST + total + GSTIN emisor + ID cliente.
func ReceiptCode(p CodeParams) (string, error) {
	id := strings.TrimSpace(p.TransactionID)
	if id == "" {
		return "", fmt.Errorf("gst: TransactionID es obligatorio")
	}
	if p.IssuedAt.IsZero() {
		return "", fmt.Errorf("gst: IssuedAt es obligatorio")
	}
	cadena := id +
		p.IssuedAt.UTC().Format(time.RFC3339) +
		formatAmount(p.Amount) +
		formatAmount(p.GST) +
		formatAmount(p.Total) +
		NormalizeGSTIN(p.IssuerGSTIN) +
		strings.TrimSpace(p.CustomerID)

	hash := sha512.Sum384([]byte(cadena))
	return hex.EncodeToString(hash[:]), nil
}

// ShortCode primeros 16 caracteres en mayúsculas, agrupados de a 4 para imprimir.
func ShortCode(code string) string {
	if len(code) > 16 {
		code = code[:16]
	}
	code = strings.ToUpper(code)
	var parts []string
	for len(code) > 4 {
		parts = append(parts, code[:4])
		code = code[4:]
	}
	parts = append(parts, code)
	return strings.Join(parts, "-")
}

// sin separador de miles, punto decimal, 2 decimales
func formatAmount(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}
