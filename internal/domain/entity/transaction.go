package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago.
const (
	TransactionSuccess = "success"
	TransactionPending = "pending"
	TransactionFailed  = "failed"
)

// Medios de pago aceptados.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentUPI  = "upi"
)

// Transaction pago registrado (compra de pase). Es la entrada del recibo PDF.
type Transaction struct {
	ID            string
	UserID        string
	PassID        string // CustomerPass asociado
	Description   string
	Amount        decimal.Decimal // base imponible
	GST           decimal.Decimal
	TotalAmount   decimal.Decimal
	Status        string
	PaymentMethod string
	CreatedAt     time.Time
}

// ValidPaymentMethod informa si el medio de pago es aceptado.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI:
		return true
	}
	return false
}
