package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionResponse transacción en respuestas y entrada del exportador de recibos.
type TransactionResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	PassID        string          `json:"pass_id,omitempty"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	GST           decimal.Decimal `json:"gst"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}
