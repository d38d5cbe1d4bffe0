package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PassPlanResponse plan del catálogo.
type PassPlanResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Washes       int             `json:"washes"`
	ValidityDays int             `json:"validity_days"`
	Price        decimal.Decimal `json:"price"`
}

// PurchasePassRequest body para POST /api/passes/purchase.
type PurchasePassRequest struct {
	PlanID        string `json:"plan_id"`
	PaymentMethod string `json:"payment_method"`
}

// SellPassRequest body para POST /api/sales/passes (venta asistida).
type SellPassRequest struct {
	CustomerID    string `json:"customer_id"`
	PlanID        string `json:"plan_id"`
	PaymentMethod string `json:"payment_method"`
}

// CustomerPassResponse pase de un cliente.
type CustomerPassResponse struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	PlanID          string    `json:"plan_id"`
	TransactionID   string    `json:"transaction_id"`
	RemainingWashes int       `json:"remaining_washes"`
	SoldBy          string    `json:"sold_by,omitempty"`
	PurchasedAt     time.Time `json:"purchased_at"`
	ExpiresAt       time.Time `json:"expires_at"`
}

// PurchaseResponse resultado de una compra: pase + transacción.
type PurchaseResponse struct {
	Pass        CustomerPassResponse `json:"pass"`
	Transaction TransactionResponse  `json:"transaction"`
}
