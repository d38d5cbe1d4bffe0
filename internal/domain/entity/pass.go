package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PassPlan plan de lavados prepagados ofrecido en el catálogo.
type PassPlan struct {
	ID           string
	Name         string
	Description  string
	Washes       int
	ValidityDays int
	Price        decimal.Decimal // sin GST
	Active       bool
	CreatedAt    time.Time
}

// CustomerPass pase comprado por un cliente.
type CustomerPass struct {
	ID              string
	CustomerID      string
	PlanID          string
	TransactionID   string
	RemainingWashes int
	SoldBy          string // ID del empleado de ventas; vacío si lo compró el cliente
	PurchasedAt     time.Time
	ExpiresAt       time.Time
}

// Usable informa si al pase le quedan lavados y no ha vencido.
func (p *CustomerPass) Usable(now time.Time) bool {
	return p.RemainingWashes > 0 && now.Before(p.ExpiresAt)
}
