package billing

import (
	"context"

	"github.com/jhoicas/carwash-api/internal/application/dto"
)

// Issuer datos del emisor impresos en el recibo.
type Issuer struct {
	Name    string
	Address string
	GSTIN   string
}

// UserInfo datos del cliente impresos en el recibo.
type UserInfo struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// Receipt todo lo que el renderizador necesita para un recibo.
type Receipt struct {
	Issuer      Issuer
	User        UserInfo
	UserType    string // rol del usuario que solicita el documento
	Transaction dto.TransactionResponse
	Code        string // código de verificación (SHA-384 hex)
}

// ReceiptRenderer genera el PDF de un recibo. Lo implementa infrastructure/pdf.
type ReceiptRenderer interface {
	RenderReceipt(ctx context.Context, r Receipt) ([]byte, error)
}
