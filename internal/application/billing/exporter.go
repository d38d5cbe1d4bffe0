package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/carwash-api/internal/application/dto"
	"github.com/jhoicas/carwash-api/pkg/gst"
)

// Result resultado de exportar un recibo. Los fallos se reportan en Error, nunca como panic.
type Result struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename,omitempty"`
	Error    string `json:"error,omitempty"`
	Data     []byte `json:"-"`
}

// Exporter convierte una transacción en un PDF descargable (Generate) o visualizable (View).
type Exporter struct {
	renderer ReceiptRenderer
	issuer   Issuer
}

// NewExporter construye el exportador.
func NewExporter(renderer ReceiptRenderer, issuer Issuer) *Exporter {
	return &Exporter{renderer: renderer, issuer: issuer}
}

// Generate produce el PDF como adjunto con nombre de archivo.
func (e *Exporter) Generate(ctx context.Context, tx dto.TransactionResponse, user UserInfo, userType string) Result {
	data, err := e.render(ctx, tx, user, userType)
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	return Result{Success: true, Filename: Filename(tx), Data: data}
}

// View produce el PDF para abrirse en línea.
func (e *Exporter) View(ctx context.Context, tx dto.TransactionResponse, user UserInfo, userType string) Result {
	data, err := e.render(ctx, tx, user, userType)
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	return Result{Success: true, Data: data}
}

// Filename nombre del archivo descargado.
func Filename(tx dto.TransactionResponse) string {
	return fmt.Sprintf("invoice_%s.pdf", tx.ID)
}

func (e *Exporter) render(ctx context.Context, tx dto.TransactionResponse, user UserInfo, userType string) (data []byte, err error) {
	if err := ValidateTransaction(tx); err != nil {
		return nil, err
	}
	if e.renderer == nil {
		return nil, errors.New("invoice: renderizador no configurado")
	}
	code, err := gst.ReceiptCode(gst.CodeParams{
		TransactionID: tx.ID,
		IssuedAt:      tx.CreatedAt,
		Amount:        tx.Amount,
		GST:           tx.GST,
		Total:         tx.TotalAmount,
		IssuerGSTIN:   e.issuer.GSTIN,
		CustomerID:    tx.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("invoice: código de verificación: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("invoice: fallo al renderizar: %v", r)
		}
	}()
	data, err = e.renderer.RenderReceipt(ctx, Receipt{
		Issuer:      e.issuer,
		User:        user,
		UserType:    userType,
		Transaction: tx,
		Code:        code,
	})
	if err != nil {
		return nil, fmt.Errorf("invoice: generar PDF: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("invoice: documento vacío")
	}
	return data, nil
}

// ValidateTransaction comprueba los campos mínimos del recibo.
func ValidateTransaction(tx dto.TransactionResponse) error {
	var missing []string
	if tx.ID == "" {
		missing = append(missing, "id")
	}
	if tx.Status == "" {
		missing = append(missing, "status")
	}
	if tx.PaymentMethod == "" {
		missing = append(missing, "payment_method")
	}
	if tx.CreatedAt.IsZero() {
		missing = append(missing, "created_at")
	}
	if len(missing) > 0 {
		return fmt.Errorf("invoice: transacción incompleta, faltan %v", missing)
	}
	if tx.Amount.IsNegative() || tx.GST.IsNegative() || tx.TotalAmount.IsNegative() {
		return errors.New("invoice: montos negativos")
	}
	return nil
}
