package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carwash-api/internal/application/billing"
	"github.com/jhoicas/carwash-api/internal/application/dto"
)

type fakeRenderer struct {
	got   billing.Receipt
	err   error
	panic bool
}

func (f *fakeRenderer) RenderReceipt(_ context.Context, r billing.Receipt) ([]byte, error) {
	if f.panic {
		panic("layout roto")
	}
	f.got = r
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func sampleTx() dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            "tx-42",
		UserID:        "cust-1",
		Amount:        decimal.NewFromInt(1000),
		GST:           decimal.NewFromInt(180),
		TotalAmount:   decimal.NewFromInt(1180),
		Status:        "success",
		PaymentMethod: "upi",
		CreatedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestGenerate_Exito(t *testing.T) {
	r := &fakeRenderer{}
	exp := billing.NewExporter(r, billing.Issuer{Name: "Sparkle Wash", GSTIN: "29ABCDE1234F1Z5"})

	res := exp.Generate(context.Background(), sampleTx(), billing.UserInfo{Name: "Ana"}, "customer")

	require.True(t, res.Success, res.Error)
	assert.Equal(t, "invoice_tx-42.pdf", res.Filename)
	assert.NotEmpty(t, res.Data)
	assert.Empty(t, res.Error)
	assert.Equal(t, "Sparkle Wash", r.got.Issuer.Name)
	assert.Equal(t, "Ana", r.got.User.Name)
	assert.Equal(t, "customer", r.got.UserType)
	assert.Len(t, r.got.Code, 96, "SHA-384 en hexadecimal")
}

func TestView_SinNombreDeArchivo(t *testing.T) {
	exp := billing.NewExporter(&fakeRenderer{}, billing.Issuer{})
	res := exp.View(context.Background(), sampleTx(), billing.UserInfo{}, "admin")
	require.True(t, res.Success)
	assert.Empty(t, res.Filename)
	assert.NotEmpty(t, res.Data)
}

func TestGenerate_TransaccionIncompleta(t *testing.T) {
	exp := billing.NewExporter(&fakeRenderer{}, billing.Issuer{})
	tx := sampleTx()
	tx.PaymentMethod = ""
	tx.CreatedAt = time.Time{}

	res := exp.Generate(context.Background(), tx, billing.UserInfo{}, "customer")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "payment_method")
	assert.Contains(t, res.Error, "created_at")
	assert.Nil(t, res.Data)
}

func TestGenerate_ErrorDelRenderizador(t *testing.T) {
	exp := billing.NewExporter(&fakeRenderer{err: errors.New("sin fuentes")}, billing.Issuer{})
	res := exp.Generate(context.Background(), sampleTx(), billing.UserInfo{}, "customer")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "sin fuentes")
}

func TestView_PanicSeReportaComoError(t *testing.T) {
	exp := billing.NewExporter(&fakeRenderer{panic: true}, billing.Issuer{})
	var res billing.Result
	assert.NotPanics(t, func() {
		res = exp.View(context.Background(), sampleTx(), billing.UserInfo{}, "customer")
	})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "layout roto")
}

func TestValidateTransaction_MontosNegativos(t *testing.T) {
	tx := sampleTx()
	tx.GST = decimal.NewFromInt(-1)
	assert.Error(t, billing.ValidateTransaction(tx))
}
