package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carwash-api/internal/application/billing"
	"github.com/jhoicas/carwash-api/internal/application/dto"
	"github.com/jhoicas/carwash-api/internal/domain"
	"github.com/jhoicas/carwash-api/internal/domain/entity"
	"github.com/jhoicas/carwash-api/internal/domain/repository/repofake"
	"github.com/jhoicas/carwash-api/internal/domain/role"
)

func newTxUseCase(r billing.ReceiptRenderer) *billing.TransactionUseCase {
	txs := repofake.NewTransactionRepo(&entity.Transaction{
		ID: "tx-1", UserID: "cust-1",
		Amount: decimal.NewFromInt(500), GST: decimal.NewFromInt(90), TotalAmount: decimal.NewFromInt(590),
		Status: entity.TransactionSuccess, PaymentMethod: entity.PaymentCash,
		CreatedAt: time.Now().Add(-time.Hour),
	})
	users := repofake.NewUserRepo(&entity.User{ID: "cust-1", Name: "Ravi", Email: "ravi@example.com", Role: "customer"})
	return billing.NewTransactionUseCase(txs, users, billing.NewExporter(r, billing.Issuer{Name: "Sparkle Wash"}))
}

func TestInvoice_PropietarioDescarga(t *testing.T) {
	r := &fakeRenderer{}
	uc := newTxUseCase(r)

	res, err := uc.Invoice(context.Background(), "cust-1", role.Parse("customer", ""), "tx-1", billing.ModeDownload)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "invoice_tx-1.pdf", res.Filename)
	assert.Equal(t, "Ravi", r.got.User.Name)
}

func TestInvoice_AdminVeCualquiera(t *testing.T) {
	uc := newTxUseCase(&fakeRenderer{})
	res, err := uc.Invoice(context.Background(), "adm", role.Parse("hr", ""), "tx-1", billing.ModeView)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, res.Filename)
}

func TestInvoice_Ajeno(t *testing.T) {
	uc := newTxUseCase(&fakeRenderer{})
	_, err := uc.Invoice(context.Background(), "cust-2", role.Parse("customer", ""), "tx-1", billing.ModeDownload)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Invoice(context.Background(), "cust-1", role.Parse("customer", ""), "missing", billing.ModeDownload)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListMine(t *testing.T) {
	uc := newTxUseCase(&fakeRenderer{})
	list, err := uc.ListMine(context.Background(), "cust-1", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "590", list[0].TotalAmount.String())

	all, err := uc.ListAll(context.Background(), dto.PageRequest{Limit: 500})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
