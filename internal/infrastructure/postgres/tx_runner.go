package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/carwash-api/internal/domain/repository"
)

var (
	_ repository.PurchaseTxRunner = (*TxRunner)(nil)
	_ repository.BookingTxRunner  = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPurchase inicia una transacción, ejecuta fn con repos de pases y pagos atados a la tx
// y hace Commit o Rollback.
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	passRepo repository.PassRepository,
	txRepo repository.TransactionRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewPassRepository(tx), NewTransactionRepository(tx))
	})
}

// RunBooking igual que RunPurchase, con repos de pases y reservas.
func (r *TxRunner) RunBooking(ctx context.Context, fn func(
	passRepo repository.PassRepository,
	bookingRepo repository.BookingRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewPassRepository(tx), NewBookingRepository(tx))
	})
}

func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
