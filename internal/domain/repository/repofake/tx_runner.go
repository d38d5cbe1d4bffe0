package repofake

import (
	"context"
	"sync"

	"github.com/jhoicas/carwash-api/internal/domain/repository"
)

var (
	_ repository.PurchaseTxRunner = (*TxRunner)(nil)
	_ repository.BookingTxRunner  = (*TxRunner)(nil)
)

// TxRunner ejecuta el callback sobre los repos en memoria. Si el callback falla,
// los pases vuelven al estado previo (rollback simulado). Las llamadas se serializan.
type TxRunner struct {
	Passes       *PassRepo
	Transactions *TransactionRepo
	Bookings     *BookingRepo

	mu sync.Mutex
}

func (r *TxRunner) RunPurchase(_ context.Context, fn func(repository.PassRepository, repository.TransactionRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := r.Passes.snapshot()
	if err := fn(r.Passes, r.Transactions); err != nil {
		r.Passes.restore(snap)
		return err
	}
	return nil
}

func (r *TxRunner) RunBooking(_ context.Context, fn func(repository.PassRepository, repository.BookingRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := r.Passes.snapshot()
	if err := fn(r.Passes, r.Bookings); err != nil {
		r.Passes.restore(snap)
		return err
	}
	return nil
}
