package repository

import "context"

// PurchaseTxRunner ejecuta fn dentro de una transacción que abarca pases y pagos.
// Si fn devuelve error se hace rollback de todo.
type PurchaseTxRunner interface {
	RunPurchase(ctx context.Context, fn func(passRepo PassRepository, txRepo TransactionRepository) error) error
}

// BookingTxRunner ejecuta fn dentro de una transacción que abarca pases y reservas.
// Si fn devuelve error se hace rollback de todo.
type BookingTxRunner interface {
	RunBooking(ctx context.Context, fn func(passRepo PassRepository, bookingRepo BookingRepository) error) error
}
