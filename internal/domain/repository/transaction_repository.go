package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carwash-api/internal/domain/entity"
)

// TransactionRepository puerto de persistencia para pagos.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Transaction, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Transaction, error)
	// SumSuccessful suma TotalAmount de las transacciones exitosas en [from, to].
	SumSuccessful(ctx context.Context, from, to time.Time) (decimal.Decimal, int, error)
}
