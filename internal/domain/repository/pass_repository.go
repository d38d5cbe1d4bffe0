package repository

import (
	"context"
	"time"

	"github.com/jhoicas/carwash-api/internal/domain/entity"
)

// PassRepository puerto de persistencia para planes y pases de clientes.
type PassRepository interface {
	ListPlans(ctx context.Context, onlyActive bool) ([]*entity.PassPlan, error)
	GetPlan(ctx context.Context, id string) (*entity.PassPlan, error)
	CreateCustomerPass(ctx context.Context, p *entity.CustomerPass) error
	GetCustomerPass(ctx context.Context, id string) (*entity.CustomerPass, error)
	// ConsumeWash descuenta un lavado de forma atómica. Devuelve domain.ErrConflict
	// si el pase está agotado o vencido en now, y domain.ErrNotFound si no existe.
	ConsumeWash(ctx context.Context, id string, now time.Time) error
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.CustomerPass, error)
	ListSoldBy(ctx context.Context, sellerID string, limit, offset int) ([]*entity.CustomerPass, error)
}
