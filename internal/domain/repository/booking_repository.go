package repository

import (
	"context"

	"github.com/jhoicas/carwash-api/internal/domain/entity"
)

// BookingRepository puerto de persistencia para reservas.
type BookingRepository interface {
	Create(ctx context.Context, b *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	Update(ctx context.Context, b *entity.Booking) error
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.Booking, error)
	ListByWasher(ctx context.Context, washerID string, limit, offset int) ([]*entity.Booking, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.Booking, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}
