package repository

import (
	"context"

	"github.com/jhoicas/carwash-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, roleFilter string, limit, offset int) ([]*entity.User, error)
	CountByRole(ctx context.Context) (map[string]int, error)
}
