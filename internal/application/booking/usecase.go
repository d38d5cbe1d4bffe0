// Package booking contiene los casos de uso de reservas de lavado.
package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/carwash-api/internal/application/dto"
	"github.com/jhoicas/carwash-api/internal/domain"
	"github.com/jhoicas/carwash-api/internal/domain/entity"
	"github.com/jhoicas/carwash-api/internal/domain/repository"
	"github.com/jhoicas/carwash-api/internal/domain/role"
)

// Actor identifica a quien ejecuta la operación (tomado del token).
type Actor struct {
	UserID string
	Role   role.Role
}

var serviceTypes = map[string]bool{"exterior": true, "interior": true, "full": true}

// BookingUseCase alta, asignación y cambios de estado de reservas.
type BookingUseCase struct {
	bookingRepo repository.BookingRepository
	passRepo    repository.PassRepository
	userRepo    repository.UserRepository
	txRunner    repository.BookingTxRunner
	now         func() time.Time
}

// NewBookingUseCase construye el caso de uso.
func NewBookingUseCase(
	bookingRepo repository.BookingRepository,
	passRepo repository.PassRepository,
	userRepo repository.UserRepository,
	txRunner repository.BookingTxRunner,
) *BookingUseCase {
	return &BookingUseCase{bookingRepo: bookingRepo, passRepo: passRepo, userRepo: userRepo, txRunner: txRunner, now: time.Now}
}

// Create registra una reserva del cliente. Si indica un pase, se descuenta un lavado
// en la misma transacción que el alta de la reserva.
func (uc *BookingUseCase) Create(ctx context.Context, customerID string, in dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	now := uc.now()
	in.VehicleNumber = strings.ToUpper(strings.TrimSpace(in.VehicleNumber))
	if customerID == "" || in.VehicleNumber == "" || strings.TrimSpace(in.Address) == "" ||
		!serviceTypes[in.ServiceType] || !in.ScheduledAt.After(now) {
		return nil, domain.ErrInvalidInput
	}

	if in.CustomerPassID != "" {
		cp, err := uc.passRepo.GetCustomerPass(ctx, in.CustomerPassID)
		if err != nil {
			return nil, err
		}
		if cp == nil {
			return nil, domain.ErrNotFound
		}
		if cp.CustomerID != customerID {
			return nil, domain.ErrForbidden
		}
		if !cp.Usable(now) {
			return nil, domain.ErrConflict
		}
	}

	b := &entity.Booking{
		ID:             uuid.New().String(),
		CustomerID:     customerID,
		CustomerPassID: in.CustomerPassID,
		VehicleNumber:  in.VehicleNumber,
		VehicleType:    in.VehicleType,
		ServiceType:    in.ServiceType,
		Address:        strings.TrimSpace(in.Address),
		ScheduledAt:    in.ScheduledAt,
		Status:         entity.BookingPending,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := uc.txRunner.RunBooking(ctx, func(passRepo repository.PassRepository, bookingRepo repository.BookingRepository) error {
		if b.CustomerPassID != "" {
			if err := passRepo.ConsumeWash(ctx, b.CustomerPassID, now); err != nil {
				return err
			}
		}
		return bookingRepo.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromBooking(b)
	return &out, nil
}

// ListByCustomer reservas del cliente.
func (uc *BookingUseCase) ListByCustomer(ctx context.Context, customerID string, page dto.PageRequest) ([]dto.BookingResponse, error) {
	page.DefaultPage()
	list, err := uc.bookingRepo.ListByCustomer(ctx, customerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.FromBookings(list), nil
}

// ListAssigned reservas asignadas al washer.
func (uc *BookingUseCase) ListAssigned(ctx context.Context, washerID string, page dto.PageRequest) ([]dto.BookingResponse, error) {
	page.DefaultPage()
	list, err := uc.bookingRepo.ListByWasher(ctx, washerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.FromBookings(list), nil
}

// ListPending reservas sin asignar.
func (uc *BookingUseCase) ListPending(ctx context.Context, page dto.PageRequest) ([]dto.BookingResponse, error) {
	page.DefaultPage()
	list, err := uc.bookingRepo.ListByStatus(ctx, entity.BookingPending, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.FromBookings(list), nil
}

// Assign asigna un washer a una reserva pendiente.
func (uc *BookingUseCase) Assign(ctx context.Context, bookingID, washerID string) (*dto.BookingResponse, error) {
	washer, err := uc.userRepo.GetByID(ctx, washerID)
	if err != nil {
		return nil, err
	}
	if washer == nil {
		return nil, domain.ErrNotFound
	}
	r := role.Parse(washer.Role, washer.EmployeeType)
	if r.Kind != role.KindEmployee || r.Subtype != role.SubtypeWasher || washer.Status != entity.UserStatusActive {
		return nil, domain.ErrInvalidInput
	}

	b, err := uc.get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !entity.CanTransition(b.Status, entity.BookingAssigned) {
		return nil, domain.ErrInvalidTransition
	}
	b.WasherID = washer.ID
	b.Status = entity.BookingAssigned
	b.UpdatedAt = uc.now()
	if err := uc.bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	out := dto.FromBooking(b)
	return &out, nil
}

// UpdateStatus cambia el estado de una reserva.
// Un employee solo puede mover reservas asignadas a él; el personal administrativo, cualquiera.
// El cliente solo puede cancelar las suyas.
func (uc *BookingUseCase) UpdateStatus(ctx context.Context, actor Actor, bookingID, status string) (*dto.BookingResponse, error) {
	b, err := uc.get(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	switch actor.Role.Kind {
	case role.KindAdmin, role.KindSubAdmin, role.KindHR:
	case role.KindEmployee:
		if b.WasherID != actor.UserID {
			return nil, domain.ErrForbidden
		}
	case role.KindCustomer:
		if b.CustomerID != actor.UserID || status != entity.BookingCancelled {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrForbidden
	}

	if status == entity.BookingAssigned {
		// La asignación exige washer: va por Assign.
		return nil, domain.ErrInvalidTransition
	}
	if !entity.CanTransition(b.Status, status) {
		return nil, domain.ErrInvalidTransition
	}
	b.Status = status
	b.UpdatedAt = uc.now()
	if err := uc.bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	out := dto.FromBooking(b)
	return &out, nil
}

func (uc *BookingUseCase) get(ctx context.Context, id string) (*entity.Booking, error) {
	b, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}
