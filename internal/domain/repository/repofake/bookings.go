package repofake

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/carwash-api/internal/domain"
	"github.com/jhoicas/carwash-api/internal/domain/entity"
	"github.com/jhoicas/carwash-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo repositorio de reservas en memoria.
// CreateErr, si no es nil, lo devuelve Create sin guardar nada.
type BookingRepo struct {
	mu        sync.RWMutex
	bookings  map[string]*entity.Booking
	CreateErr error
}

// NewBookingRepo crea el repositorio.
func NewBookingRepo(seed ...*entity.Booking) *BookingRepo {
	r := &BookingRepo{bookings: make(map[string]*entity.Booking)}
	for _, b := range seed {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *BookingRepo) Create(_ context.Context, b *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *BookingRepo) GetByID(_ context.Context, id string) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *BookingRepo) Update(_ context.Context, b *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *BookingRepo) filter(keep func(*entity.Booking) bool, limit, offset int) []*entity.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Booking
	for _, b := range r.bookings {
		if keep(b) {
			cp := *b
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ScheduledAt.Before(list[j].ScheduledAt) })
	return page(list, limit, offset)
}

func (r *BookingRepo) ListByCustomer(_ context.Context, customerID string, limit, offset int) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.CustomerID == customerID }, limit, offset), nil
}

func (r *BookingRepo) ListByWasher(_ context.Context, washerID string, limit, offset int) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.WasherID == washerID }, limit, offset), nil
}

func (r *BookingRepo) ListByStatus(_ context.Context, status string, limit, offset int) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.Status == status }, limit, offset), nil
}

func (r *BookingRepo) CountByStatus(_ context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[string]int)
	for _, b := range r.bookings {
		counts[b.Status]++
	}
	return counts, nil
}
