package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/carwash-api/internal/domain"
	"github.com/jhoicas/carwash-api/internal/domain/entity"
	"github.com/jhoicas/carwash-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

const bookingColumns = `id, customer_id, COALESCE(washer_id::text, ''), COALESCE(customer_pass_id::text, ''),
	vehicle_number, vehicle_type, service_type, address, scheduled_at, status, COALESCE(notes, ''),
	created_at, updated_at`

// BookingRepo implementación de BookingRepository (usable con pool o tx).
type BookingRepo struct {
	q Querier
}

// NewBookingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBookingRepository(q Querier) *BookingRepo {
	return &BookingRepo{q: q}
}

// Create persiste una reserva.
func (r *BookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, customer_id, washer_id, customer_pass_id, vehicle_number, vehicle_type,
		                      service_type, address, scheduled_at, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.CustomerID, nullIfEmpty(b.WasherID), nullIfEmpty(b.CustomerPassID),
		b.VehicleNumber, b.VehicleType, b.ServiceType, b.Address, b.ScheduledAt,
		b.Status, nullIfEmpty(b.Notes), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva; (nil, nil) si no existe.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	b, err := scanBooking(r.q.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// Update actualiza asignación, estado y notas.
func (r *BookingRepo) Update(ctx context.Context, b *entity.Booking) error {
	query := `
		UPDATE bookings
		SET washer_id = $2, status = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, b.ID, nullIfEmpty(b.WasherID), b.Status, nullIfEmpty(b.Notes), b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCustomer reservas de un cliente, las más recientes primero.
func (r *BookingRepo) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.Booking, error) {
	return r.list(ctx, `WHERE customer_id = $1 ORDER BY scheduled_at DESC LIMIT $2 OFFSET $3`, customerID, limit, offset)
}

// ListByWasher reservas asignadas a un washer, las próximas primero.
func (r *BookingRepo) ListByWasher(ctx context.Context, washerID string, limit, offset int) ([]*entity.Booking, error) {
	return r.list(ctx, `WHERE washer_id = $1 ORDER BY scheduled_at ASC LIMIT $2 OFFSET $3`, washerID, limit, offset)
}

// ListByStatus reservas en un estado, las próximas primero.
func (r *BookingRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.Booking, error) {
	return r.list(ctx, `WHERE status = $1 ORDER BY scheduled_at ASC LIMIT $2 OFFSET $3`, status, limit, offset)
}

// CountByStatus cuenta reservas por estado.
func (r *BookingRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count bookings by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (r *BookingRepo) list(ctx context.Context, where string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.q.Query(ctx, `SELECT `+bookingColumns+` FROM bookings `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var list []*entity.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID, &b.CustomerID, &b.WasherID, &b.CustomerPassID,
		&b.VehicleNumber, &b.VehicleType, &b.ServiceType, &b.Address, &b.ScheduledAt,
		&b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
