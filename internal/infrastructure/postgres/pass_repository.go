package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/carwash-api/internal/domain"
	"github.com/jhoicas/carwash-api/internal/domain/entity"
	"github.com/jhoicas/carwash-api/internal/domain/repository"
)

var _ repository.PassRepository = (*PassRepo)(nil)

const (
	planColumns = `id, name, COALESCE(description, ''), washes, validity_days, price, active, created_at`
	passColumns = `id, customer_id, plan_id, COALESCE(transaction_id::text, ''), remaining_washes,
		COALESCE(sold_by::text, ''), purchased_at, expires_at`
)

// PassRepo planes y pases de clientes (usable con pool o tx).
type PassRepo struct {
	q Querier
}

// NewPassRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPassRepository(q Querier) *PassRepo {
	return &PassRepo{q: q}
}

// ── Planes ────────────────────────────────────────────────────────────────────

// ListPlans lista planes ordenados por precio.
func (r *PassRepo) ListPlans(ctx context.Context, onlyActive bool) ([]*entity.PassPlan, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+planColumns+`
		FROM pass_plans
		WHERE (NOT $1 OR active)
		ORDER BY price ASC`, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var list []*entity.PassPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetPlan obtiene un plan; (nil, nil) si no existe.
func (r *PassRepo) GetPlan(ctx context.Context, id string) (*entity.PassPlan, error) {
	p, err := scanPlan(r.q.QueryRow(ctx, `SELECT `+planColumns+` FROM pass_plans WHERE id = $1`, id))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return p, nil
}

// ── Pases de clientes ─────────────────────────────────────────────────────────

// CreateCustomerPass persiste un pase comprado.
func (r *PassRepo) CreateCustomerPass(ctx context.Context, p *entity.CustomerPass) error {
	query := `
		INSERT INTO customer_passes (id, customer_id, plan_id, transaction_id, remaining_washes, sold_by, purchased_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CustomerID, p.PlanID, nullIfEmpty(p.TransactionID), p.RemainingWashes,
		nullIfEmpty(p.SoldBy), p.PurchasedAt, p.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer pass: %w", err)
	}
	return nil
}

// GetCustomerPass obtiene un pase; (nil, nil) si no existe.
func (r *PassRepo) GetCustomerPass(ctx context.Context, id string) (*entity.CustomerPass, error) {
	p, err := scanPass(r.q.QueryRow(ctx, `SELECT `+passColumns+` FROM customer_passes WHERE id = $1`, id))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer pass: %w", err)
	}
	return p, nil
}

// ConsumeWash descuenta un lavado en una sola sentencia; dos reservas concurrentes
// no pueden gastar el mismo lavado.
func (r *PassRepo) ConsumeWash(ctx context.Context, id string, now time.Time) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE customer_passes
		SET remaining_washes = remaining_washes - 1
		WHERE id = $1 AND remaining_washes > 0 AND expires_at > $2`,
		id, now,
	)
	if err != nil {
		return fmt.Errorf("consume wash: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customer_passes WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("consume wash: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

// ListByCustomer pases de un cliente, los más recientes primero.
func (r *PassRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.CustomerPass, error) {
	return r.listPasses(ctx, `WHERE customer_id = $1 ORDER BY purchased_at DESC`, customerID)
}

// ListSoldBy pases vendidos por un empleado de ventas.
func (r *PassRepo) ListSoldBy(ctx context.Context, sellerID string, limit, offset int) ([]*entity.CustomerPass, error) {
	return r.listPasses(ctx, `WHERE sold_by = $1 ORDER BY purchased_at DESC LIMIT $2 OFFSET $3`, sellerID, limit, offset)
}

func (r *PassRepo) listPasses(ctx context.Context, where string, args ...any) ([]*entity.CustomerPass, error) {
	rows, err := r.q.Query(ctx, `SELECT `+passColumns+` FROM customer_passes `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("list customer passes: %w", err)
	}
	defer rows.Close()

	var list []*entity.CustomerPass
	for rows.Next() {
		p, err := scanPass(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer pass: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPlan(row pgx.Row) (*entity.PassPlan, error) {
	var p entity.PassPlan
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Washes, &p.ValidityDays, &p.Price, &p.Active, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPass(row pgx.Row) (*entity.CustomerPass, error) {
	var p entity.CustomerPass
	err := row.Scan(&p.ID, &p.CustomerID, &p.PlanID, &p.TransactionID, &p.RemainingWashes, &p.SoldBy, &p.PurchasedAt, &p.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
