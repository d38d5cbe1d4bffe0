package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carwash-api/internal/domain/entity"
	"github.com/jhoicas/carwash-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, user_id, COALESCE(pass_id::text, ''), COALESCE(description, ''),
	amount, gst, total_amount, status, payment_method, created_at`

// TransactionRepo pagos registrados (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, pass_id, description, amount, gst, total_amount, status, payment_method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.UserID, nullIfEmpty(t.PassID), nullIfEmpty(t.Description),
		t.Amount, t.GST, t.TotalAmount, t.Status, t.PaymentMethod, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción; (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	t, err := scanTransaction(r.q.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// ListByUser pagos de un usuario, los más recientes primero.
func (r *TransactionRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Transaction, error) {
	return r.list(ctx, `WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
}

// List todos los pagos, los más recientes primero.
func (r *TransactionRepo) List(ctx context.Context, limit, offset int) ([]*entity.Transaction, error) {
	return r.list(ctx, `ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
}

// SumSuccessful suma total_amount de pagos exitosos en [from, to] y devuelve la cantidad.
func (r *TransactionRepo) SumSuccessful(ctx context.Context, from, to time.Time) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM transactions
		WHERE status = $1 AND created_at BETWEEN $2 AND $3`
	var total decimal.Decimal
	var n int
	if err := r.q.QueryRow(ctx, query, entity.TransactionSuccess, from, to).Scan(&total, &n); err != nil {
		return decimal.Zero, 0, fmt.Errorf("sum transactions: %w", err)
	}
	return total, n, nil
}

func (r *TransactionRepo) list(ctx context.Context, tail string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(ctx, `SELECT `+transactionColumns+` FROM transactions `+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(
		&t.ID, &t.UserID, &t.PassID, &t.Description,
		&t.Amount, &t.GST, &t.TotalAmount, &t.Status, &t.PaymentMethod, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
