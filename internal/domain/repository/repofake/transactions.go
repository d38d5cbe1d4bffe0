package repofake

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carwash-api/internal/domain/entity"
	"github.com/jhoicas/carwash-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo repositorio de transacciones en memoria.
type TransactionRepo struct {
	mu  sync.RWMutex
	txs map[string]*entity.Transaction
}

// NewTransactionRepo crea el repositorio.
func NewTransactionRepo(seed ...*entity.Transaction) *TransactionRepo {
	r := &TransactionRepo{txs: make(map[string]*entity.Transaction)}
	for _, t := range seed {
		r.txs[t.ID] = t
	}
	return r
}

func (r *TransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.txs[t.ID] = &cp
	return nil
}

func (r *TransactionRepo) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.txs[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *TransactionRepo) sorted(keep func(*entity.Transaction) bool) []*entity.Transaction {
	var list []*entity.Transaction
	for _, t := range r.txs {
		if keep(t) {
			cp := *t
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list
}

func (r *TransactionRepo) ListByUser(_ context.Context, userID string, limit, offset int) ([]*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.sorted(func(t *entity.Transaction) bool { return t.UserID == userID }), limit, offset), nil
}

func (r *TransactionRepo) List(_ context.Context, limit, offset int) ([]*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.sorted(func(*entity.Transaction) bool { return true }), limit, offset), nil
}

func (r *TransactionRepo) SumSuccessful(_ context.Context, from, to time.Time) (decimal.Decimal, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := decimal.Zero
	n := 0
	for _, t := range r.txs {
		if t.Status != entity.TransactionSuccess || t.CreatedAt.Before(from) || t.CreatedAt.After(to) {
			continue
		}
		total = total.Add(t.TotalAmount)
		n++
	}
	return total, n, nil
}
