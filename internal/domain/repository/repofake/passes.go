package repofake

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/carwash-api/internal/domain"
	"github.com/jhoicas/carwash-api/internal/domain/entity"
	"github.com/jhoicas/carwash-api/internal/domain/repository"
)

var _ repository.PassRepository = (*PassRepo)(nil)

// PassRepo repositorio de planes y pases en memoria.
type PassRepo struct {
	mu     sync.RWMutex
	plans  map[string]*entity.PassPlan
	passes map[string]*entity.CustomerPass
}

// NewPassRepo crea el repositorio con el catálogo indicado.
func NewPassRepo(plans ...*entity.PassPlan) *PassRepo {
	r := &PassRepo{
		plans:  make(map[string]*entity.PassPlan),
		passes: make(map[string]*entity.CustomerPass),
	}
	for _, p := range plans {
		r.plans[p.ID] = p
	}
	return r
}

func (r *PassRepo) ListPlans(_ context.Context, onlyActive bool) ([]*entity.PassPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.PassPlan
	for _, p := range r.plans {
		if !onlyActive || p.Active {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Price.LessThan(list[j].Price) })
	return list, nil
}

func (r *PassRepo) GetPlan(_ context.Context, id string) (*entity.PassPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *PassRepo) CreateCustomerPass(_ context.Context, p *entity.CustomerPass) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.passes[p.ID] = &cp
	return nil
}

func (r *PassRepo) GetCustomerPass(_ context.Context, id string) (*entity.CustomerPass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.passes[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *PassRepo) ConsumeWash(_ context.Context, id string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.passes[id]
	if !ok {
		return domain.ErrNotFound
	}
	if !p.Usable(now) {
		return domain.ErrConflict
	}
	p.RemainingWashes--
	return nil
}

func (r *PassRepo) snapshot() map[string]entity.CustomerPass {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]entity.CustomerPass, len(r.passes))
	for id, p := range r.passes {
		out[id] = *p
	}
	return out
}

func (r *PassRepo) restore(snap map[string]entity.CustomerPass) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.passes = make(map[string]*entity.CustomerPass, len(snap))
	for id, p := range snap {
		cp := p
		r.passes[id] = &cp
	}
}

func (r *PassRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.CustomerPass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.CustomerPass
	for _, p := range r.passes {
		if p.CustomerID == customerID {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].PurchasedAt.After(list[j].PurchasedAt) })
	return list, nil
}

func (r *PassRepo) ListSoldBy(_ context.Context, sellerID string, limit, offset int) ([]*entity.CustomerPass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.CustomerPass
	for _, p := range r.passes {
		if p.SoldBy == sellerID {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].PurchasedAt.After(list[j].PurchasedAt) })
	return page(list, limit, offset), nil
}
