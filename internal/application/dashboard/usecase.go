// Package dashboard arma los resúmenes que cada rol ve al entrar a su panel.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carwash-api/internal/application/dto"
	"github.com/jhoicas/carwash-api/internal/domain"
	"github.com/jhoicas/carwash-api/internal/domain/entity"
	"github.com/jhoicas/carwash-api/internal/domain/repository"
)

const widgetSize = 10 // filas por listado en los widgets

// DashboardUseCase consultas read-only para los paneles por rol.
type DashboardUseCase struct {
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	passRepo    repository.PassRepository
	txRepo      repository.TransactionRepository
	now         func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	passRepo repository.PassRepository,
	txRepo repository.TransactionRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		userRepo: userRepo, bookingRepo: bookingRepo, passRepo: passRepo, txRepo: txRepo,
		now: time.Now,
	}
}

// Admin resumen para admin, sub-admin y hr.
//
// Cuatro consultas en paralelo:
//  1. CountByRole            → UsersByRole
//  2. CountByStatus          → BookingsByStatus
//  3. SumSuccessful(mes)     → MonthlyRevenue + MonthlyTxCount
//  4. pendientes + últimas transacciones
func (uc *DashboardUseCase) Admin(ctx context.Context) (*dto.AdminDashboardDTO, error) {
	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type countsResult struct {
		counts map[string]int
		err    error
	}
	type revenueResult struct {
		total decimal.Decimal
		n     int
		err   error
	}
	type listsResult struct {
		pending []*entity.Booking
		latest  []*entity.Transaction
		err     error
	}

	usersCh := make(chan countsResult, 1)
	bookingsCh := make(chan countsResult, 1)
	revenueCh := make(chan revenueResult, 1)
	listsCh := make(chan listsResult, 1)

	go func() {
		c, err := uc.userRepo.CountByRole(ctx)
		usersCh <- countsResult{c, err}
	}()
	go func() {
		c, err := uc.bookingRepo.CountByStatus(ctx)
		bookingsCh <- countsResult{c, err}
	}()
	go func() {
		total, n, err := uc.txRepo.SumSuccessful(ctx, monthStart, now)
		revenueCh <- revenueResult{total, n, err}
	}()
	go func() {
		pending, err := uc.bookingRepo.ListByStatus(ctx, entity.BookingPending, widgetSize, 0)
		if err != nil {
			listsCh <- listsResult{err: err}
			return
		}
		latest, err := uc.txRepo.List(ctx, widgetSize, 0)
		listsCh <- listsResult{pending, latest, err}
	}()

	users := <-usersCh
	bookings := <-bookingsCh
	revenue := <-revenueCh
	lists := <-listsCh

	if users.err != nil {
		return nil, fmt.Errorf("dashboard: usuarios por rol: %w", users.err)
	}
	if bookings.err != nil {
		return nil, fmt.Errorf("dashboard: reservas por estado: %w", bookings.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos del mes: %w", revenue.err)
	}
	if lists.err != nil {
		return nil, fmt.Errorf("dashboard: listados: %w", lists.err)
	}

	return &dto.AdminDashboardDTO{
		UsersByRole:       nonNil(users.counts),
		BookingsByStatus:  nonNil(bookings.counts),
		MonthlyRevenue:    revenue.total.Round(2),
		MonthlyTxCount:    revenue.n,
		PendingBookings:   dto.FromBookings(lists.pending),
		LatestTransaction: dto.FromTransactions(lists.latest),
	}, nil
}

// Customer panel del cliente: pases, reservas, pagos y planes a la venta.
func (uc *DashboardUseCase) Customer(ctx context.Context, userID string) (*dto.CustomerDashboardDTO, error) {
	profile, err := uc.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	passes, err := uc.passRepo.ListByCustomer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: pases: %w", err)
	}
	bookings, err := uc.bookingRepo.ListByCustomer(ctx, userID, widgetSize, 0)
	if err != nil {
		return nil, fmt.Errorf("dashboard: reservas: %w", err)
	}
	txs, err := uc.txRepo.ListByUser(ctx, userID, widgetSize, 0)
	if err != nil {
		return nil, fmt.Errorf("dashboard: transacciones: %w", err)
	}
	plans, err := uc.passRepo.ListPlans(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("dashboard: planes: %w", err)
	}
	return &dto.CustomerDashboardDTO{
		Profile:      *profile,
		Passes:       dto.FromCustomerPasses(passes),
		Bookings:     dto.FromBookings(bookings),
		Transactions: dto.FromTransactions(txs),
		Plans:        dto.FromPlans(plans),
	}, nil
}

// Employee panel del employee genérico y del washer: trabajo asignado.
func (uc *DashboardUseCase) Employee(ctx context.Context, userID string) (*dto.EmployeeDashboardDTO, error) {
	profile, err := uc.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Se listan hasta 100 para contar los completados sin otra consulta.
	all, err := uc.bookingRepo.ListByWasher(ctx, userID, 100, 0)
	if err != nil {
		return nil, fmt.Errorf("dashboard: reservas asignadas: %w", err)
	}
	var open []*entity.Booking
	done := 0
	for _, b := range all {
		switch b.Status {
		case entity.BookingCompleted:
			done++
		case entity.BookingAssigned, entity.BookingInProgress:
			open = append(open, b)
		}
	}
	return &dto.EmployeeDashboardDTO{
		Profile:  *profile,
		Assigned: dto.FromBookings(open),
		Done:     done,
	}, nil
}

// Sales panel de ventas: planes y pases vendidos por el usuario.
func (uc *DashboardUseCase) Sales(ctx context.Context, userID string) (*dto.SalesDashboardDTO, error) {
	profile, err := uc.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	plans, err := uc.passRepo.ListPlans(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("dashboard: planes: %w", err)
	}
	sold, err := uc.passRepo.ListSoldBy(ctx, userID, widgetSize, 0)
	if err != nil {
		return nil, fmt.Errorf("dashboard: pases vendidos: %w", err)
	}
	return &dto.SalesDashboardDTO{
		Profile:    *profile,
		Plans:      dto.FromPlans(plans),
		SoldPasses: dto.FromCustomerPasses(sold),
		SoldCount:  len(sold),
	}, nil
}

func (uc *DashboardUseCase) profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: perfil: %w", err)
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.FromUser(u)
	return &out, nil
}

func nonNil(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}
