package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carwash-api/internal/application/dashboard"
	"github.com/jhoicas/carwash-api/internal/domain"
	"github.com/jhoicas/carwash-api/internal/domain/entity"
	"github.com/jhoicas/carwash-api/internal/domain/repository/repofake"
)

func newUseCase() *dashboard.DashboardUseCase {
	now := time.Now()
	users := repofake.NewUserRepo(
		&entity.User{ID: "adm", Role: "admin", Name: "Root"},
		&entity.User{ID: "cust-1", Role: "customer", Name: "Ana"},
		&entity.User{ID: "cust-2", Role: "customer", Name: "Ravi"},
		&entity.User{ID: "w-1", Role: "employee", EmployeeType: "washer", Name: "Wes"},
		&entity.User{ID: "s-1", Role: "employee", EmployeeType: "sales", Name: "Sam"},
	)
	bookings := repofake.NewBookingRepo(
		&entity.Booking{ID: "b1", CustomerID: "cust-1", Status: entity.BookingPending, CreatedAt: now},
		&entity.Booking{ID: "b2", CustomerID: "cust-1", WasherID: "w-1", Status: entity.BookingAssigned, CreatedAt: now},
		&entity.Booking{ID: "b3", CustomerID: "cust-2", WasherID: "w-1", Status: entity.BookingCompleted, CreatedAt: now},
	)
	passes := repofake.NewPassRepo(&entity.PassPlan{ID: "gold", Name: "Gold", Price: decimal.NewFromInt(2000), Active: true})
	_ = passes.CreateCustomerPass(context.Background(), &entity.CustomerPass{
		ID: "cp1", CustomerID: "cust-1", PlanID: "gold", SoldBy: "s-1", RemainingWashes: 10, PurchasedAt: now,
	})
	txs := repofake.NewTransactionRepo(
		&entity.Transaction{ID: "t1", UserID: "cust-1", TotalAmount: decimal.RequireFromString("2360.00"), Status: entity.TransactionSuccess, CreatedAt: now},
		&entity.Transaction{ID: "t2", UserID: "cust-2", TotalAmount: decimal.NewFromInt(590), Status: entity.TransactionFailed, CreatedAt: now},
	)
	return dashboard.NewDashboardUseCase(users, bookings, passes, txs)
}

func TestAdmin_Resumen(t *testing.T) {
	out, err := newUseCase().Admin(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.UsersByRole["customer"])
	assert.Equal(t, 2, out.UsersByRole["employee"])
	assert.Equal(t, 1, out.BookingsByStatus[entity.BookingPending])
	assert.Equal(t, "2360", out.MonthlyRevenue.String(), "solo cuentan pagos exitosos")
	assert.Equal(t, 1, out.MonthlyTxCount)
	assert.Len(t, out.PendingBookings, 1)
	assert.Len(t, out.LatestTransaction, 2)
}

func TestCustomer_Panel(t *testing.T) {
	out, err := newUseCase().Customer(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.Profile.Name)
	assert.Len(t, out.Passes, 1)
	assert.Len(t, out.Bookings, 2)
	assert.Len(t, out.Transactions, 1)
	assert.Len(t, out.Plans, 1)
}

func TestEmployee_SoloAbiertasYConteo(t *testing.T) {
	out, err := newUseCase().Employee(context.Background(), "w-1")
	require.NoError(t, err)
	require.Len(t, out.Assigned, 1)
	assert.Equal(t, "b2", out.Assigned[0].ID)
	assert.Equal(t, 1, out.Done)
}

func TestSales_Panel(t *testing.T) {
	out, err := newUseCase().Sales(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, 1, out.SoldCount)
	assert.Len(t, out.Plans, 1)
}

func TestPerfilInexistente(t *testing.T) {
	_, err := newUseCase().Customer(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
