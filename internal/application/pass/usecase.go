// Package pass contiene los casos de uso del catálogo de pases de lavado y su compra.
package pass

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carwash-api/internal/application/dto"
	"github.com/jhoicas/carwash-api/internal/domain"
	"github.com/jhoicas/carwash-api/internal/domain/entity"
	"github.com/jhoicas/carwash-api/internal/domain/repository"
	"github.com/jhoicas/carwash-api/internal/domain/role"
)

// PassUseCase compra, venta asistida y consulta de pases.
type PassUseCase struct {
	passRepo repository.PassRepository
	userRepo repository.UserRepository
	txRunner repository.PurchaseTxRunner
	gstRate  decimal.Decimal
	now      func() time.Time
}

// NewPassUseCase construye el caso de uso. gstRate es la fracción (0.18 = 18%).
func NewPassUseCase(
	passRepo repository.PassRepository,
	userRepo repository.UserRepository,
	txRunner repository.PurchaseTxRunner,
	gstRate decimal.Decimal,
) *PassUseCase {
	return &PassUseCase{
		passRepo: passRepo,
		userRepo: userRepo,
		txRunner: txRunner,
		gstRate:  gstRate,
		now:      time.Now,
	}
}

// ListPlans devuelve los planes activos ordenados por precio.
func (uc *PassUseCase) ListPlans(ctx context.Context) ([]dto.PassPlanResponse, error) {
	plans, err := uc.passRepo.ListPlans(ctx, true)
	if err != nil {
		return nil, err
	}
	return dto.FromPlans(plans), nil
}

// Purchase compra un pase para el propio cliente.
func (uc *PassUseCase) Purchase(ctx context.Context, customerID string, in dto.PurchasePassRequest) (*dto.PurchaseResponse, error) {
	return uc.buy(ctx, customerID, "", in.PlanID, in.PaymentMethod)
}

// Sell registra la venta de un pase hecha por un empleado de ventas en nombre de un cliente.
func (uc *PassUseCase) Sell(ctx context.Context, sellerID string, in dto.SellPassRequest) (*dto.PurchaseResponse, error) {
	if in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.userRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if role.Parse(customer.Role, "").Kind != role.KindCustomer {
		return nil, domain.ErrInvalidInput
	}
	return uc.buy(ctx, customer.ID, sellerID, in.PlanID, in.PaymentMethod)
}

func (uc *PassUseCase) buy(ctx context.Context, customerID, sellerID, planID, paymentMethod string) (*dto.PurchaseResponse, error) {
	if customerID == "" || planID == "" || !entity.ValidPaymentMethod(paymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	plan, err := uc.passRepo.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.Active {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	amount, gst, total := Totals(plan.Price, uc.gstRate)
	tx := &entity.Transaction{
		ID:            uuid.New().String(),
		UserID:        customerID,
		Description:   fmt.Sprintf("Pase %s (%d lavados)", plan.Name, plan.Washes),
		Amount:        amount,
		GST:           gst,
		TotalAmount:   total,
		Status:        entity.TransactionSuccess,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
	}
	cp := &entity.CustomerPass{
		ID:              uuid.New().String(),
		CustomerID:      customerID,
		PlanID:          plan.ID,
		TransactionID:   tx.ID,
		RemainingWashes: plan.Washes,
		SoldBy:          sellerID,
		PurchasedAt:     now,
		ExpiresAt:       now.AddDate(0, 0, plan.ValidityDays),
	}
	tx.PassID = cp.ID

	err = uc.txRunner.RunPurchase(ctx, func(passRepo repository.PassRepository, txRepo repository.TransactionRepository) error {
		if err := txRepo.Create(ctx, tx); err != nil {
			return fmt.Errorf("pass: registrar transacción: %w", err)
		}
		if err := passRepo.CreateCustomerPass(ctx, cp); err != nil {
			return fmt.Errorf("pass: registrar pase: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.PurchaseResponse{
		Pass:        dto.FromCustomerPass(cp),
		Transaction: dto.FromTransaction(tx),
	}, nil
}

// MyPasses lista los pases del cliente.
func (uc *PassUseCase) MyPasses(ctx context.Context, customerID string) ([]dto.CustomerPassResponse, error) {
	passes, err := uc.passRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return dto.FromCustomerPasses(passes), nil
}

// SoldBy lista los pases vendidos por un empleado de ventas.
func (uc *PassUseCase) SoldBy(ctx context.Context, sellerID string, page dto.PageRequest) ([]dto.CustomerPassResponse, error) {
	page.DefaultPage()
	passes, err := uc.passRepo.ListSoldBy(ctx, sellerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.FromCustomerPasses(passes), nil
}

// Totals calcula base, GST y total redondeados a 2 decimales.
func Totals(price, gstRate decimal.Decimal) (amount, gst, total decimal.Decimal) {
	amount = price.Round(2)
	gst = amount.Mul(gstRate).Round(2)
	total = amount.Add(gst)
	return amount, gst, total
}
