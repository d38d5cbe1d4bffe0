package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/carwash-api/internal/application/dto"
	"github.com/jhoicas/carwash-api/internal/domain"
	"github.com/jhoicas/carwash-api/internal/domain/repository"
	"github.com/jhoicas/carwash-api/internal/domain/role"
)

// Modos de exportación del recibo.
const (
	ModeDownload = "download"
	ModeView     = "view"
)

// TransactionUseCase consulta de pagos y exportación de recibos.
type TransactionUseCase struct {
	txRepo   repository.TransactionRepository
	userRepo repository.UserRepository
	exporter *Exporter
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(txRepo repository.TransactionRepository, userRepo repository.UserRepository, exporter *Exporter) *TransactionUseCase {
	return &TransactionUseCase{txRepo: txRepo, userRepo: userRepo, exporter: exporter}
}

// ListMine pagos del usuario.
func (uc *TransactionUseCase) ListMine(ctx context.Context, userID string, page dto.PageRequest) ([]dto.TransactionResponse, error) {
	page.DefaultPage()
	list, err := uc.txRepo.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.FromTransactions(list), nil
}

// ListAll todos los pagos (personal administrativo).
func (uc *TransactionUseCase) ListAll(ctx context.Context, page dto.PageRequest) ([]dto.TransactionResponse, error) {
	page.DefaultPage()
	list, err := uc.txRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.FromTransactions(list), nil
}

// Invoice genera el recibo de una transacción.
//
// Retorna:
//   - domain.ErrNotFound  si la transacción no existe.
//   - domain.ErrForbidden si no es del solicitante y este no es personal administrativo.
//   - Result con Success=false si el exportador falla; en ese caso err es nil.
func (uc *TransactionUseCase) Invoice(ctx context.Context, requesterID string, requester role.Role, txID, mode string) (*Result, error) {
	tx, err := uc.txRepo.GetByID(ctx, txID)
	if err != nil {
		return nil, fmt.Errorf("invoice: obtener transacción: %w", err)
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	if tx.UserID != requesterID && !isStaff(requester) {
		return nil, domain.ErrForbidden
	}

	info := UserInfo{ID: tx.UserID}
	if owner, uErr := uc.userRepo.GetByID(ctx, tx.UserID); uErr == nil && owner != nil {
		info.Name = owner.Name
		info.Email = owner.Email
		info.Phone = owner.Phone
	}

	txDTO := dto.FromTransaction(tx)
	var res Result
	switch mode {
	case ModeView:
		res = uc.exporter.View(ctx, txDTO, info, requester.String())
	default:
		res = uc.exporter.Generate(ctx, txDTO, info, requester.String())
	}
	return &res, nil
}

func isStaff(r role.Role) bool {
	switch r.Kind {
	case role.KindAdmin, role.KindSubAdmin, role.KindHR:
		return true
	}
	return false
}
