package dto

import "github.com/jhoicas/carwash-api/internal/domain/entity"

// FromUser convierte la entidad en respuesta (sin hash de password).
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Phone:        u.Phone,
		Role:         u.Role,
		EmployeeType: u.EmployeeType,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// FromBooking convierte una reserva.
func FromBooking(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		CustomerID:     b.CustomerID,
		WasherID:       b.WasherID,
		CustomerPassID: b.CustomerPassID,
		VehicleNumber:  b.VehicleNumber,
		VehicleType:    b.VehicleType,
		ServiceType:    b.ServiceType,
		Address:        b.Address,
		ScheduledAt:    b.ScheduledAt,
		Status:         b.Status,
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromBookings convierte una lista; nunca devuelve nil para que el JSON sea [].
func FromBookings(list []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBooking(b))
	}
	return out
}

// FromPlan convierte un plan.
func FromPlan(p *entity.PassPlan) PassPlanResponse {
	return PassPlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Washes:       p.Washes,
		ValidityDays: p.ValidityDays,
		Price:        p.Price,
	}
}

// FromPlans convierte una lista de planes.
func FromPlans(list []*entity.PassPlan) []PassPlanResponse {
	out := make([]PassPlanResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPlan(p))
	}
	return out
}

// FromCustomerPass convierte un pase.
func FromCustomerPass(p *entity.CustomerPass) CustomerPassResponse {
	return CustomerPassResponse{
		ID:              p.ID,
		CustomerID:      p.CustomerID,
		PlanID:          p.PlanID,
		TransactionID:   p.TransactionID,
		RemainingWashes: p.RemainingWashes,
		SoldBy:          p.SoldBy,
		PurchasedAt:     p.PurchasedAt,
		ExpiresAt:       p.ExpiresAt,
	}
}

// FromCustomerPasses convierte una lista de pases.
func FromCustomerPasses(list []*entity.CustomerPass) []CustomerPassResponse {
	out := make([]CustomerPassResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromCustomerPass(p))
	}
	return out
}

// FromTransaction convierte una transacción.
func FromTransaction(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		UserID:        t.UserID,
		PassID:        t.PassID,
		Description:   t.Description,
		Amount:        t.Amount,
		GST:           t.GST,
		TotalAmount:   t.TotalAmount,
		Status:        t.Status,
		PaymentMethod: t.PaymentMethod,
		CreatedAt:     t.CreatedAt,
	}
}

// FromTransactions convierte una lista de transacciones.
func FromTransactions(list []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTransaction(t))
	}
	return out
}
