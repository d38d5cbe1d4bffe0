package dto

import "github.com/shopspring/decimal"

// AdminDashboardDTO respuesta de GET /admin/dashboard.
type AdminDashboardDTO struct {
	UsersByRole       map[string]int        `json:"users_by_role"`
	BookingsByStatus  map[string]int        `json:"bookings_by_status"`
	MonthlyRevenue    decimal.Decimal       `json:"monthly_revenue"`
	MonthlyTxCount    int                   `json:"monthly_transactions"`
	PendingBookings   []BookingResponse     `json:"pending_bookings"`
	LatestTransaction []TransactionResponse `json:"latest_transactions"`
}

// CustomerDashboardDTO respuesta de GET /customer/dashboard.
type CustomerDashboardDTO struct {
	Profile      UserResponse           `json:"profile"`
	Passes       []CustomerPassResponse `json:"passes"`
	Bookings     []BookingResponse      `json:"bookings"`
	Transactions []TransactionResponse  `json:"transactions"`
	Plans        []PassPlanResponse     `json:"plans"`
}

// EmployeeDashboardDTO respuesta de GET /employee/dashboard y /washer/dashboard.
type EmployeeDashboardDTO struct {
	Profile  UserResponse      `json:"profile"`
	Assigned []BookingResponse `json:"assigned"`
	Done     int               `json:"completed_count"`
}

// SalesDashboardDTO respuesta de GET /sales/dashboard.
type SalesDashboardDTO struct {
	Profile    UserResponse           `json:"profile"`
	Plans      []PassPlanResponse     `json:"plans"`
	SoldPasses []CustomerPassResponse `json:"sold_passes"`
	SoldCount  int                    `json:"sold_count"`
}
