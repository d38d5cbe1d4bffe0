package dto

import "time"

// CreateBookingRequest body para POST /api/bookings.
type CreateBookingRequest struct {
	VehicleNumber  string    `json:"vehicle_number"`
	VehicleType    string    `json:"vehicle_type"`
	ServiceType    string    `json:"service_type"`
	Address        string    `json:"address"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	CustomerPassID string    `json:"customer_pass_id,omitempty"`
	Notes          string    `json:"notes,omitempty"`
}

// UpdateBookingStatusRequest body para PATCH /api/bookings/:id/status.
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// AssignBookingRequest body para PATCH /api/bookings/:id/assign.
type AssignBookingRequest struct {
	WasherID string `json:"washer_id"`
}

// BookingResponse reserva en respuestas.
type BookingResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"`
	WasherID       string    `json:"washer_id,omitempty"`
	CustomerPassID string    `json:"customer_pass_id,omitempty"`
	VehicleNumber  string    `json:"vehicle_number"`
	VehicleType    string    `json:"vehicle_type"`
	ServiceType    string    `json:"service_type"`
	Address        string    `json:"address"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
