package entity

import "time"

// Estados de una reserva de lavado.
const (
	BookingPending    = "pending"
	BookingAssigned   = "assigned"
	BookingInProgress = "in_progress"
	BookingCompleted  = "completed"
	BookingCancelled  = "cancelled"
)

var bookingTransitions = map[string][]string{
	BookingPending:    {BookingAssigned, BookingCancelled},
	BookingAssigned:   {BookingInProgress, BookingCancelled},
	BookingInProgress: {BookingCompleted},
}

// CanTransition informa si una reserva puede pasar de from a to.
func CanTransition(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Booking reserva de lavado hecha por un cliente y atendida por un washer.
type Booking struct {
	ID             string
	CustomerID     string
	WasherID       string // vacío hasta que se asigna
	CustomerPassID string // vacío si se paga aparte
	VehicleNumber  string
	VehicleType    string // hatchback, sedan, suv
	ServiceType    string // exterior, interior, full
	Address        string
	ScheduledAt    time.Time
	Status         string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
