package entity

import "time"

// Estados de cuenta.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// User representa un usuario del sistema: cliente, empleado o administrador.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Phone        string
	Role         string // admin, sub-admin, hr, employee, customer, sales
	EmployeeType string // sales, washer, rider; vacío si Role != employee
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
