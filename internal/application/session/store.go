// Package session expone el almacén de sesión del navegador y los accesores
// sobre sus cuatro claves. El almacén se inyecta: nada lee estado global.
package session

import "context"

// Claves persistidas en la sesión.
const (
	KeyRole         = "userRole"
	KeyEmployeeType = "userEmployeeType"
	KeyUserID       = "userId"
	KeyUserDetails  = "userDetails"
)

// Keys enumera todas las claves que Clear elimina.
var Keys = []string{KeyRole, KeyEmployeeType, KeyUserID, KeyUserDetails}

// Store es la vista clave/valor de una sesión concreta.
// Get devuelve "" sin error cuando la clave no existe.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context) error
}

// Provider abre el Store de una sesión identificada por su ID (valor de la cookie).
type Provider interface {
	Open(sessionID string) Store
}
