package session

import (
	"context"
	"encoding/json"
	"fmt"
)

// Data es el contenido que el login escribe en la sesión.
type Data struct {
	Role         string
	EmployeeType string
	UserID       string
	UserDetails  map[string]any
}

// Role devuelve el rol guardado ("" si no hay sesión o falla la lectura).
func Role(ctx context.Context, s Store) string {
	v, err := s.Get(ctx, KeyRole)
	if err != nil {
		return ""
	}
	return v
}

// EmployeeType devuelve el tipo de empleado guardado.
func EmployeeType(ctx context.Context, s Store) string {
	v, err := s.Get(ctx, KeyEmployeeType)
	if err != nil {
		return ""
	}
	return v
}

// UserID devuelve el ID del usuario de la sesión.
func UserID(ctx context.Context, s Store) string {
	v, err := s.Get(ctx, KeyUserID)
	if err != nil {
		return ""
	}
	return v
}

// UserDetails decodifica el JSON de detalles. Un valor ausente o malformado devuelve (nil, false).
func UserDetails(ctx context.Context, s Store) (map[string]any, bool) {
	raw, err := s.Get(ctx, KeyUserDetails)
	if err != nil || raw == "" {
		return nil, false
	}
	var details map[string]any
	if err := json.Unmarshal([]byte(raw), &details); err != nil || details == nil {
		return nil, false
	}
	return details, true
}

// Write guarda las cuatro claves de una sesión recién autenticada.
// Las claves vacías se escriben igualmente para no heredar valores de una sesión previa.
func Write(ctx context.Context, s Store, d Data) error {
	details := "{}"
	if d.UserDetails != nil {
		b, err := json.Marshal(d.UserDetails)
		if err != nil {
			return fmt.Errorf("session: serializar userDetails: %w", err)
		}
		details = string(b)
	}
	values := [][2]string{
		{KeyUserID, d.UserID},
		{KeyEmployeeType, d.EmployeeType},
		{KeyUserDetails, details},
		// userRole al final: es la clave que los guards consultan primero.
		{KeyRole, d.Role},
	}
	for _, kv := range values {
		if err := s.Set(ctx, kv[0], kv[1]); err != nil {
			return fmt.Errorf("session: escribir %s: %w", kv[0], err)
		}
	}
	return nil
}

// Clear elimina las cuatro claves de la sesión.
func Clear(ctx context.Context, s Store) error {
	if err := s.Clear(ctx); err != nil {
		return fmt.Errorf("session: limpiar: %w", err)
	}
	return nil
}
