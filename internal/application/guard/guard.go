// Package guard decide si una página protegida puede renderizarse para la
// sesión actual y, si no, a dónde redirigir.
//
// Un Guard vive lo que vive la activación de la página (en HTTP, una petición).
// Su comprobación se ejecuta una sola vez; las llamadas siguientes devuelven la
// misma decisión sin volver a navegar.
package guard

import (
	"context"

	"github.com/jhoicas/carwash-api/internal/application/session"
	"github.com/jhoicas/carwash-api/internal/domain/role"
)

// Outcome resultado de la comprobación.
type Outcome int

const (
	Pending       Outcome = iota // aún no se ha ejecutado Run
	Allow                        // renderizar
	RedirectLogin                // sin sesión o rol inválido
	RedirectHome                 // sesión válida, página ajena: ir al dashboard propio
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case RedirectHome:
		return "redirect_home"
	default:
		return "pending"
	}
}

// Decision resultado de evaluar una sesión contra los roles requeridos.
type Decision struct {
	Outcome Outcome
	Target  string // ruta de redirección; vacío si Outcome == Allow
}

// Allowed informa si la página puede renderizarse.
func (d Decision) Allowed() bool { return d.Outcome == Allow }

// Navigator reemplaza la ubicación actual (sin dejar la página bloqueada en el historial).
type Navigator interface {
	Replace(path string)
}

// NavigatorFunc adapta una función a Navigator.
type NavigatorFunc func(path string)

// Replace implementa Navigator.
func (f NavigatorFunc) Replace(path string) { f(path) }

// Evaluate aplica el algoritmo de acceso a los valores crudos de la sesión.
// Es una función pura: no lee el almacén ni navega.
func Evaluate(storedRole, employeeType string, required ...string) Decision {
	if storedRole == "" {
		return Decision{Outcome: RedirectLogin, Target: role.PathLogin}
	}
	r := role.Parse(storedRole, employeeType)
	if r.Satisfies(role.Require(required...)) {
		return Decision{Outcome: Allow}
	}
	home := r.Home()
	if home == role.PathLogin {
		return Decision{Outcome: RedirectLogin, Target: home}
	}
	return Decision{Outcome: RedirectHome, Target: home}
}

// Guard comprobación de una sola ejecución ligada a una activación de página.
// No es seguro para uso concurrente: pertenece a una única petición.
type Guard struct {
	store    session.Store
	nav      Navigator
	checked  bool
	decision Decision

	// valores leídos en la primera ejecución y conjunto exigido entonces
	storedRole   string
	employeeType string
	required     []string
}

// New construye el guard con el almacén de la sesión y el navegador de la página.
func New(store session.Store, nav Navigator) *Guard {
	return &Guard{store: store, nav: nav}
}

// Run ejecuta la comprobación la primera vez y navega si corresponde.
// Las llamadas posteriores con el mismo conjunto de roles devuelven la decisión
// ya tomada. Con otro conjunto se evalúa de nuevo sobre la sesión leída la
// primera vez; nunca se vuelve a navegar y una denegación queda fijada.
func (g *Guard) Run(ctx context.Context, required ...string) Decision {
	if g.checked {
		if sameSet(g.required, required) {
			return g.decision
		}
		d := Evaluate(g.storedRole, g.employeeType, required...)
		if !d.Allowed() {
			g.decision = d
		}
		return d
	}
	g.checked = true
	g.required = append([]string(nil), required...)

	g.storedRole = session.Role(ctx, g.store)
	if g.storedRole != "" {
		g.employeeType = session.EmployeeType(ctx, g.store)
	}
	g.decision = Evaluate(g.storedRole, g.employeeType, required...)

	if !g.decision.Allowed() && g.nav != nil {
		g.nav.Replace(g.decision.Target)
	}
	return g.decision
}

// Checked informa si Run ya se ejecutó.
func (g *Guard) Checked() bool { return g.checked }

// Allowed es true solo si la comprobación ya se ejecutó y permitió el acceso.
func (g *Guard) Allowed() bool { return g.checked && g.decision.Allowed() }

// Decision devuelve la decisión tomada (Pending si Run no se ha ejecutado).
func (g *Guard) Decision() Decision { return g.decision }

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		if seen[v] == 0 {
			return false
		}
		seen[v]--
	}
	return true
}
