package guard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carwash-api/internal/application/guard"
	"github.com/jhoicas/carwash-api/internal/application/session"
	"github.com/jhoicas/carwash-api/internal/domain/role"
	"github.com/jhoicas/carwash-api/internal/infrastructure/memstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type recorder struct {
	paths []string
}

func (r *recorder) Replace(path string) { r.paths = append(r.paths, path) }

func storeWith(t *testing.T, roleValue, employeeType string) session.Store {
	t.Helper()
	s := memstore.NewProvider(0).Open("sid")
	if roleValue != "" {
		require.NoError(t, session.Write(context.Background(), s, session.Data{
			Role: roleValue, EmployeeType: employeeType, UserID: "u-1",
		}))
	}
	return s
}

func run(t *testing.T, roleValue, employeeType string, required ...string) (guard.Decision, *recorder) {
	t.Helper()
	rec := &recorder{}
	g := guard.New(storeWith(t, roleValue, employeeType), rec)
	return g.Run(context.Background(), required...), rec
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos del algoritmo
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_EmployeeSalesEntraEnRutaSales(t *testing.T) {
	d, rec := run(t, "employee", "sales", "sales")
	assert.True(t, d.Allowed())
	assert.Empty(t, rec.paths)
}

func TestGuard_EmployeeWasherEnRutaSalesVaAWasherHome(t *testing.T) {
	d, rec := run(t, "employee", "washer", "sales")
	assert.Equal(t, guard.RedirectHome, d.Outcome)
	assert.Equal(t, []string{role.PathWasherHome}, rec.paths)
}

func TestGuard_SinRolVaALogin(t *testing.T) {
	d, rec := run(t, "", "", "admin", "employee")
	assert.Equal(t, guard.RedirectLogin, d.Outcome)
	assert.Equal(t, []string{role.PathLogin}, rec.paths)
}

func TestGuard_CustomerEnRutaAdminVaACustomerHome(t *testing.T) {
	d, rec := run(t, "customer", "", "admin")
	assert.Equal(t, guard.RedirectHome, d.Outcome)
	assert.Equal(t, []string{role.PathCustomerHome}, rec.paths)
}

func TestGuard_EmployeeSinTipoEnRutaSalesVaAEmployeeHome(t *testing.T) {
	d, rec := run(t, "employee", "", "sales")
	assert.Equal(t, guard.RedirectHome, d.Outcome)
	assert.Equal(t, []string{role.PathEmployeeHome}, rec.paths)
}

func TestGuard_RolDesconocidoVaALogin(t *testing.T) {
	d, rec := run(t, "root", "", "root", "admin")
	assert.Equal(t, guard.RedirectLogin, d.Outcome)
	assert.Equal(t, []string{role.PathLogin}, rec.paths)
}

func TestGuard_MultiRol(t *testing.T) {
	d, rec := run(t, "sub-admin", "", "admin", "sub-admin", "hr")
	assert.True(t, d.Allowed())
	assert.Empty(t, rec.paths)
}

// ──────────────────────────────────────────────────────────────────────────────
// Una sola ejecución por activación
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_RunEsIdempotente(t *testing.T) {
	rec := &recorder{}
	g := guard.New(storeWith(t, "customer", ""), rec)
	assert.False(t, g.Checked())
	assert.False(t, g.Allowed(), "antes de Run no se permite renderizar")

	first := g.Run(context.Background(), "admin")
	second := g.Run(context.Background(), "admin")

	assert.Equal(t, first, second)
	assert.Len(t, rec.paths, 1, "la segunda llamada no debe redirigir")
	assert.True(t, g.Checked())
}

func TestGuard_NoReevaluaAunqueCambieLaSesion(t *testing.T) {
	ctx := context.Background()
	s := storeWith(t, "admin", "")
	g := guard.New(s, &recorder{})
	require.True(t, g.Run(ctx, "admin").Allowed())

	require.NoError(t, session.Clear(ctx, s))
	assert.True(t, g.Run(ctx, "admin").Allowed(), "la decisión se fija en la primera ejecución")
}

func TestGuard_OtroConjuntoSeEvaluaSinNavegar(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	g := guard.New(storeWith(t, "customer", ""), rec)

	require.True(t, g.Run(ctx, "customer", "admin").Allowed())
	assert.True(t, g.Run(ctx, "admin", "customer").Allowed(), "mismo conjunto en otro orden")

	d := g.Run(ctx, "admin")
	assert.False(t, d.Allowed())
	assert.Equal(t, role.PathCustomerHome, d.Target)
	assert.Empty(t, rec.paths, "una comprobación posterior nunca navega")
	assert.False(t, g.Allowed(), "la denegación queda fijada")
	assert.False(t, g.Run(ctx, "customer", "admin").Allowed())
}

func TestGuard_TrasLogoutSeComportaComoSinRol(t *testing.T) {
	ctx := context.Background()
	s := storeWith(t, "hr", "")
	require.NoError(t, session.Clear(ctx, s))

	for _, required := range [][]string{{"admin"}, {"customer"}, {"sales"}, {"employee"}} {
		rec := &recorder{}
		d := guard.New(s, rec).Run(ctx, required...)
		assert.Equal(t, guard.RedirectLogin, d.Outcome)
		assert.Equal(t, []string{role.PathLogin}, rec.paths)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad: toda combinación termina en exactamente un resultado
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_TodaCombinacionTieneUnResultado(t *testing.T) {
	stored := []struct{ role, typ string }{
		{"", ""}, {"admin", ""}, {"sub-admin", ""}, {"hr", ""}, {"customer", ""}, {"sales", ""},
		{"employee", ""}, {"employee", "sales"}, {"employee", "washer"}, {"employee", "rider"},
		{"garbage", ""},
	}
	required := [][]string{
		{"admin"}, {"sub-admin"}, {"hr"}, {"customer"}, {"sales"}, {"employee"},
		{"admin", "employee"}, {"admin", "sub-admin", "hr"}, {},
	}
	homes := map[string]bool{
		role.PathAdminHome: true, role.PathSalesHome: true, role.PathWasherHome: true,
		role.PathEmployeeHome: true, role.PathCustomerHome: true,
	}
	for _, s := range stored {
		for _, req := range required {
			d := guard.Evaluate(s.role, s.typ, req...)
			switch d.Outcome {
			case guard.Allow:
				assert.Empty(t, d.Target)
			case guard.RedirectLogin:
				assert.Equal(t, role.PathLogin, d.Target)
			case guard.RedirectHome:
				assert.True(t, homes[d.Target], "destino %q debe ser un dashboard", d.Target)
				assert.Equal(t, role.Parse(s.role, s.typ).Home(), d.Target)
			default:
				t.Fatalf("resultado inesperado %v para %v / %v", d.Outcome, s, req)
			}
		}
	}
}

func TestGuard_SinNavigatorNoFalla(t *testing.T) {
	g := guard.New(storeWith(t, "", ""), nil)
	d := g.Run(context.Background(), "admin")
	assert.Equal(t, guard.RedirectLogin, d.Outcome)
}

func TestNavigatorFunc(t *testing.T) {
	var got string
	g := guard.New(storeWith(t, "customer", ""), guard.NavigatorFunc(func(p string) { got = p }))
	g.Run(context.Background(), "hr")
	assert.Equal(t, role.PathCustomerHome, got)
}
