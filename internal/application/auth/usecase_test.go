package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carwash-api/internal/application/auth"
	"github.com/jhoicas/carwash-api/internal/application/dto"
	"github.com/jhoicas/carwash-api/internal/application/guard"
	"github.com/jhoicas/carwash-api/internal/application/session"
	"github.com/jhoicas/carwash-api/internal/domain"
	"github.com/jhoicas/carwash-api/internal/domain/repository/repofake"
	"github.com/jhoicas/carwash-api/internal/domain/role"
	"github.com/jhoicas/carwash-api/internal/infrastructure/memstore"
	pkgjwt "github.com/jhoicas/carwash-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase() *auth.AuthUseCase {
	return auth.NewAuthUseCase(repofake.NewUserRepo(), auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "carwash-test",
	})
}

func TestRegisterYLogin(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	user, err := uc.RegisterCustomer(ctx, dto.RegisterRequest{Email: "Ana@Example.com", Password: "supersecret", Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, role.Customer, user.Role)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, role.PathCustomerHome, out.Redirect)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, role.Customer, claims.Role)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	_, err := uc.RegisterCustomer(ctx, dto.RegisterRequest{Email: "a@example.com", Password: "12345678"})
	require.NoError(t, err)
	_, err = uc.RegisterCustomer(ctx, dto.RegisterRequest{Email: "a@example.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_PasswordCorto(t *testing.T) {
	_, err := newUseCase().RegisterCustomer(context.Background(), dto.RegisterRequest{Email: "a@example.com", Password: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	_, err := uc.RegisterCustomer(ctx, dto.RegisterRequest{Email: "a@example.com", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCreateStaff(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	washer, err := uc.CreateStaff(ctx, dto.CreateEmployeeRequest{
		Email: "w@example.com", Password: "12345678", Role: "employee", EmployeeType: "washer",
	})
	require.NoError(t, err)
	assert.Equal(t, "washer", washer.EmployeeType)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "w@example.com", Password: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, role.PathWasherHome, out.Redirect)

	sales, err := uc.CreateStaff(ctx, dto.CreateEmployeeRequest{
		Email: "s@example.com", Password: "12345678", Role: " Employee ", EmployeeType: "SALES",
	})
	require.NoError(t, err)
	assert.Equal(t, "employee", sales.Role, "se persiste el valor canónico")
	assert.Equal(t, "sales", sales.EmployeeType)

	_, err = uc.CreateStaff(ctx, dto.CreateEmployeeRequest{Email: "x@example.com", Password: "12345678", Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no se crean admins por API")

	_, err = uc.CreateStaff(ctx, dto.CreateEmployeeRequest{Email: "y@example.com", Password: "12345678", Role: "employee", EmployeeType: "pilot"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSesion_LoginYLogout(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	store := memstore.NewProvider(0).Open("sid")

	user, err := uc.CreateStaff(ctx, dto.CreateEmployeeRequest{
		Email: "s@example.com", Password: "12345678", Name: "Sam", Role: "employee", EmployeeType: "sales",
	})
	require.NoError(t, err)
	require.NoError(t, uc.StartSession(ctx, store, *user))

	assert.Equal(t, user.ID, session.UserID(ctx, store))
	details, ok := session.UserDetails(ctx, store)
	require.True(t, ok)
	assert.Equal(t, "Sam", details["name"])
	assert.True(t, guard.New(store, nil).Run(ctx, role.Sales).Allowed())

	require.NoError(t, uc.EndSession(ctx, store))
	d := guard.New(store, nil).Run(ctx, role.Sales)
	assert.Equal(t, guard.RedirectLogin, d.Outcome)
}

func TestListUsers_FiltroInvalido(t *testing.T) {
	_, err := newUseCase().ListUsers(context.Background(), "pirate", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLanding(t *testing.T) {
	assert.Equal(t, role.PathSalesHome, auth.Landing(role.Parse("sales", "")))
	assert.Equal(t, role.PathSalesHome, auth.Landing(role.Parse("employee", "sales")))
	assert.Equal(t, role.PathAdminHome, auth.Landing(role.Parse("hr", "")))
	assert.Equal(t, role.PathLogin, auth.Landing(role.Parse("", "")))
}
