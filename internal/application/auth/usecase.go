package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/carwash-api/internal/application/dto"
	"github.com/jhoicas/carwash-api/internal/application/session"
	"github.com/jhoicas/carwash-api/internal/domain"
	"github.com/jhoicas/carwash-api/internal/domain/entity"
	"github.com/jhoicas/carwash-api/internal/domain/repository"
	"github.com/jhoicas/carwash-api/internal/domain/role"
	"github.com/jhoicas/carwash-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, alta de personal, login y sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, now: time.Now}
}

// RegisterCustomer crea un cliente. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterCustomer(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	return uc.createUser(ctx, in.Email, in.Password, in.Name, in.Phone, role.Customer, "")
}

// CreateStaff crea un empleado o miembro del personal administrativo.
// Solo el rol employee admite tipo de empleado, y es obligatorio que sea válido si se envía.
func (uc *AuthUseCase) CreateStaff(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.UserResponse, error) {
	// Los valores del request se normalizan aquí; lo persistido ya es canónico.
	r := role.Parse(strings.ToLower(strings.TrimSpace(in.Role)), strings.ToLower(strings.TrimSpace(in.EmployeeType)))
	switch r.Kind {
	case role.KindEmployee, role.KindSubAdmin, role.KindHR, role.KindSales:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.EmployeeType != "" && r.EmployeeType() == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.createUser(ctx, in.Email, in.Password, in.Name, in.Phone, r.String(), r.EmployeeType())
}

func (uc *AuthUseCase) createUser(ctx context.Context, email, password, name, phone, roleValue, employeeType string) (*dto.UserResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	if name == "" {
		name = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Phone:        phone,
		Role:         roleValue,
		EmployeeType: employeeType,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	out := dto.FromUser(user)
	return &out, nil
}

// Login verifica email/password, genera JWT y retorna token, usuario y dashboard de destino.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.EmployeeType, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		User:     dto.FromUser(user),
		Redirect: Landing(role.Parse(user.Role, user.EmployeeType)),
	}, nil
}

// StartSession escribe en la sesión del navegador la identidad del usuario autenticado.
func (uc *AuthUseCase) StartSession(ctx context.Context, store session.Store, user dto.UserResponse) error {
	return session.Write(ctx, store, session.Data{
		Role:         user.Role,
		EmployeeType: user.EmployeeType,
		UserID:       user.ID,
		UserDetails: map[string]any{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
		},
	})
}

// EndSession borra las cuatro claves de la sesión.
func (uc *AuthUseCase) EndSession(ctx context.Context, store session.Store) error {
	return session.Clear(ctx, store)
}

// Profile devuelve el usuario por ID.
func (uc *AuthUseCase) Profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.FromUser(user)
	return &out, nil
}

// ListUsers lista usuarios, opcionalmente filtrados por rol.
func (uc *AuthUseCase) ListUsers(ctx context.Context, roleFilter string, page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	if roleFilter != "" && !role.Parse(roleFilter, "").Known() {
		return nil, domain.ErrInvalidInput
	}
	users, err := uc.userRepo.List(ctx, roleFilter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.FromUser(u))
	}
	return out, nil
}

// Landing dashboard de destino tras el login. Coincide con Home salvo para el rol
// sales de primer nivel, cuyo Home es el login pero sí tiene panel propio.
func Landing(r role.Role) string {
	if r.Kind == role.KindSales {
		return role.PathSalesHome
	}
	return r.Home()
}
