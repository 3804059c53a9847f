// Package auth implementa registro, login y emisión de tokens JWT.
package auth

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kumishop/kumi-api/internal/application/dto"
	"github.com/kumishop/kumi-api/internal/domain"
	"github.com/kumishop/kumi-api/internal/domain/entity"
	"github.com/kumishop/kumi-api/internal/domain/repository"
	"github.com/kumishop/kumi-api/pkg/jwt"
	"github.com/kumishop/kumi-api/pkg/logger"
)

// UseCase casos de uso de autenticación.
type UseCase struct {
	users     repository.UserRepository
	jwtSecret string
	jwtIssuer string
	jwtExpMin int
	log       *logger.Logger
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(users repository.UserRepository, jwtSecret, jwtIssuer string, jwtExpMin int, log *logger.Logger) *UseCase {
	return &UseCase{users: users, jwtSecret: jwtSecret, jwtIssuer: jwtIssuer, jwtExpMin: jwtExpMin, log: log}
}

// Register crea un usuario con la contraseña hasheada con bcrypt.
// El rol por defecto es vendedor; solo un admin puede crear otros admin
// (esa regla se aplica en el middleware de la ruta).
func (uc *UseCase) Register(req dto.RegisterRequest) (*dto.UserResponse, error) {
	if existing, err := uc.users.FindByEmail(req.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("verificar email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear contraseña: %w", err)
	}

	role := req.Role
	if role == "" {
		role = entity.RoleVendedor
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
		Status:       "active",
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}

	uc.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("usuario registrado")

	resp := toUserResponse(user)
	return &resp, nil
}

// Login verifica credenciales y emite un JWT firmado.
func (uc *UseCase) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.Role, uc.jwtIssuer, uc.jwtExpMin)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}

	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *UseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
