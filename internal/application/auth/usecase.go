package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inversiones-api/internal/application/dto"
	"github.com/jhoicas/Inversiones-api/internal/application/session"
	"github.com/jhoicas/Inversiones-api/internal/domain"
	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
	"github.com/jhoicas/Inversiones-api/internal/domain/repository"
	"github.com/jhoicas/Inversiones-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y resolución de sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	homePath string
}

// NewAuthUseCase construye el caso de uso de auth. homePath es el destino tras login sin ruta guardada.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, homePath string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, homePath: homePath}
}

// Login verifica email/password, genera JWT y calcula a dónde continuar.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:      token,
		User:       *dto.ToUserResponse(user),
		RedirectTo: SafeRedirect(in.Redirect, uc.homePath),
	}, nil
}

// Resolve valida el token y carga el usuario vigente. Token vacío = sin sesión (nil, nil).
// El rol se toma de la fuente de datos, no del token, para reflejar cambios de rol.
func (uc *AuthUseCase) Resolve(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, nil
	}
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrSessionExpired
	}
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolver sesión: %w", err)
	}
	if user == nil {
		return nil, domain.ErrSessionExpired
	}
	return user, nil
}

// Authenticator adapta Resolve con un token fijo al colaborador que espera session.Store.
func (uc *AuthUseCase) Authenticator(token string) session.Authenticator {
	return session.AuthenticatorFunc(func(ctx context.Context) (*entity.User, error) {
		return uc.Resolve(ctx, token)
	})
}

// SafeRedirect acepta solo rutas relativas locales ("/algo", no "//host" ni URLs absolutas).
// Los navegadores descartan tab, CR y LF al parsear, así que cualquier byte de control se rechaza.
func SafeRedirect(path, fallback string) string {
	if path == "" || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.Contains(path, "\\") {
		return fallback
	}
	for i := 0; i < len(path); i++ {
		if path[i] < 0x20 || path[i] == 0x7f {
			return fallback
		}
	}
	return path
}
