package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inversiones-api/internal/application/auth"
	"github.com/jhoicas/Inversiones-api/internal/application/dto"
	"github.com/jhoicas/Inversiones-api/internal/application/session"
	"github.com/jhoicas/Inversiones-api/internal/domain"
	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
)

// AuthHandler maneja login, logout y el estado de sesión.
type AuthHandler struct {
	uc           *auth.AuthUseCase
	cookieName   string
	cookieTTL    time.Duration
	secureCookie bool
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookieName string, cookieTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{uc: uc, cookieName: cookieName, cookieTTL: cookieTTL, secureCookie: secureCookie}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password, redirect opcional"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    out.Token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookieTTL),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.AuthStateResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(h.cookieName)
	return c.JSON(dto.ToAuthStateResponse(entity.AuthState{}))
}

// Me godoc
// @Summary      Estado de la sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.AuthStateResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	store := session.NewStore(h.uc.Authenticator(TokenFromRequest(c, h.cookieName)))
	store.CheckAuth(c.UserContext())
	return c.JSON(dto.ToAuthStateResponse(store.Snapshot()))
}

// LoginPage godoc
// @Summary      Punto de entrada de login
// @Description  Destino de las redirecciones del guard; devuelve la ruta a la que volver tras autenticarse.
// @Tags         auth
// @Produce      json
// @Param        redirect  query  string  false  "ruta guardada por el guard"
// @Success      200  {object}  dto.LoginPageResponse
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(dto.LoginPageResponse{
		LoginEndpoint: "/api/auth/login",
		Redirect:      auth.SafeRedirect(c.Query("redirect"), ""),
	})
}
