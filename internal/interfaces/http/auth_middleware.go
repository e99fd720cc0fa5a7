package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
)

// Locals keys.
const (
	LocalUser      = "user"
	LocalRequestID = "request_id"
)

// TokenFromRequest extrae el JWT de la cookie de sesión o, si no está, del header
// Authorization: Bearer <token>. Devuelve "" si no hay token.
// El resultado es una copia: sobrevive al ciclo de vida del fiber.Ctx.
func TokenFromRequest(c *fiber.Ctx, cookieName string) string {
	if tok := strings.TrimSpace(c.Cookies(cookieName)); tok != "" {
		return strings.Clone(tok)
	}
	authHeader := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.Clone(strings.TrimSpace(parts[1]))
}

// GetUser devuelve el usuario autenticado (después del guard); nil si no hay.
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// GetUserID atajo de GetUser(c).ID.
func GetUserID(c *fiber.Ctx) string {
	if u := GetUser(c); u != nil {
		return u.ID
	}
	return ""
}
