package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inversiones-api/internal/application/dto"
	"github.com/jhoicas/Inversiones-api/internal/application/guard"
	"github.com/jhoicas/Inversiones-api/internal/application/session"
	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
	"github.com/jhoicas/Inversiones-api/pkg/logger"
)

// sessionResolver contrato mínimo que necesita el guard para verificar la sesión de una petición.
// Lo implementa *auth.AuthUseCase.
type sessionResolver interface {
	Authenticator(token string) session.Authenticator
}

// GuardConfig rutas de redirección y cookie de sesión.
type GuardConfig struct {
	Routes     guard.Routes
	CookieName string
	Log        *logger.Logger // transiciones de sesión en debug; nil = sin log
}

// RequireSession protege una vista: cada petición crea su propio session.Store a partir del
// token y aplica el guard para el rol indicado (vacío = cualquier usuario autenticado).
//
// Comportamiento:
//   - Render          → c.Next() con el usuario en Locals.
//   - RedirectLogin   → 302 a Routes.Login?redirect=<ruta pedida>.
//   - RedirectHome    → 302 a Routes.Home (rol insuficiente, sin mensaje de error).
//   - Loading         → 202 con placeholder; no debería ocurrir porque Resolve espera la verificación.
func RequireSession(resolver sessionResolver, cfg GuardConfig, required entity.Role) fiber.Handler {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		store := session.NewStore(resolver.Authenticator(TokenFromRequest(c, cfg.CookieName)))
		requestID, _ := c.Locals(LocalRequestID).(string)
		unsubscribe := store.Subscribe(func(st entity.AuthState) {
			ev := log.Debug().
				Str("request_id", requestID).
				Bool("loading", st.IsLoading).
				Bool("authenticated", st.IsAuthenticated)
			if st.User != nil {
				ev = ev.Str("user_id", st.User.ID).Str("role", string(st.User.Role))
			}
			if st.Error != "" {
				ev = ev.Str("error", st.Error)
			}
			ev.Msg("sesión")
		})
		defer unsubscribe()

		g := guard.New(store, required, cfg.Routes)

		d, err := g.Resolve(c.UserContext(), c.OriginalURL())
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SESSION_CHECK_FAILED",
				Message: "no se pudo verificar la sesión, intente más tarde",
			})
		}

		switch d.Outcome {
		case guard.OutcomeRender:
			c.Locals(LocalUser, store.Snapshot().User)
			return c.Next()
		case guard.OutcomeRedirectLogin:
			return c.Redirect(loginLocation(d), fiber.StatusFound)
		case guard.OutcomeRedirectHome:
			return c.Redirect(d.Location, fiber.StatusFound)
		default:
			return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"loading": true})
		}
	}
}

// RequireAdmin atajo de RequireSession para vistas de administrador.
func RequireAdmin(resolver sessionResolver, cfg GuardConfig) fiber.Handler {
	return RequireSession(resolver, cfg, entity.RoleAdmin)
}

func loginLocation(d guard.Decision) string {
	if d.ReturnTo == "" {
		return d.Location
	}
	return d.Location + "?redirect=" + url.QueryEscape(d.ReturnTo)
}
