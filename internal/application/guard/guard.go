// Package guard decide si una vista protegida se renderiza o se redirige según el AuthState.
package guard

import (
	"context"
	"sync"

	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
)

// Outcome resultado de evaluar el guard en una pasada.
type Outcome int

const (
	// OutcomeLoading hay una verificación de sesión en curso: mostrar placeholder, sin redirigir.
	OutcomeLoading Outcome = iota
	// OutcomeRedirectLogin sin sesión: redirigir a login conservando la ruta pedida.
	OutcomeRedirectLogin
	// OutcomeRedirectHome autenticado con otro rol: redirigir a la vista por defecto, sin error.
	OutcomeRedirectHome
	// OutcomeRender acceso permitido.
	OutcomeRender
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoading:
		return "loading"
	case OutcomeRedirectLogin:
		return "redirect_login"
	case OutcomeRedirectHome:
		return "redirect_home"
	case OutcomeRender:
		return "render"
	default:
		return "unknown"
	}
}

// Routes destinos de redirección.
type Routes struct {
	Login string
	Home  string
}

// DefaultRoutes /login y /dashboard.
func DefaultRoutes() Routes {
	return Routes{Login: "/login", Home: "/dashboard"}
}

// Decision qué hacer con la petición. Location vacío salvo en redirecciones;
// ReturnTo solo se rellena al redirigir a login.
type Decision struct {
	Outcome  Outcome
	Location string
	ReturnTo string
}

// Evaluate aplica las reglas en orden de precedencia. required vacío admite cualquier rol autenticado.
func Evaluate(state entity.AuthState, required entity.Role, path string, routes Routes) Decision {
	switch {
	case state.IsLoading:
		return Decision{Outcome: OutcomeLoading}
	case !state.IsAuthenticated || state.User == nil:
		return Decision{Outcome: OutcomeRedirectLogin, Location: routes.Login, ReturnTo: path}
	case required != "" && state.User.Role != required:
		return Decision{Outcome: OutcomeRedirectHome, Location: routes.Home}
	default:
		return Decision{Outcome: OutcomeRender}
	}
}

// SessionSource colaborador de sesión que el guard lee y al que pide verificaciones.
// Lo implementa *session.Store.
type SessionSource interface {
	Snapshot() entity.AuthState
	TriggerCheck(ctx context.Context) bool
	Wait(ctx context.Context) (entity.AuthState, error)
}

// Guard evalúa pasadas sucesivas sobre la misma sesión y dispara la verificación
// solo al entrar en OutcomeRedirectLogin, no en cada pasada.
type Guard struct {
	src      SessionSource
	required entity.Role
	routes   Routes

	mu      sync.Mutex
	last    Outcome
	hasLast bool
}

// New construye un guard para el rol requerido.
func New(src SessionSource, required entity.Role, routes Routes) *Guard {
	return &Guard{src: src, required: required, routes: routes}
}

// Check evalúa una pasada con el estado actual.
func (g *Guard) Check(ctx context.Context, path string) Decision {
	d := Evaluate(g.src.Snapshot(), g.required, path, g.routes)
	if g.record(d.Outcome) {
		g.src.TriggerCheck(ctx)
	}
	return d
}

// Resolve como Check, pero si la pasada queda pendiente de una verificación espera a que
// termine y devuelve la decisión definitiva. Pensado para peticiones HTTP, que no se re-renderizan.
func (g *Guard) Resolve(ctx context.Context, path string) (Decision, error) {
	d := g.Check(ctx, path)
	if d.Outcome == OutcomeRender || d.Outcome == OutcomeRedirectHome {
		return d, nil
	}
	state, err := g.src.Wait(ctx)
	if err != nil {
		return d, err
	}
	d = Evaluate(state, g.required, path, g.routes)
	g.record(d.Outcome)
	return d, nil
}

// record guarda el resultado y devuelve true si es una transición hacia OutcomeRedirectLogin.
func (g *Guard) record(o Outcome) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	entering := o == OutcomeRedirectLogin && (!g.hasLast || g.last != OutcomeRedirectLogin)
	g.last, g.hasLast = o, true
	return entering
}
