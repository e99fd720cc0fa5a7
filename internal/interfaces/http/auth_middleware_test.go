package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/Inversiones-api/internal/application/analytics"
	"github.com/jhoicas/Inversiones-api/internal/application/auth"
	"github.com/jhoicas/Inversiones-api/internal/application/guard"
	"github.com/jhoicas/Inversiones-api/internal/application/syncmanager"
	"github.com/jhoicas/Inversiones-api/internal/application/syncstatus"
	"github.com/jhoicas/Inversiones-api/internal/application/usecase"
	"github.com/jhoicas/Inversiones-api/internal/infrastructure/cache"
	"github.com/jhoicas/Inversiones-api/internal/infrastructure/mock"
	"github.com/jhoicas/Inversiones-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Inversiones-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Inversiones-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "inversiones-api-test"
	testExpMin    = 60
	testCookie    = "session"
)

// buildTestApp construye la aplicación completa sobre los repositorios mock.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	users, err := mock.NewUserRepository("demo1234")
	require.NoError(t, err)
	investments := mock.NewInvestmentRepository()
	referrals := mock.NewReferralRepository()
	levels := mock.NewReferralLevelRepository()

	dashboardUC := appanalytics.NewDashboardUseCase(appanalytics.Repos{
		Users: users, Investments: investments, Referrals: referrals, Levels: levels,
	}, cache.NewMemory(), time.Minute, nil)

	flag := syncstatus.NewFlag()
	indicator := syncstatus.NewIndicator(flag, syncstatus.DefaultGrace, syncstatus.RealClock())
	t.Cleanup(indicator.Close)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Use(apphttp.RequestID())
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, "/dashboard"),
		UserUC:       usecase.NewUserUseCase(users),
		InvestmentUC: usecase.NewInvestmentUseCase(investments),
		ReferralUC:   usecase.NewReferralUseCase(referrals, levels),
		DashboardUC:  dashboardUC,
		Reports:      pdf.NewReportGenerator("Inversiones Test"),
		SyncManager:  syncmanager.New(dashboardUC, flag, 0, nil),
		Indicator:    indicator,
		Routes:       guard.DefaultRoutes(),
		CookieName:   testCookie,
		CookieTTL:    time.Hour,
	})
	return app
}

// bearer genera el header Authorization para un usuario de los fixtures.
func bearer(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, userID+"@inversiones.test", role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, method, target, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard de acceso
// ──────────────────────────────────────────────────────────────────────────────

// Sin sesión → login conservando la ruta pedida.
func TestGuard_SinSesionRedirigeALogin(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/admin/users", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?redirect=%2Fadmin%2Fusers", resp.Header.Get("Location"))
}

// Empleado en vista de admin → vista por defecto, sin error.
func TestGuard_EmpleadoEnVistaAdminRedirigeADashboard(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/admin/users", bearer(t, mock.EmployeeID1, "employee"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

// El rol del token no basta: se toma el del usuario en la fuente de datos.
func TestGuard_RolDelTokenNoEleva(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/admin/users", bearer(t, mock.EmployeeID1, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestGuard_AdminAccedeVistaAdmin(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/admin/users", bearer(t, mock.AdminID, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Items []map[string]any `json:"items"`
	}
	decode(t, resp, &body)
	assert.Len(t, body.Items, 3)
}

func TestGuard_TokenInvalidoRedirigeALogin(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/dashboard/referrals?status=active", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?redirect=%2Fdashboard%2Freferrals%3Fstatus%3Dactive", resp.Header.Get("Location"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Vistas de empleado
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_EmpleadoVeSuResumen(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/dashboard", bearer(t, mock.EmployeeID2, "employee"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		User struct {
			Name string `json:"name"`
		} `json:"user"`
		Level struct {
			Current struct {
				Name string `json:"name"`
			} `json:"current"`
			Volume int `json:"volume"`
		} `json:"level"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "Ana Torres", body.User.Name)
	assert.Equal(t, "Plata", body.Level.Current.Name)
	assert.Equal(t, 3, body.Level.Volume)
}

func TestReferrals_EmpleadoSoloVeLosSuyos(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/dashboard/referrals", bearer(t, mock.EmployeeID2, "employee"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Items []struct {
			EmployeeID string `json:"employee_id"`
		} `json:"items"`
	}
	decode(t, resp, &body)
	require.Len(t, body.Items, 4)
	for _, it := range body.Items {
		assert.Equal(t, mock.EmployeeID2, it.EmployeeID)
	}
}

func TestReport_AdminDescargaPDF(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/admin/dashboard/report.pdf", bearer(t, mock.AdminID, "admin"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

func TestInvestments_StatusInvalido(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/admin/investments?status=cancelada", bearer(t, mock.AdminID, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_FijaCookieYReanudaRuta(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"laura.gomez@inversiones.test","password":"demo1234","redirect":"/admin/users"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookie {
			cookie = ck
		}
	}
	require.NotNil(t, cookie, "debe fijarse la cookie de sesión")
	assert.True(t, cookie.HttpOnly)

	var body struct {
		Token      string `json:"token"`
		RedirectTo string `json:"redirect_to"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "/admin/users", body.RedirectTo)
	assert.Equal(t, cookie.Value, body.Token)

	// la cookie sola autentica
	req = httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: cookie.Value})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"carlos.ruiz@inversiones.test","password":"mala"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMe_EstadoDeSesion(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/auth/me", "")
	var anon map[string]any
	decode(t, resp, &anon)
	assert.Equal(t, false, anon["is_authenticated"])
	assert.Equal(t, false, anon["is_loading"])

	resp = doRequest(t, app, http.MethodGet, "/api/auth/me", bearer(t, mock.AdminID, "admin"))
	var authed struct {
		IsAuthenticated bool `json:"is_authenticated"`
		User            struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	decode(t, resp, &authed)
	assert.True(t, authed.IsAuthenticated)
	assert.Equal(t, "admin", authed.User.Role)
}

func TestLoginPage_DescartaRedireccionExterna(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/login?redirect=%2Fadmin%2Fusers", "")
	var ok map[string]string
	decode(t, resp, &ok)
	assert.Equal(t, "/admin/users", ok["redirect"])

	resp = doRequest(t, app, http.MethodGet, "/login?redirect=%2F%2Fevil.test", "")
	var evil map[string]string
	decode(t, resp, &evil)
	assert.Empty(t, evil["redirect"])

	resp = doRequest(t, app, http.MethodGet, "/login?redirect=%2F%09%2Fevil.test", "")
	var tab map[string]string
	decode(t, resp, &tab)
	assert.Empty(t, tab["redirect"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Sincronización
// ──────────────────────────────────────────────────────────────────────────────

func TestSync_DisparoManualMuestraIndicador(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/sync/status", "")
	var idle map[string]any
	decode(t, resp, &idle)
	assert.Equal(t, false, idle["visible"])

	resp = doRequest(t, app, http.MethodPost, "/admin/sync", bearer(t, mock.AdminID, "admin"))
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	var started map[string]any
	decode(t, resp, &started)
	assert.Equal(t, true, started["visible"], "visible desde el inicio de la sincronización")

	deadline := time.Now().Add(2 * time.Second)
	for {
		r := doRequest(t, app, http.MethodGet, "/api/sync/status", "")
		var st map[string]any
		decode(t, r, &st)
		if st["last_run"] != nil && st["sync_in_progress"] == false {
			break
		}
		require.True(t, time.Now().Before(deadline), "la sincronización debe terminar")
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSync_EmpleadoNoPuedeDisparar(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/admin/sync", bearer(t, mock.EmployeeID1, "employee"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestRequestID_SePropagaOGenera(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/sync/status", "")
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
	req.Header.Set("X-Request-Id", "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "req-123", resp.Header.Get("X-Request-Id"))
}
