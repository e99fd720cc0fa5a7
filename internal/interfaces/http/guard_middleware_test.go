package http_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inversiones-api/internal/application/auth"
	"github.com/jhoicas/Inversiones-api/internal/application/guard"
	"github.com/jhoicas/Inversiones-api/internal/infrastructure/mock"
	apphttp "github.com/jhoicas/Inversiones-api/internal/interfaces/http"
	"github.com/jhoicas/Inversiones-api/pkg/logger"
)

func guardedApp(t *testing.T, buf *bytes.Buffer) *fiber.App {
	t.Helper()
	users, err := mock.NewUserRepository("demo1234")
	require.NoError(t, err)
	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, "/dashboard")

	log := logger.New(logger.Config{Env: "production", Level: "debug", Output: buf})
	app := fiber.New()
	app.Use(apphttp.RequestID())
	app.Get("/privado", apphttp.RequireSession(authUC, apphttp.GuardConfig{
		Routes:     guard.DefaultRoutes(),
		CookieName: testCookie,
		Log:        log,
	}, ""), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		out = append(out, entry)
	}
	return out
}

func TestRequireSession_RegistraTransicionesDeSesion(t *testing.T) {
	var buf bytes.Buffer
	app := guardedApp(t, &buf)

	resp := doRequest(t, app, http.MethodGet, "/privado", bearer(t, mock.EmployeeID2, "employee"))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	lines := logLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, true, lines[0]["loading"])
	assert.Equal(t, false, lines[0]["authenticated"])
	assert.Equal(t, false, lines[1]["loading"])
	assert.Equal(t, true, lines[1]["authenticated"])
	assert.Equal(t, mock.EmployeeID2, lines[1]["user_id"])
	assert.NotEmpty(t, lines[1]["request_id"])
}

func TestRequireSession_TokenInvalidoRegistraError(t *testing.T) {
	var buf bytes.Buffer
	app := guardedApp(t, &buf)

	resp := doRequest(t, app, http.MethodGet, "/privado", "Bearer no.es.valido")
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	lines := logLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, false, lines[1]["authenticated"])
	assert.NotEmpty(t, lines[1]["error"])
}
