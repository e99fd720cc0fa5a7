package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Inversiones-api/internal/application/analytics"
	"github.com/jhoicas/Inversiones-api/internal/application/auth"
	"github.com/jhoicas/Inversiones-api/internal/application/guard"
	"github.com/jhoicas/Inversiones-api/internal/application/syncmanager"
	"github.com/jhoicas/Inversiones-api/internal/application/syncstatus"
	"github.com/jhoicas/Inversiones-api/internal/application/usecase"
	"github.com/jhoicas/Inversiones-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Inversiones-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	InvestmentUC *usecase.InvestmentUseCase
	ReferralUC   *usecase.ReferralUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	Reports      *pdf.ReportGenerator
	SyncManager  *syncmanager.Manager
	Indicator    *syncstatus.Indicator
	Routes       guard.Routes
	CookieName   string
	CookieTTL    time.Duration
	SecureCookie bool
	Log          *logger.Logger
}

// Router registra las rutas de la API y de las vistas protegidas.
func Router(app *fiber.App, deps RouterDeps) {
	guardCfg := GuardConfig{Routes: deps.Routes, CookieName: deps.CookieName, Log: deps.Log}
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieName, deps.CookieTTL, deps.SecureCookie)

	// Login (público): destino de las redirecciones del guard
	app.Get(deps.Routes.Login, authHandler.LoginPage)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)

	syncHandler := NewSyncHandler(deps.SyncManager, deps.Indicator)
	api.Get("/sync/status", syncHandler.Status)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, reportsOrNil(deps.Reports))
	investmentHandler := NewInvestmentHandler(deps.InvestmentUC)
	referralHandler := NewReferralHandler(deps.ReferralUC)
	userHandler := NewUserHandler(deps.UserUC)

	// Vistas de empleado: cualquier usuario autenticado
	employee := app.Group("/dashboard", RequireSession(deps.AuthUC, guardCfg, ""))
	employee.Get("/", dashboardHandler.Employee)
	employee.Get("/investments", investmentHandler.ListMine)
	employee.Get("/referrals", referralHandler.ListMine)
	employee.Get("/levels", referralHandler.Levels)

	// Vistas de administrador
	admin := app.Group("/admin", RequireAdmin(deps.AuthUC, guardCfg))
	admin.Get("/dashboard", dashboardHandler.Admin)
	admin.Get("/dashboard/report.pdf", dashboardHandler.Report)
	admin.Get("/investments", investmentHandler.ListAll)
	admin.Get("/referrals", referralHandler.ListAll)
	admin.Get("/users", userHandler.List)
	admin.Post("/sync", syncHandler.Trigger)
}

// reportsOrNil evita un reportGenerator no nil con puntero nil dentro.
func reportsOrNil(g *pdf.ReportGenerator) reportGenerator {
	if g == nil {
		return nil
	}
	return g
}
