package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/Inversiones-api/internal/application/analytics"
	"github.com/jhoicas/Inversiones-api/internal/application/auth"
	"github.com/jhoicas/Inversiones-api/internal/application/guard"
	"github.com/jhoicas/Inversiones-api/internal/application/syncmanager"
	"github.com/jhoicas/Inversiones-api/internal/application/syncstatus"
	"github.com/jhoicas/Inversiones-api/internal/application/usecase"
	"github.com/jhoicas/Inversiones-api/internal/infrastructure/cache"
	"github.com/jhoicas/Inversiones-api/internal/infrastructure/mock"
	"github.com/jhoicas/Inversiones-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Inversiones-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Inversiones-api/internal/interfaces/http"
	"github.com/jhoicas/Inversiones-api/pkg/config"
	"github.com/jhoicas/Inversiones-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_source", cfg.DB.DataSource).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Fuente de datos: fixtures en memoria o PostgreSQL, detrás de los mismos puertos
	var repos appanalytics.Repos
	switch cfg.DB.DataSource {
	case config.DataSourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repos = appanalytics.Repos{
			Users:       postgres.NewUserRepository(pool),
			Investments: postgres.NewInvestmentRepository(pool),
			Referrals:   postgres.NewReferralRepository(pool),
			Levels:      postgres.NewReferralLevelRepository(pool),
		}
	default:
		users, err := mock.NewUserRepository(cfg.Auth.DemoPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("usuarios de demo")
		}
		repos = appanalytics.Repos{
			Users:       users,
			Investments: mock.NewInvestmentRepository(),
			Referrals:   mock.NewReferralRepository(),
			Levels:      mock.NewReferralLevelRepository(),
		}
	}

	// Caché de snapshots: Redis si hay REDIS_ADDR, si no en memoria
	var snapshots appanalytics.SnapshotCache = cache.NewMemory()
	if cfg.Redis.Addr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		snapshots = cache.NewRedisSnapshots(client)
	}

	dashboardUC := appanalytics.NewDashboardUseCase(repos, snapshots, cfg.Redis.TTL, log)
	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.HomePath)

	// Sincronización: el manager alterna el flag; el indicador lo refleja con gracia
	syncFlag := syncstatus.NewFlag()
	indicator := syncstatus.NewIndicator(syncFlag, cfg.Sync.Grace, syncstatus.RealClock())
	defer indicator.Close()

	syncMgr := syncmanager.New(dashboardUC, syncFlag, time.Minute, log)
	if err := syncMgr.Start(cfg.Sync.Cron); err != nil {
		log.Fatal().Err(err).Str("cron", cfg.Sync.Cron).Msg("programar sincronización")
	}
	if err := syncMgr.TriggerAsync(ctx); err != nil {
		log.Warn().Err(err).Msg("sincronización inicial")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.AccessLog(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    "Inversiones API",
		}))
	} else {
		log.Warn().Str("path", cfg.HTTP.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "data_source": cfg.DB.DataSource})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       usecase.NewUserUseCase(repos.Users),
		InvestmentUC: usecase.NewInvestmentUseCase(repos.Investments),
		ReferralUC:   usecase.NewReferralUseCase(repos.Referrals, repos.Levels),
		DashboardUC:  dashboardUC,
		Reports:      pdf.NewReportGenerator(cfg.App.Name),
		SyncManager:  syncMgr,
		Indicator:    indicator,
		Routes:       guard.Routes{Login: cfg.Auth.LoginPath, Home: cfg.Auth.HomePath},
		CookieName:   cfg.Auth.CookieName,
		CookieTTL:    time.Duration(cfg.JWT.Expiration) * time.Minute,
		SecureCookie: cfg.App.Env == "production",
		Log:          log.Named("session"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	select {
	case <-syncMgr.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn().Msg("sincronización en curso no terminó a tiempo")
	}

	log.Info().Msg("aplicación detenida")
}
