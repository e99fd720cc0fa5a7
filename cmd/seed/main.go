// seed crea el esquema y carga los datos de demo (usuarios, inversiones, referidos y niveles)
// en PostgreSQL, para arrancar la API con DATA_SOURCE=postgres sobre los mismos datos que el modo mock.
//
// Uso: go run ./cmd/seed
// Lee la conexión de las mismas variables que la API (DATABASE_URL o DB_*).
// Los usuarios se crean con AUTH_DEMO_PASSWORD.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Inversiones-api/internal/infrastructure/mock"
	"github.com/jhoicas/Inversiones-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Inversiones-api/pkg/config"
	"github.com/jhoicas/Inversiones-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	data, err := demoData(ctx, cfg.Auth.DemoPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar datos de demo")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	err = postgres.NewTxRunner(pool).Run(ctx, func(q postgres.Querier) error {
		if err := postgres.Migrate(ctx, q); err != nil {
			return err
		}
		return postgres.Seed(ctx, q, data)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}

	log.Info().
		Int("users", len(data.Users)).
		Int("investments", len(data.Investments)).
		Int("referrals", len(data.Referrals)).
		Int("levels", len(data.Levels)).
		Msg("datos de demo cargados")
}

func demoData(ctx context.Context, password string) (postgres.SeedData, error) {
	var data postgres.SeedData
	users, err := mock.NewUserRepository(password)
	if err != nil {
		return data, err
	}
	if data.Users, err = users.List(ctx); err != nil {
		return data, err
	}
	if data.Investments, err = mock.NewInvestmentRepository().List(ctx); err != nil {
		return data, err
	}
	if data.Referrals, err = mock.NewReferralRepository().List(ctx); err != nil {
		return data, err
	}
	if data.Levels, err = mock.NewReferralLevelRepository().List(ctx); err != nil {
		return data, err
	}
	return data, nil
}
