package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inversiones-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DataSourceMock, cfg.DB.DataSource)
	assert.Equal(t, time.Second, cfg.Sync.Grace)
	assert.Equal(t, "/login", cfg.Auth.LoginPath)
	assert.Equal(t, "/dashboard", cfg.Auth.HomePath)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_SobrescrituraPorEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("SYNC_GRACE", "1500")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATA_SOURCE", "POSTGRES")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 1500*time.Millisecond, cfg.Sync.Grace)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.DataSourcePostgres, cfg.DB.DataSource)
}

func TestLoad_SinSecretoFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/inv?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
