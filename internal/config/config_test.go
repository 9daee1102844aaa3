package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr())
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, map[string]string{
		"bankroll":      "15000",
		"stopLossLimit": "500",
		"winGoal":       "1000",
	}, cfg.Defaults.Settings())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DEFAULTS_BANKROLL", "25000")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "25000", cfg.Defaults.Bankroll)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "cassandra")

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db.local", Port: 5433,
		User: "poker", Password: "pw", Name: "tracker",
	}
	assert.Equal(t, "postgres://poker:pw@db.local:5433/tracker?sslmode=disable", d.DSN())
}
