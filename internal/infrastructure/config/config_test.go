package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shopEnvKeys lists every variable the config tests touch. Clearing them
// through t.Setenv keeps the originals restored after each test.
var shopEnvKeys = []string{
	"SHOP_APP_NAME",
	"SHOP_APP_ENV",
	"SHOP_APP_PORT",
	"SHOP_DATABASE_HOST",
	"SHOP_DATABASE_PORT",
	"SHOP_DATABASE_USER",
	"SHOP_DATABASE_PASSWORD",
	"SHOP_DATABASE_DBNAME",
	"SHOP_DATABASE_SSLMODE",
	"SHOP_DATABASE_MAX_OPEN_CONNS",
	"SHOP_DATABASE_MAX_IDLE_CONNS",
	"SHOP_HIBOB_BASE_URL",
	"SHOP_HIBOB_SERVICE_USER_ID",
	"SHOP_HIBOB_SERVICE_USER_TOKEN",
	"SHOP_SYNC_PURCHASE_INTERVAL",
	"APP_ENV",
}

// clearShopEnv blanks the whole SHOP_* surface. Viper treats empty env
// values as unset, so defaults apply.
func clearShopEnv(t *testing.T) {
	t.Helper()
	for _, k := range shopEnvKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearShopEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "homeoffice-shop", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "", cfg.Database.Password)
	assert.Equal(t, "homeoffice_shop", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, "https://api.hibob.com/v1", cfg.HiBob.BaseURL)
	assert.Equal(t, 30, cfg.HiBob.TimeoutSeconds)
}

func TestLoad_ReadsShopPrefixedEnv(t *testing.T) {
	clearShopEnv(t)
	t.Setenv("SHOP_APP_NAME", "test-app")
	t.Setenv("SHOP_APP_ENV", "testing")
	t.Setenv("SHOP_APP_PORT", "9000")
	t.Setenv("SHOP_DATABASE_HOST", "testdb.local")
	t.Setenv("SHOP_DATABASE_PORT", "5433")
	t.Setenv("SHOP_DATABASE_USER", "testuser")
	t.Setenv("SHOP_DATABASE_PASSWORD", "testpass")
	t.Setenv("SHOP_DATABASE_DBNAME", "testdb")
	t.Setenv("SHOP_DATABASE_SSLMODE", "require")
	t.Setenv("SHOP_DATABASE_MAX_OPEN_CONNS", "50")
	t.Setenv("SHOP_DATABASE_MAX_IDLE_CONNS", "10")
	t.Setenv("SHOP_HIBOB_BASE_URL", "https://hibob.sandbox.local/v1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-app", cfg.App.Name)
	assert.Equal(t, "testing", cfg.App.Env)
	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "testdb.local", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "testuser", cfg.Database.User)
	assert.Equal(t, "testpass", cfg.Database.Password)
	assert.Equal(t, "testdb", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Equal(t, "https://hibob.sandbox.local/v1", cfg.HiBob.BaseURL)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("max idle conns cannot exceed max open conns", func(t *testing.T) {
		clearShopEnv(t)
		t.Setenv("SHOP_DATABASE_MAX_OPEN_CONNS", "10")
		t.Setenv("SHOP_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero max open conns falls back to the default", func(t *testing.T) {
		clearShopEnv(t)
		t.Setenv("SHOP_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})

	t.Run("negative max idle conns is rejected", func(t *testing.T) {
		clearShopEnv(t)
		t.Setenv("SHOP_DATABASE_MAX_IDLE_CONNS", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns cannot be negative")
	})

	t.Run("purchase sync interval has a lower bound", func(t *testing.T) {
		clearShopEnv(t)
		t.Setenv("SHOP_SYNC_PURCHASE_INTERVAL", "10s")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sync.purchase_interval")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	// setProduction applies a fully valid production environment; tests
	// blank out the piece under scrutiny.
	setProduction := func(t *testing.T) {
		t.Helper()
		clearShopEnv(t)
		t.Setenv("SHOP_APP_ENV", "production")
		t.Setenv("SHOP_DATABASE_PASSWORD", "secure-password")
		t.Setenv("SHOP_DATABASE_SSLMODE", "require")
		t.Setenv("SHOP_HIBOB_SERVICE_USER_ID", "svc-user")
		t.Setenv("SHOP_HIBOB_SERVICE_USER_TOKEN", "svc-token")
	}

	t.Run("requires a database password", func(t *testing.T) {
		setProduction(t)
		t.Setenv("SHOP_DATABASE_PASSWORD", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("rejects disabled SSL", func(t *testing.T) {
		setProduction(t)
		t.Setenv("SHOP_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("requires hibob credentials", func(t *testing.T) {
		setProduction(t)
		t.Setenv("SHOP_HIBOB_SERVICE_USER_ID", "")
		t.Setenv("SHOP_HIBOB_SERVICE_USER_TOKEN", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "hibob.service_user_id")
	})

	t.Run("passes with a complete production config", func(t *testing.T) {
		setProduction(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
		SSLMode:  "disable",
	}

	t.Run("contains every connection component", func(t *testing.T) {
		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost")
		assert.Contains(t, dsn, "5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in the password", func(t *testing.T) {
		withSpecials := cfg
		withSpecials.Password = "pass@word#123"
		assert.Contains(t, withSpecials.DSN(), "pass%40word%23123")
	})

	t.Run("tolerates an empty password", func(t *testing.T) {
		noPass := cfg
		noPass.Password = ""
		assert.NotEmpty(t, noPass.DSN())
	})
}
