package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name       string
		configFile string
		validate   func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
ledger:
  initial_height: 100
  block_time: "2s"
  faucet_amount: 1000
auth:
  jwt_public_key: "test-key"
  api_keys:
    - key-one
    - key-two
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "testdb", cfg.Database.DBName)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, uint64(100), cfg.Ledger.InitialHeight)
				assert.Equal(t, 2*time.Second, cfg.Ledger.BlockTime)
				assert.Equal(t, uint64(1000), cfg.Ledger.FaucetAmount)
				assert.Equal(t, []string{"key-one", "key-two"}, cfg.Auth.APIKeys)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "RENTAL_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "rental.events", cfg.NATS.SubjectPrefix)
				assert.Equal(t, time.Second, cfg.Ledger.BlockTime)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.configFile)
			cfg, err := LoadAPIConfig(path, t.TempDir())
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadSweeperConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfigFile(t, `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
reclaim_sweeper:
  interval: "10s"
  batch_size: 50
  pool_size: 4
`)
		cfg, err := LoadSweeperConfig(path, t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, cfg.ReclaimSweeper.Interval)
		assert.Equal(t, 50, cfg.ReclaimSweeper.BatchSize)
		assert.Equal(t, 4, cfg.ReclaimSweeper.PoolSize)
		// Sweeper-specific pool defaults
		assert.Equal(t, 5, cfg.Database.MaxOpenConns)
		assert.Equal(t, 2, cfg.Database.MaxIdleConns)
	})

	t.Run("missing database host", func(t *testing.T) {
		path := writeConfigFile(t, `
database:
  dbname: testdb
`)
		_, err := LoadSweeperConfig(path, t.TempDir())
		assert.Error(t, err)
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "user",
		Password: "pass",
		DBName:   "rental",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=user password=pass dbname=rental sslmode=disable",
		cfg.DSN())
}
