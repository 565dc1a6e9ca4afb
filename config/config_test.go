package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_NAME", "CSV_FILE", "LOAD_BATCH_SIZE", "LOAD_TRANSACTIONAL", "DB_DSN"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "bank_branches.db", cfg.DBName)
	assert.Equal(t, "bank_branches.csv", cfg.CSVFile)
	assert.Equal(t, 500, cfg.LoadBatchSize)
	assert.True(t, cfg.LoadTransactional)
}

func TestLoadConfigReturnsValidatedConfig(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_NAME", ":memory:")
	t.Setenv("CSV_FILE", "branches.csv")

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, ":memory:", cfg.DSN())
	assert.Equal(t, "branches.csv", cfg.CSVFile)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("LOAD_BATCH_SIZE", "50")
	t.Setenv("LOAD_TRANSACTIONAL", "false")

	cfg := FromEnv()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 50, cfg.LoadBatchSize)
	assert.False(t, cfg.LoadTransactional)
}

func TestFromEnvBadNumbersFallBack(t *testing.T) {
	t.Setenv("LOAD_BATCH_SIZE", "lots")
	t.Setenv("LOAD_TRANSACTIONAL", "maybe")

	cfg := FromEnv()
	assert.Equal(t, 500, cfg.LoadBatchSize)
	assert.True(t, cfg.LoadTransactional)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.DBDriver = "oracle" }, wantErr: "DBDriver"},
		{name: "non numeric port", mutate: func(c *Config) { c.Port = "http" }, wantErr: "Port"},
		{name: "zero batch size", mutate: func(c *Config) { c.LoadBatchSize = 0 }, wantErr: "LoadBatchSize"},
		{name: "missing csv", mutate: func(c *Config) { c.CSVFile = "" }, wantErr: "CSVFile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Port:          "3000",
				CorsOrigins:   "*",
				DBDriver:      "sqlite",
				DBName:        ":memory:",
				CSVFile:       "bank_branches.csv",
				LoadBatchSize: 100,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "sqlite uses db name",
			cfg:  Config{DBDriver: "sqlite", DBName: "branches.db"},
			want: "branches.db",
		},
		{
			name: "postgres",
			cfg:  Config{DBDriver: "postgres", DBHost: "db", DBUser: "bank", DBPassword: "secret", DBName: "banks"},
			want: "host=db user=bank password=secret dbname=banks port=5432 sslmode=disable",
		},
		{
			name: "mysql",
			cfg:  Config{DBDriver: "mysql", DBHost: "db", DBPort: "3307", DBUser: "bank", DBPassword: "secret", DBName: "banks"},
			want: "bank:secret@tcp(db:3307)/banks?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			name: "explicit dsn wins",
			cfg:  Config{DBDriver: "postgres", DBName: "ignored", DBDsn: "postgres://u:p@h/db"},
			want: "postgres://u:p@h/db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
