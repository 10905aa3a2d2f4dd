package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"DB_PATH", "API_PORT", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
	"RETENTION_DAYS", "SEARCH_CACHE_TTL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	"CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT",
}

// isolateEnv clears every config variable for the test and moves into a temp
// directory without a .env file.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		// Setenv registers the restore; Unsetenv makes the key absent so
		// godotenv is allowed to fill it.
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
	t.Chdir(t.TempDir())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setupEnv    func(*testing.T)
		wantErr     bool
		checkConfig func(*testing.T, *Config)
	}{
		{
			name:     "defaults",
			setupEnv: func(*testing.T) {},
			checkConfig: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "./data/notes.db", cfg.DBPath)
				assert.Equal(t, "9000", cfg.APIPort)
				assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
				assert.Equal(t, "text", cfg.LogFormat)
				assert.Empty(t, cfg.LogFile)
				assert.Equal(t, 30*24*time.Hour, cfg.Retention)
				assert.Equal(t, 5*time.Minute, cfg.SearchCacheTTL)
				assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
				assert.Equal(t, 20.0, cfg.RateLimitRPS)
				assert.Equal(t, 40, cfg.RateLimitBurst)
				assert.Equal(t, []string{"http://localhost:*"}, cfg.CORSAllowedOrigins)
			},
		},
		{
			name: "custom values",
			setupEnv: func(t *testing.T) {
				t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "custom", "db.db"))
				t.Setenv("API_PORT", "8088")
				t.Setenv("LOG_LEVEL", "debug")
				t.Setenv("LOG_FORMAT", "JSON")
				t.Setenv("RETENTION_DAYS", "7")
				t.Setenv("SEARCH_CACHE_TTL", "30s")
				t.Setenv("RATE_LIMIT_RPS", "0")
				t.Setenv("RATE_LIMIT_BURST", "0")
				t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "db.db", filepath.Base(cfg.DBPath))
				assert.Equal(t, "8088", cfg.APIPort)
				assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
				assert.Equal(t, "json", cfg.LogFormat)
				assert.Equal(t, 7*24*time.Hour, cfg.Retention)
				assert.Equal(t, 30*time.Second, cfg.SearchCacheTTL)
				assert.Zero(t, cfg.RateLimitRPS, "rate limiting should be disabled")
				assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
			},
		},
		{
			name:     "invalid LOG_LEVEL",
			setupEnv: func(t *testing.T) { t.Setenv("LOG_LEVEL", "loud") },
			wantErr:  true,
		},
		{
			name:     "invalid LOG_FORMAT",
			setupEnv: func(t *testing.T) { t.Setenv("LOG_FORMAT", "xml") },
			wantErr:  true,
		},
		{
			name:     "invalid RETENTION_DAYS",
			setupEnv: func(t *testing.T) { t.Setenv("RETENTION_DAYS", "thirty") },
			wantErr:  true,
		},
		{
			name:     "zero RETENTION_DAYS",
			setupEnv: func(t *testing.T) { t.Setenv("RETENTION_DAYS", "0") },
			wantErr:  true,
		},
		{
			name:     "invalid SEARCH_CACHE_TTL",
			setupEnv: func(t *testing.T) { t.Setenv("SEARCH_CACHE_TTL", "5") },
			wantErr:  true,
		},
		{
			name:     "negative SHUTDOWN_TIMEOUT",
			setupEnv: func(t *testing.T) { t.Setenv("SHUTDOWN_TIMEOUT", "-1s") },
			wantErr:  true,
		},
		{
			name:     "negative RATE_LIMIT_RPS",
			setupEnv: func(t *testing.T) { t.Setenv("RATE_LIMIT_RPS", "-2") },
			wantErr:  true,
		},
		{
			name: "zero burst with rate limiting",
			setupEnv: func(t *testing.T) {
				t.Setenv("RATE_LIMIT_RPS", "5")
				t.Setenv("RATE_LIMIT_BURST", "0")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			tt.setupEnv(t)

			cfg, err := Load()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.checkConfig != nil {
				tt.checkConfig(t, cfg)
			}
		})
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	isolateEnv(t)

	require.NoError(t, os.WriteFile(".env", []byte("API_PORT=7777\nRETENTION_DAYS=3\n"), 0o600))
	// Real environment wins over .env.
	t.Setenv("RETENTION_DAYS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7777", cfg.APIPort, "value from .env")
	assert.Equal(t, 5*24*time.Hour, cfg.Retention, "environment value")
}

func TestLoad_CreatesDataDirectory(t *testing.T) {
	isolateEnv(t)

	dbPath := filepath.Join(t.TempDir(), "test", "db.db")
	t.Setenv("DB_PATH", dbPath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.DirExists(t, filepath.Dir(dbPath))
	assert.Equal(t, dbPath, cfg.DBPath)
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue string
		want         string
	}{
		{name: "env var set", value: "set-value", defaultValue: "default", want: "set-value"},
		{name: "empty env var uses default", value: "", defaultValue: "default", want: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV_VAR", tt.value)
			assert.Equal(t, tt.want, getEnv("TEST_ENV_VAR", tt.defaultValue))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList(" a, b ,,c "))
	assert.Empty(t, splitList(""))
}
