package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/momo-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== Test Helpers =====

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

// ===== Load =====

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
}

func TestLoadWithFile_MissingFile(t *testing.T) {
	_, err := LoadWithFile(filepath.Join(t.TempDir(), "none.json"))

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
	assert.Contains(t, err.Error(), "설정 파일을 찾을 수 없습니다")
}

func TestLoadWithFile_Overrides(t *testing.T) {
	path := writeConfigFile(t, `{
		"debug": true,
		"http_server": { "listen_port": 8443 },
		"cors": { "allow_origins": ["https://momo.example.com"] },
		"health": {
			"readiness_timeout": "1500ms",
			"enabled_checks": ["PaymentBackend", "datastore", "memory"],
			"report_schedule": "0 */1 * * * *"
		},
		"payment": { "base_url": "http://payment.internal:9000" },
		"datastore": { "dsn": "postgres://momo@localhost/momo?sslmode=disable" }
	}`)

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 8443, cfg.HTTPServer.ListenPort)
	assert.Equal(t, []string{"https://momo.example.com"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 1500*time.Millisecond, cfg.Health.ReadinessTimeout)
	assert.Equal(t, 5*time.Second, cfg.Health.DetailedTimeout, "지정하지 않은 값은 기본값 유지")
	assert.Equal(t, []string{CheckPaymentBackend, CheckDatastore, CheckMemory}, cfg.Health.EnabledChecks)
	assert.Equal(t, "/health", cfg.Payment.HealthPath)
	assert.True(t, cfg.Datastore.Critical)
}

func TestLoadWithFile_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `{ "http_server": { "listen_port": 8080 } }`)

	t.Setenv("MOMO_HTTP_SERVER__LISTEN_PORT", "9090")
	t.Setenv("MOMO_HEALTH__DETAILED_TIMEOUT", "7s")
	t.Setenv("MOMO_HEALTH__ENABLED_CHECKS", "cache, ,goroutines")
	t.Setenv("MOMO_CACHE__ADDR", "localhost:6379")
	t.Setenv("MOMO_CACHE__CRITICAL", "true")
	t.Setenv("MOMO_ALERT__TELEGRAM__BOT_TOKEN", "123456:ABC")
	t.Setenv("MOMO_ALERT__TELEGRAM__CHAT_ID", "-100123")

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.ListenPort)
	assert.Equal(t, 7*time.Second, cfg.Health.DetailedTimeout)
	assert.Equal(t, []string{CheckCache, CheckGoroutines}, cfg.Health.EnabledChecks)
	assert.Equal(t, "localhost:6379", cfg.Cache.Addr)
	assert.True(t, cfg.Cache.Critical)
	assert.True(t, cfg.Alert.Telegram.Enabled())
	assert.Equal(t, int64(-100123), cfg.Alert.Telegram.ChatID)
}

func TestLoadWithFile_UnknownKey(t *testing.T) {
	t.Run("파일", func(t *testing.T) {
		path := writeConfigFile(t, `{ "http_server": { "listen_prot": 8080 } }`)

		_, err := LoadWithFile(path)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})

	t.Run("환경 변수", func(t *testing.T) {
		t.Setenv("MOMO_UNKNOWN_OPTION", "1")

		_, err := LoadWithFile(writeConfigFile(t, `{}`))
		require.Error(t, err)
	})
}

func TestLoadWithFile_MalformedJSON(t *testing.T) {
	_, err := LoadWithFile(writeConfigFile(t, `{ "debug": `))

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
}

// ===== Validation =====

func TestAppConfig_Validate(t *testing.T) {
	t.Parallel()

	certFile := filepath.Join(t.TempDir(), "cert.pem")
	require.NoError(t, os.WriteFile(certFile, []byte("cert"), 0600))

	tests := []struct {
		name        string
		modify      func(c *AppConfig)
		expectError string
	}{
		{
			name:   "성공: 기본값",
			modify: func(c *AppConfig) {},
		},
		{
			name: "성공: TLS 활성화",
			modify: func(c *AppConfig) {
				c.HTTPServer.TLSServer = true
				c.HTTPServer.TLSCertFile = certFile
				c.HTTPServer.TLSKeyFile = certFile
			},
		},
		{
			name:        "실패: 포트 범위",
			modify:      func(c *AppConfig) { c.HTTPServer.ListenPort = 70000 },
			expectError: "http_server.listen_port",
		},
		{
			name:        "실패: TLS 인증서 누락",
			modify:      func(c *AppConfig) { c.HTTPServer.TLSServer = true },
			expectError: "http_server.tls_cert_file",
		},
		{
			name: "실패: TLS 인증서 파일 없음",
			modify: func(c *AppConfig) {
				c.HTTPServer.TLSServer = true
				c.HTTPServer.TLSCertFile = "/nonexistent/cert.pem"
				c.HTTPServer.TLSKeyFile = certFile
			},
			expectError: "파일을 읽을 수 없습니다",
		},
		{
			name:        "실패: CORS Origin 형식",
			modify:      func(c *AppConfig) { c.CORS.AllowOrigins = []string{"localhost:3000"} },
			expectError: "CORS Origin 형식",
		},
		{
			name:        "실패: CORS 목록 비어있음",
			modify:      func(c *AppConfig) { c.CORS.AllowOrigins = nil },
			expectError: "cors.allow_origins",
		},
		{
			name:        "실패: 와일드카드 혼용",
			modify:      func(c *AppConfig) { c.CORS.AllowOrigins = []string{"*", "http://localhost:3000"} },
			expectError: "와일드카드",
		},
		{
			name:        "실패: 타임아웃 0",
			modify:      func(c *AppConfig) { c.Health.ReadinessTimeout = 0 },
			expectError: "health.readiness_timeout",
		},
		{
			name:        "실패: 알 수 없는 헬스체크 항목",
			modify:      func(c *AppConfig) { c.Health.EnabledChecks = []string{"disk"} },
			expectError: "알 수 없는 값",
		},
		{
			name:        "실패: 중복 헬스체크 항목",
			modify:      func(c *AppConfig) { c.Health.EnabledChecks = []string{CheckMemory, CheckMemory} },
			expectError: "중복된 값",
		},
		{
			name:        "실패: Cron 표현식",
			modify:      func(c *AppConfig) { c.Health.ReportSchedule = "*/5 * * * *" },
			expectError: "Cron 표현식",
		},
		{
			name:        "실패: 메모리 경고 비율",
			modify:      func(c *AppConfig) { c.Health.MemoryWarnRatio = 1.5 },
			expectError: "health.memory_warn_ratio",
		},
		{
			name:        "실패: payment-backend 활성화 시 base_url 필요",
			modify:      func(c *AppConfig) { c.Health.EnabledChecks = []string{CheckPaymentBackend} },
			expectError: "payment.base_url",
		},
		{
			name:        "실패: datastore 활성화 시 dsn 필요",
			modify:      func(c *AppConfig) { c.Health.EnabledChecks = []string{CheckDatastore} },
			expectError: "datastore.dsn",
		},
		{
			name:        "실패: cache 활성화 시 addr 필요",
			modify:      func(c *AppConfig) { c.Health.EnabledChecks = []string{CheckCache} },
			expectError: "cache.addr",
		},
		{
			name:        "실패: cache 주소 형식",
			modify:      func(c *AppConfig) { c.Cache.Addr = "localhost" },
			expectError: "cache.addr",
		},
		{
			name: "성공: 텔레그램 알림",
			modify: func(c *AppConfig) {
				c.Alert.Telegram.BotToken = "123456:ABC"
				c.Alert.Telegram.ChatID = -1001234567890
			},
		},
		{
			name:        "실패: 텔레그램 chat_id 누락",
			modify:      func(c *AppConfig) { c.Alert.Telegram.BotToken = "123456:ABC" },
			expectError: "alert.telegram.chat_id",
		},
		{
			name:        "실패: payment base_url 형식",
			modify:      func(c *AppConfig) { c.Payment.BaseURL = "payment.internal" },
			expectError: "payment.base_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.modify(&cfg)

			err := cfg.validate()
			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestAppConfig_Normalize(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Health.EnabledChecks = []string{" PaymentBackend ", "payment_backend", "", "Goroutines"}
	cfg.CORS.AllowOrigins = []string{" http://localhost:3000 "}

	cfg.normalize()

	assert.Equal(t, []string{"payment-backend", "payment-backend", "goroutines"}, cfg.Health.EnabledChecks)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowOrigins)
}

func TestAppConfig_VerifyRecommendations(t *testing.T) {
	t.Parallel()

	t.Run("기본값은 경고 없음", func(t *testing.T) {
		cfg := Default()
		assert.Empty(t, cfg.VerifyRecommendations())
	})

	t.Run("예약 포트 및 타임아웃 역전", func(t *testing.T) {
		cfg := Default()
		cfg.HTTPServer.ListenPort = 80
		cfg.Health.ReadinessTimeout = 10 * time.Second
		cfg.Health.EnabledChecks = nil

		warnings := cfg.VerifyRecommendations()
		assert.Len(t, warnings, 3)
	})

	t.Run("스케줄 없는 텔레그램 알림", func(t *testing.T) {
		cfg := Default()
		cfg.Alert.Telegram.BotToken = "123456:ABC"
		cfg.Alert.Telegram.ChatID = 1

		assert.Len(t, cfg.VerifyRecommendations(), 1)
	})
}

func TestEnvKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "health.enabled_checks", envKey("MOMO_HEALTH__ENABLED_CHECKS"))
	assert.Equal(t, "debug", envKey("MOMO_DEBUG"))
}
