package config

import (
	"fmt"
	"time"
)

// 헬스체크 항목 식별자
const (
	CheckPaymentBackend = "payment-backend"
	CheckDatastore      = "datastore"
	CheckCache          = "cache"
	CheckMemory         = "memory"
	CheckGoroutines     = "goroutines"
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug      bool             `json:"debug"`
	HTTPServer HTTPServerConfig `json:"http_server"`
	CORS       CORSConfig       `json:"cors"`
	Health     HealthConfig     `json:"health"`
	Payment    PaymentConfig    `json:"payment"`
	Datastore  DatastoreConfig  `json:"datastore"`
	Cache      CacheConfig      `json:"cache"`
	Downloads  DownloadsConfig  `json:"downloads"`
	Alert      AlertConfig      `json:"alert"`
}

// HTTPServerConfig 웹 서버의 포트 및 TLS(HTTPS) 설정
type HTTPServerConfig struct {
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,readable_file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,readable_file"`
}

// CORSConfig 교차 출처 리소스 공유(CORS) 정책
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

// HealthConfig 헬스체크 동작 설정
type HealthConfig struct {
	// 카테고리별 기본 타임아웃 (개별 체크에 타임아웃이 지정되지 않은 경우 사용)
	ReadinessTimeout time.Duration `json:"readiness_timeout" validate:"gt=0"`
	DetailedTimeout  time.Duration `json:"detailed_timeout" validate:"gt=0"`

	// 활성화할 헬스체크 항목
	EnabledChecks []string `json:"enabled_checks" validate:"unique,dive,oneof=payment-backend datastore cache memory goroutines"`

	// 주기적 헬스 리포트 로깅 스케줄 (비어 있으면 비활성화)
	ReportSchedule string `json:"report_schedule" validate:"omitempty,cron_spec"`

	MemoryWarnRatio        float64 `json:"memory_warn_ratio" validate:"gt=0,lte=1"`
	GoroutineWarnThreshold int     `json:"goroutine_warn_threshold" validate:"min=1"`
}

// IsEnabled 헬스체크 항목이 활성화되어 있는지 확인합니다.
func (c *HealthConfig) IsEnabled(name string) bool {
	for _, n := range c.EnabledChecks {
		if n == name {
			return true
		}
	}
	return false
}

// PaymentConfig 결제(MoMo) 백엔드 연동 설정
type PaymentConfig struct {
	BaseURL    string `json:"base_url" validate:"omitempty,http_url"`
	HealthPath string `json:"health_path" validate:"startswith=/"`
	Critical   bool   `json:"critical"`
}

// DatastoreConfig PostgreSQL 연결 설정
type DatastoreConfig struct {
	DSN      string `json:"dsn"`
	Critical bool   `json:"critical"`
}

// CacheConfig Redis 연결 설정
type CacheConfig struct {
	Addr     string `json:"addr" validate:"omitempty,hostname_port"`
	Password string `json:"password"`
	DB       int    `json:"db" validate:"min=0"`
	Critical bool   `json:"critical"`
}

// DownloadsConfig 정적 다운로드 파일 설정
type DownloadsConfig struct {
	Dir string `json:"dir"`
}

// AlertConfig 헬스 상태 변화 알림 설정
type AlertConfig struct {
	Telegram TelegramConfig `json:"telegram"`
}

// TelegramConfig 텔레그램 봇 설정. bot_token이 비어 있으면 알림을 보내지 않습니다.
type TelegramConfig struct {
	BotToken string `json:"bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required_with=BotToken"`
}

// Enabled 텔레그램 알림이 설정되어 있는지 확인합니다.
func (c *TelegramConfig) Enabled() bool {
	return c.BotToken != ""
}

// Default 설정 파일과 환경 변수가 모두 없을 때 적용되는 기본 설정을 반환합니다.
func Default() AppConfig {
	return AppConfig{
		Debug: false,
		HTTPServer: HTTPServerConfig{
			ListenPort: 3001,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
		},
		Health: HealthConfig{
			ReadinessTimeout:       2 * time.Second,
			DetailedTimeout:        5 * time.Second,
			EnabledChecks:          []string{CheckMemory, CheckGoroutines},
			MemoryWarnRatio:        0.9,
			GoroutineWarnThreshold: 10000,
		},
		Payment: PaymentConfig{
			HealthPath: "/health",
			Critical:   true,
		},
		Datastore: DatastoreConfig{
			Critical: true,
		},
		Cache: CacheConfig{
			Critical: false,
		},
		Downloads: DownloadsConfig{
			Dir: "public/downloads",
		},
	}
}

// VerifyRecommendations 강제하지는 않지만 운영 안정성을 위해 권장되는 설정 준수 여부를 진단합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.HTTPServer.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.HTTPServer.ListenPort))
	}
	if c.Health.ReadinessTimeout > c.Health.DetailedTimeout {
		warnings = append(warnings, fmt.Sprintf("readiness_timeout(%s)이 detailed_timeout(%s)보다 깁니다", c.Health.ReadinessTimeout, c.Health.DetailedTimeout))
	}
	if len(c.Health.EnabledChecks) == 0 {
		warnings = append(warnings, "활성화된 헬스체크 항목이 없습니다. /health/ready는 항상 pass를 반환합니다")
	}
	if c.Alert.Telegram.Enabled() && c.Health.ReportSchedule == "" {
		warnings = append(warnings, "텔레그램 알림이 설정되었지만 health.report_schedule이 비어 있어 상태 변화 알림이 발송되지 않습니다")
	}
	if c.Cache.Critical && c.Health.IsEnabled(CheckCache) {
		warnings = append(warnings, "캐시(cache)가 critical로 설정되었습니다. 캐시 장애 시 인스턴스가 트래픽에서 제외됩니다")
	}

	return warnings
}
