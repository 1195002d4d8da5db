package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (30초)
	// 헬스체크는 자체 타임아웃(최대 detailed_timeout)으로 먼저 끝나므로 프록시 요청에만 실질적으로 적용됩니다.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기 (10MB)
	// 결제 백엔드로 전달되는 요청 본문을 고려한 값입니다.
	DefaultMaxBodySize = "10M"

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간 (Slowloris 방어)
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultReadTimeout 요청 전체(본문 포함) 읽기 최대 대기 시간
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout 응답 쓰기 최대 대기 시간
	DefaultWriteTimeout = 60 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 최대 유휴 시간
	DefaultIdleTimeout = 120 * time.Second

	// DefaultRateLimitPerSecond IP별 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP별 버스트 허용량
	DefaultRateLimitBurst = 40
)

// HTTP 경로 상수입니다.
const (
	PathRoot           = "/"
	PathHealth         = "/health"
	PathHealthLive     = "/health/live"
	PathHealthReady    = "/health/ready"
	PathHealthDetailed = "/health/detailed"
	PathVersion        = "/version"
	PathMomoAPI        = "/api/momo"
	PathDownloads      = "/downloads"
	PathSwagger        = "/swagger"
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"access_key",
	"secret_key",
	"signature",
	"password",
	"token",
	"secret",
}
