package api

import (
	"net/http"
	"slices"
	"time"

	"github.com/darkkaiser/momo-server/internal/service/api/constants"
	"github.com/darkkaiser/momo-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/momo-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/momo-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS HTTPS로 서비스할 때 Strict-Transport-Security 헤더를 추가합니다.
	EnableHSTS bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (기본값: constants.DefaultRequestTimeout)
	RequestTimeout time.Duration
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery: 핸들러와 이후 미들웨어의 panic 복구
//  2. RequestID: X-Request-ID 부여 (로깅보다 먼저 적용되어야 로그에 포함됨)
//  3. Server 헤더 제거: 기술 스택 노출 방지
//  4. HTTPLogger: 요청/응답 로깅 (429/503도 기록되도록 RateLimit보다 앞에 위치)
//  5. RateLimit: IP별 요청 제한 (오케스트레이터 프로브는 제외)
//  6. BodyLimit: 요청 본문 크기 제한
//  7. ContextTimeout: 요청 컨텍스트에 처리 시간 제한 설정
//  8. CORS
//  9. Secure: 보안 헤더 설정
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.NewLogger(applog.StandardLogger())

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestID())
	// 3. Server 헤더 제거
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Del(echo.HeaderServer)
			return next(c)
		}
	})
	// 4. HTTP 로깅
	e.Use(appmiddleware.HTTPLogger())
	// 5. Rate Limiting
	e.Use(appmiddleware.RateLimit(constants.DefaultRateLimitPerSecond, constants.DefaultRateLimitBurst, isProbeRequest))
	// 6. Body Limit
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	// 7. Timeout
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
	}))
	// 8. CORS
	// 와일드카드(*)와 자격 증명(credentials)은 함께 허용할 수 없습니다.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: !slices.Contains(cfg.AllowOrigins, "*"),
	}))
	// 9. 보안 헤더
	// 응답은 JSON뿐이므로 Content-Security-Policy는 설정하지 않습니다.
	secure := middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "no-referrer",
	}
	if cfg.EnableHSTS {
		secure.HSTSMaxAge = 15552000
	}
	e.Use(middleware.SecureWithConfig(secure))

	return e
}

// isProbeRequest 오케스트레이터의 프로브 요청은 속도 제한에서 제외합니다.
func isProbeRequest(c echo.Context) bool {
	path := c.Request().URL.Path
	return path == constants.PathHealthLive || path == constants.PathHealthReady
}
