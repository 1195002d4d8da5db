package api

import (
	"net/url"

	"github.com/darkkaiser/momo-server/internal/service/api/constants"
	"github.com/darkkaiser/momo-server/internal/service/api/handler/system"
	"github.com/darkkaiser/momo-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/momo-server/pkg/log"
	"github.com/darkkaiser/momo-server/pkg/validation"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouteOptions 시스템 엔드포인트 외에 선택적으로 등록되는 라우트 설정입니다.
type RouteOptions struct {
	// PaymentTarget /api/momo 요청을 전달할 결제 백엔드 주소 (nil이면 등록하지 않음)
	PaymentTarget *url.URL

	// DownloadsDir /downloads 경로로 제공할 정적 파일 디렉토리 (비어 있으면 등록하지 않음)
	DownloadsDir string
}

// RegisterRoutes API 서비스의 전역 라우트를 등록합니다.
//
//   - 시스템 엔드포인트: 서비스 소개(/), 헬스체크(/health/*), 버전 정보(/version)
//   - API 문서: Swagger UI (/swagger/*)
//   - 결제 백엔드 프록시: /api/momo/*
//   - 정적 파일: /downloads/*
//
// 그 외 경로는 전역 에러 핸들러가 JSON 404로 응답합니다.
func RegisterRoutes(e *echo.Echo, h *system.Handler, opts RouteOptions) {
	registerSystemRoutes(e, h)
	registerSwaggerRoutes(e)

	if opts.PaymentTarget != nil {
		registerPaymentProxy(e, opts.PaymentTarget)
	} else {
		registerPaymentUnavailable(e)
	}
	if opts.DownloadsDir != "" {
		registerDownloads(e, opts.DownloadsDir)
	}
}

// registerDownloads 디렉토리를 읽을 수 없으면 경고만 남기고 /downloads를 등록하지 않습니다.
func registerDownloads(e *echo.Echo, dir string) {
	if err := validation.ValidateDir(dir); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"dir":   dir,
			"error": err,
		}).Warn(constants.LogMsgDownloadsDirUnavailable)
		return
	}

	e.Static(constants.PathDownloads, dir)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET(constants.PathRoot, h.ServiceDescriptorHandler)

	e.GET(constants.PathHealth, h.HealthHandler)
	e.GET(constants.PathHealthLive, h.LivenessHandler)
	e.GET(constants.PathHealthReady, h.ReadinessHandler)
	e.GET(constants.PathHealthDetailed, h.DetailedHealthHandler)

	e.GET(constants.PathVersion, h.VersionHandler)
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET(constants.PathSwagger+"/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL(constants.PathSwagger+"/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}

// registerPaymentUnavailable 결제 백엔드가 설정되지 않았으면 /api/momo 이하 요청에 원인을 담은 404를 반환합니다.
func registerPaymentUnavailable(e *echo.Echo) {
	notConfigured := func(c echo.Context) error {
		return httputil.NewNotFoundError(constants.ErrMsgPaymentBackendNotConfigured)
	}

	e.Any(constants.PathMomoAPI, notConfigured)
	e.Any(constants.PathMomoAPI+"/*", notConfigured)
}

// registerPaymentProxy /api/momo 이하의 모든 요청을 결제 백엔드로 그대로 전달합니다.
// 요청 경로는 변경하지 않으며, 백엔드 연결 실패 시 502를 반환합니다.
func registerPaymentProxy(e *echo.Echo, target *url.URL) {
	balancer := middleware.NewRoundRobinBalancer([]*middleware.ProxyTarget{{
		Name: "payment-backend",
		URL:  target,
	}})

	g := e.Group(constants.PathMomoAPI)
	g.Use(middleware.ProxyWithConfig(middleware.ProxyConfig{
		Balancer: balancer,
		ErrorHandler: func(c echo.Context, err error) error {
			applog.WithComponentAndFields(constants.ComponentProxy, applog.Fields{
				"target": target.Redacted(),
				"path":   c.Request().URL.Path,
				"error":  err,
			}).Error(constants.LogMsgProxyError)

			return httputil.NewBadGatewayError(constants.ErrMsgBadGateway)
		},
	}))
}
