// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 서비스 소개, 헬스체크(basic, live, ready, detailed), 버전 정보 등
// 인증이 필요 없는 시스템 수준의 API를 처리합니다.
package system

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/momo-server/internal/pkg/version"
	"github.com/darkkaiser/momo-server/internal/service/api/constants"
	"github.com/darkkaiser/momo-server/internal/service/api/model/system"
	"github.com/darkkaiser/momo-server/internal/service/health"
	applog "github.com/darkkaiser/momo-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// HealthRunner 헬스체크를 실행하고 리포트를 만들어 주는 컴포넌트입니다. (health.Aggregator)
type HealthRunner interface {
	Run(ctx context.Context, categories ...health.Category) health.Report
	Uptime() time.Duration
}

// Handler 시스템 엔드포인트 핸들러
type Handler struct {
	runner HealthRunner

	appName   string
	buildInfo version.Info
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(appName string, runner HealthRunner, buildInfo version.Info) *Handler {
	if runner == nil {
		panic(constants.PanicMsgHealthRunnerRequired)
	}

	return &Handler{
		runner: runner,

		appName:   appName,
		buildInfo: buildInfo,
	}
}

// ServiceDescriptorHandler godoc
// @Summary 서비스 소개
// @Description 서비스 이름, 버전, 제공하는 엔드포인트 목록을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.ServiceDescriptorResponse "서비스 소개"
// @Router / [get]
func (h *Handler) ServiceDescriptorHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, system.ServiceDescriptorResponse{
		Name:        h.appName,
		Version:     h.buildInfo.Version,
		Description: "Health monitoring and MoMo payment gateway",
		Endpoints: map[string]string{
			"health":    constants.PathHealth,
			"momo":      constants.PathMomoAPI,
			"downloads": constants.PathDownloads,
		},
		Features: map[string]string{
			"health":    "Health monitoring and system status checks",
			"momo":      "Mobile money payment services and transactions",
			"downloads": "File download capabilities",
		},
	})
}

// HealthHandler godoc
// @Summary 기본 헬스체크
// @Description 프로세스가 요청을 처리할 수 있는지만 확인합니다. 의존성을 호출하지 않습니다.
// @Tags Health
// @Produce json
// @Success 200 {object} system.BasicHealthResponse "항상 pass"
// @Router /health [get]
func (h *Handler) HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, system.BasicHealthResponse{Status: string(health.StatusPass)})
}

// LivenessHandler godoc
// @Summary Liveness 프로브
// @Description 오케스트레이터의 재시작 판단용 프로브입니다. 의존성 장애로 실패하지 않습니다.
// @Tags Health
// @Produce json
// @Success 200 {object} system.BasicHealthResponse "항상 pass"
// @Router /health/live [get]
func (h *Handler) LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, system.BasicHealthResponse{Status: string(health.StatusPass)})
}

// ReadinessHandler godoc
// @Summary Readiness 프로브
// @Description readiness 카테고리의 체크를 실행합니다.
// @Description critical 체크가 하나라도 fail이면 503을 반환하여 인스턴스를 트래픽에서 제외시킵니다.
// @Tags Health
// @Produce json
// @Success 200 {object} system.ReportResponse "pass 또는 warn"
// @Failure 503 {object} system.ReportResponse "fail"
// @Router /health/ready [get]
func (h *Handler) ReadinessHandler(c echo.Context) error {
	report := h.runner.Run(c.Request().Context(), health.CategoryReadiness)

	code := http.StatusOK
	if report.Status == health.StatusFail {
		code = http.StatusServiceUnavailable

		applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
			"failed_checks": failedChecks(report),
			"latency":       report.Latency.String(),
		}).Warn(constants.LogMsgReadinessNotReady)
	}

	return c.JSON(code, newReportResponse(report))
}

// DetailedHealthHandler godoc
// @Summary 상세 헬스 리포트
// @Description readiness 및 detailed 카테고리의 체크 결과와 버전, 런타임 정보를 반환합니다.
// @Description 진단용이므로 상태와 무관하게 항상 200을 반환합니다.
// @Tags Health
// @Produce json
// @Success 200 {object} system.DetailedHealthResponse "상세 리포트"
// @Router /health/detailed [get]
func (h *Handler) DetailedHealthHandler(c echo.Context) error {
	report := h.runner.Run(c.Request().Context(), health.CategoryReadiness, health.CategoryDetailed)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(http.StatusOK, system.DetailedHealthResponse{
		ReportResponse: newReportResponse(report),

		Version:   newVersionResponse(h.buildInfo),
		Timestamp: formatTime(time.Now()),
		Runtime: system.RuntimeInfo{
			GoVersion:    runtime.Version(),
			Goroutines:   runtime.NumGoroutine(),
			NumCPU:       runtime.NumCPU(),
			HeapAllocMiB: mem.HeapAlloc / (1 << 20),
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
		},
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, newVersionResponse(h.buildInfo))
}
