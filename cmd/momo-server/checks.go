package main

import (
	"io"
	"net/url"
	"time"

	"github.com/darkkaiser/momo-server/internal/config"
	"github.com/darkkaiser/momo-server/internal/service/health"
	"github.com/darkkaiser/momo-server/internal/service/health/checks"
	"github.com/darkkaiser/momo-server/internal/service/payment"
	applog "github.com/darkkaiser/momo-server/pkg/log"
)

// dependencies 헬스체크 구성 결과입니다.
type dependencies struct {
	registry *health.Registry

	// payment 결제 백엔드가 설정되지 않았으면 nil
	payment *payment.Client

	// closers 종료 시 역순으로 닫아야 하는 연결 자원
	closers []io.Closer
}

// Close 보유한 연결 자원을 생성의 역순으로 닫습니다.
func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Warn("연결 자원 정리 중 오류가 발생했습니다")
		}
	}
	d.closers = nil
}

// buildDependencies 설정에서 활성화된 헬스체크 항목을 Registry에 등록하고 봉인합니다.
//
//   - payment-backend: readiness, critical 여부는 payment.critical
//   - datastore: readiness, critical 여부는 datastore.critical
//   - cache: readiness, critical 여부는 cache.critical
//   - memory, goroutines: detailed, 항상 non-critical
//
// 결제 백엔드 주소가 설정되어 있으면 헬스체크 활성화 여부와 무관하게 프록시용 클라이언트를 생성합니다.
func buildDependencies(appConfig *config.AppConfig) (_ *dependencies, err error) {
	hc := appConfig.Health

	deps := &dependencies{
		registry: health.NewRegistry(health.RegistryConfig{
			Timeouts: map[health.Category]time.Duration{
				health.CategoryReadiness: hc.ReadinessTimeout,
				health.CategoryDetailed:  hc.DetailedTimeout,
			},
		}),
	}
	defer func() {
		if err != nil {
			deps.Close()
		}
	}()

	if appConfig.Payment.BaseURL != "" {
		if deps.payment, err = payment.NewClient(appConfig.Payment.BaseURL, appConfig.Payment.HealthPath); err != nil {
			return nil, err
		}
	}

	if hc.IsEnabled(config.CheckPaymentBackend) && deps.payment != nil {
		if err = deps.registry.Register(deps.payment.HealthCheck(appConfig.Payment.Critical, 0)); err != nil {
			return nil, err
		}
	}

	if hc.IsEnabled(config.CheckDatastore) {
		db, openErr := checks.OpenPostgres(appConfig.Datastore.DSN)
		if openErr != nil {
			return nil, openErr
		}
		deps.closers = append(deps.closers, db)

		if err = deps.registry.Register(health.Check{
			Name:     config.CheckDatastore,
			Category: health.CategoryReadiness,
			Critical: appConfig.Datastore.Critical,
			Checker:  checks.NewPostgres(db),
		}); err != nil {
			return nil, err
		}
	}

	if hc.IsEnabled(config.CheckCache) {
		client := checks.NewRedisClient(appConfig.Cache.Addr, appConfig.Cache.Password, appConfig.Cache.DB)
		deps.closers = append(deps.closers, client)

		if err = deps.registry.Register(health.Check{
			Name:     config.CheckCache,
			Category: health.CategoryReadiness,
			Critical: appConfig.Cache.Critical,
			Checker:  checks.NewRedis(client),
		}); err != nil {
			return nil, err
		}
	}

	if hc.IsEnabled(config.CheckMemory) {
		if err = deps.registry.Register(health.Check{
			Name:     config.CheckMemory,
			Category: health.CategoryDetailed,
			Checker:  checks.NewMemory(hc.MemoryWarnRatio),
		}); err != nil {
			return nil, err
		}
	}

	if hc.IsEnabled(config.CheckGoroutines) {
		if err = deps.registry.Register(health.Check{
			Name:     config.CheckGoroutines,
			Category: health.CategoryDetailed,
			Checker:  checks.NewGoroutines(hc.GoroutineWarnThreshold),
		}); err != nil {
			return nil, err
		}
	}

	deps.registry.Seal()

	fields := applog.Fields{
		"checks":          deps.registry.Len(),
		"payment_enabled": deps.payment != nil,
	}
	if deps.payment != nil {
		fields["payment_health_url"] = deps.payment.HealthURL()
	}
	applog.WithComponentAndFields("main", fields).Info("헬스체크 구성 완료")

	return deps, nil
}

// paymentTarget 결제 백엔드 프록시 대상 주소를 반환합니다. 설정되지 않았으면 nil입니다.
func paymentTarget(deps *dependencies) *url.URL {
	if deps.payment == nil {
		return nil
	}
	return deps.payment.ProxyTarget()
}
