package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/darkkaiser/momo-server/internal/config"
	"github.com/darkkaiser/momo-server/internal/pkg/version"
	"github.com/darkkaiser/momo-server/internal/service"
	"github.com/darkkaiser/momo-server/internal/service/alert"
	"github.com/darkkaiser/momo-server/internal/service/api"
	"github.com/darkkaiser/momo-server/internal/service/health"
	"github.com/darkkaiser/momo-server/internal/service/scheduler"
	applog "github.com/darkkaiser/momo-server/pkg/log"
)

// run 헬스체크를 구성하고 서비스를 시작한 뒤, ctx가 취소될 때까지 대기합니다.
// ctx가 취소되면 모든 서비스의 종료를 기다린 후 연결 자원을 정리합니다.
func run(ctx context.Context, appConfig *config.AppConfig) error {
	buildInfo := version.Get()

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	deps, err := buildDependencies(appConfig)
	if err != nil {
		return fmt.Errorf("헬스체크 구성 실패: %w", err)
	}
	defer deps.Close()

	aggregator, err := health.NewAggregator(deps.registry)
	if err != nil {
		return err
	}

	apiService := api.NewService(appConfig, aggregator, paymentTarget(deps), buildInfo)
	schedulerService := scheduler.NewService(appConfig.Health.ReportSchedule, aggregator)

	services := []service.Service{schedulerService, apiService}
	if alertService := newAlertService(appConfig); alertService != nil {
		schedulerService.SetNotifier(alertService)
		services = append([]service.Service{alertService}, services...)
	}

	serviceStopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 이미 시작된 서비스도 종료
			serviceStopWG.Wait()

			return fmt.Errorf("서비스 초기화 실패: %w", err)
		}
	}

	applog.WithComponent("main").Info("서버 가동 완료")

	<-ctx.Done()

	applog.WithComponent("main").Info("종료 신호 수신")
	cancel()
	serviceStopWG.Wait()

	return nil
}

// newAlertService 텔레그램 알림이 설정되어 있으면 Alert 서비스를 생성합니다.
// 봇 초기화에 실패해도 서버 구동은 계속하며, 상태 변화 알림만 비활성화됩니다.
func newAlertService(appConfig *config.AppConfig) *alert.Service {
	tc := appConfig.Alert.Telegram
	if !tc.Enabled() {
		return nil
	}

	s, err := alert.NewTelegramService(config.AppName, tc.BotToken, tc.ChatID, appConfig.Debug)
	if err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("텔레그램 알림 초기화 실패: 상태 변화 알림 없이 서버를 구동합니다")
		return nil
	}

	return s
}
