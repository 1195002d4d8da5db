// Package scheduler 헬스 리포트를 Cron 스케줄에 맞춰 주기적으로 생성하고 로그로 남기는 서비스를 제공합니다.
//
// 오케스트레이터가 프로브 엔드포인트를 호출하지 않는 환경에서도 의존성 상태 변화가
// 운영 로그에 남도록 하기 위해 사용합니다.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/darkkaiser/momo-server/internal/service/health"
	"github.com/darkkaiser/momo-server/pkg/cronx"
	applog "github.com/darkkaiser/momo-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Scheduler 서비스의 로깅용 컴포넌트 이름
const component = "scheduler.service"

// reportTimeout 한 번의 리포트 생성에 허용하는 최대 시간
const reportTimeout = 30 * time.Second

// ReportRunner 헬스 리포트를 생성하는 인터페이스입니다. (health.Aggregator)
type ReportRunner interface {
	Run(ctx context.Context, categories ...health.Category) health.Report
}

// Notifier 정기 리포트의 전체 상태가 바뀌었을 때 알림을 보내는 컴포넌트입니다. (alert.Service)
type Notifier interface {
	NotifyStatusChange(previous health.Status, report health.Report) error
}

// Scheduler 설정된 Cron 스케줄에 맞춰 readiness/detailed 헬스체크를 실행하고 결과를 로그로 남기는 서비스입니다.
type Scheduler struct {
	timeSpec string

	runner ReportRunner

	notifier Notifier

	cron *cron.Cron

	lastReport atomic.Pointer[health.Report]

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Scheduler 서비스 인스턴스를 생성합니다.
// timeSpec이 비어 있으면 Start 시 아무 작업도 등록하지 않습니다.
func NewService(timeSpec string, runner ReportRunner) *Scheduler {
	if runner == nil {
		panic("ReportRunner는 필수입니다")
	}

	return &Scheduler{
		timeSpec: timeSpec,
		runner:   runner,
	}
}

// SetNotifier 상태 변화 알림을 보낼 Notifier를 설정합니다. Start 이전에 호출해야 합니다.
func (s *Scheduler) SetNotifier(notifier Notifier) {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	s.notifier = notifier
}

// Start 스케줄러를 시작합니다.
//
// 매개변수:
//   - serviceStopCtx: 서비스 종료 신호를 받기 위한 Context
//   - serviceStopWG: 서비스 종료 완료를 알리기 위한 WaitGroup
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Scheduler 서비스 초기화 프로세스를 시작합니다")

	if s.runner == nil {
		serviceStopWG.Done()
		return ErrReportRunnerNotInitialized
	}

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	if s.timeSpec == "" {
		serviceStopWG.Done()
		applog.WithComponent(component).Info("헬스 리포트 스케줄이 설정되지 않아 Scheduler 서비스를 시작하지 않습니다")
		return nil
	}

	// - StandardParser: 초 단위 스케줄링 지원 (6개 필드)
	// - Recover: 패닉이 발생해도 다음 스케줄은 계속 실행
	// - SkipIfStillRunning: 이전 리포트가 끝나지 않았으면 이번 실행은 건너뜀
	c := cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	if _, err := c.AddFunc(s.timeSpec, s.report); err != nil {
		serviceStopWG.Done()
		return NewErrInvalidCronSpec(s.timeSpec, err)
	}

	s.cron = c
	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec": s.timeSpec,
	}).Info("서비스 시작 완료: Scheduler 서비스가 정상적으로 초기화되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.stop()
	}()

	return nil
}

// stop 실행 중인 스케줄러를 중지하고 진행 중인 리포트가 끝날 때까지 대기합니다.
func (s *Scheduler) stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Scheduler 서비스 중지 시그널을 수신했습니다")

	if s.cron != nil {
		<-s.cron.Stop().Done()
	}

	s.cron = nil
	s.running = false

	fields := applog.Fields{}
	if last, ok := s.LastReport(); ok {
		fields["last_status"] = last.Status
		fields["last_generated_at"] = last.GeneratedAt
	}
	applog.WithComponentAndFields(component, fields).Info("Scheduler 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

// LastReport 가장 최근에 생성된 리포트를 반환합니다.
func (s *Scheduler) LastReport() (health.Report, bool) {
	r := s.lastReport.Load()
	if r == nil {
		return health.Report{}, false
	}
	return *r, true
}

// report 헬스체크를 실행하고 결과를 상태에 맞는 로그 레벨로 기록합니다.
func (s *Scheduler) report() {
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	r := s.runner.Run(ctx, health.CategoryReadiness, health.CategoryDetailed)
	previous := s.lastReport.Swap(&r)

	s.notifyIfChanged(previous, r)

	var degraded []string
	for _, res := range r.Results {
		if res.Status != health.StatusPass {
			degraded = append(degraded, res.Name+"="+string(res.Status))
		}
	}

	entry := applog.WithComponentAndFields(component, applog.Fields{
		"status":     r.Status,
		"checks":     len(r.Results),
		"degraded":   degraded,
		"latency_ms": r.Latency.Milliseconds(),
		"uptime":     r.Uptime.Truncate(time.Second).String(),
	})

	switch r.Status {
	case health.StatusFail:
		entry.Error("정기 헬스 리포트: 필수 의존성 장애")
	case health.StatusWarn:
		entry.Warn("정기 헬스 리포트: 일부 의존성 성능 저하")
	default:
		entry.Info("정기 헬스 리포트: 정상")
	}
}

// notifyIfChanged 직전 리포트와 전체 상태가 다르면 알림을 보냅니다.
// 첫 리포트는 pass가 아닐 때만 알립니다.
func (s *Scheduler) notifyIfChanged(previous *health.Report, current health.Report) {
	if s.notifier == nil {
		return
	}

	var prevStatus health.Status
	if previous != nil {
		prevStatus = previous.Status
	}

	if prevStatus == current.Status || (previous == nil && current.Status == health.StatusPass) {
		return
	}

	if err := s.notifier.NotifyStatusChange(prevStatus, current); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"previous": prevStatus,
			"current":  current.Status,
			"error":    err,
		}).Warn("헬스 상태 변경 알림 등록 실패")
	}
}
