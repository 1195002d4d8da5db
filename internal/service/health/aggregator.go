package health

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/darkkaiser/momo-server/internal/pkg/errors"
	applog "github.com/darkkaiser/momo-server/pkg/log"
	"golang.org/x/sync/errgroup"
)

// Aggregator 요청된 카테고리의 Check를 병렬로 실행하고 결과를 Report로 집계합니다.
//
// 재시도와 요청 간 캐싱은 하지 않습니다. 실패한 Check는 요청마다 한 번씩 보고됩니다.
type Aggregator struct {
	registry *Registry

	startedAt time.Time
}

// NewAggregator 새로운 Aggregator를 생성합니다. 생성 시점을 프로세스 가동 시작 시각으로 기록합니다.
func NewAggregator(registry *Registry) (*Aggregator, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}

	return &Aggregator{
		registry:  registry,
		startedAt: time.Now(),
	}, nil
}

// Uptime 프로세스 가동 시간을 반환합니다.
func (a *Aggregator) Uptime() time.Duration {
	return time.Since(a.startedAt)
}

// Run 주어진 카테고리의 Check를 모두 실행하여 Report를 생성합니다.
//
// 각 Check는 자신의 타임아웃 안에서 독립적으로 실행되며, 하나의 실패나 지연이 다른 Check를
// 중단시키지 않습니다. 결과는 등록 순서대로 정렬됩니다.
func (a *Aggregator) Run(ctx context.Context, categories ...Category) Report {
	checks := a.registry.List(categories...)
	results := make([]Result, len(checks))

	var g errgroup.Group
	for i, c := range checks {
		g.Go(func() error {
			results[i] = a.execute(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	var latency time.Duration
	for _, r := range results {
		latency = max(latency, r.Latency)
	}

	now := time.Now()
	report := Report{
		Status:      Fold(results),
		Results:     results,
		GeneratedAt: now,
		Uptime:      now.Sub(a.startedAt),
		Latency:     latency,
	}
	if report.Results == nil {
		report.Results = []Result{}
	}

	return report
}

type outcome struct {
	status Status
	err    error
}

// execute 하나의 Check를 타임아웃 안에서 실행합니다.
// Checker가 ctx를 무시하고 반환하지 않더라도 타임아웃 시점에 fail 결과를 반환합니다.
func (a *Aggregator) execute(ctx context.Context, c Check) Result {
	started := time.Now()

	checkCtx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{status: StatusFail, err: apperrors.Newf(apperrors.Internal, "panic: %v", r)}
			}
		}()

		status, err := c.Checker.Check(checkCtx)
		done <- outcome{status: status, err: err}
	}()

	var o outcome
	select {
	case o = <-done:
	case <-checkCtx.Done():
		o = outcome{status: StatusFail, err: checkCtx.Err()}
	}

	result := Result{
		Name:      c.Name,
		Critical:  c.Critical,
		Latency:   time.Since(started),
		Timestamp: time.Now(),
	}
	result.Status, result.Err = a.classify(c, o, checkCtx)

	if result.Status != StatusPass {
		applog.WithComponentAndFields("health.aggregator", resultLogFields(result)).Warn("헬스체크 결과 이상 감지")
	}

	return result
}

// resultLogFields 이상 결과의 로그 필드를 구성합니다.
// error_type은 집계 단계의 분류(Timeout, ExecutionFailed)이고, cause_type은 Checker가 보고한 원인의 분류입니다.
func resultLogFields(r Result) applog.Fields {
	fields := applog.Fields{
		"check":      r.Name,
		"status":     r.Status,
		"critical":   r.Critical,
		"latency_ms": r.Latency.Milliseconds(),
	}
	if r.Err != nil {
		fields["error"] = r.Err
		fields["error_type"] = apperrors.TypeOf(r.Err)
		fields["cause_type"] = apperrors.UnderlyingType(r.Err)
		fields["root_cause"] = apperrors.RootCause(r.Err).Error()
		fields["timed_out"] = IsCheckTimeout(r.Err)
	}

	return fields
}

// classify Checker의 반환값을 최종 상태와 에러로 변환합니다.
//   - 타임아웃: fail + CheckTimeoutError
//   - 에러, 패닉, 잘못된 상태 값: fail + CheckExecutionError
//   - warn과 에러를 함께 반환한 경우: warn 유지, 에러는 상세 정보로 보존
func (a *Aggregator) classify(c Check, o outcome, checkCtx context.Context) (Status, error) {
	if errors.Is(o.err, context.DeadlineExceeded) || (o.err != nil && errors.Is(checkCtx.Err(), context.DeadlineExceeded)) {
		return StatusFail, newCheckTimeoutError(c.Name, c.Timeout, o.err)
	}

	if o.err != nil {
		if o.status == StatusWarn {
			return StatusWarn, newCheckExecutionError(c.Name, o.err)
		}
		return StatusFail, newCheckExecutionError(c.Name, o.err)
	}

	if !o.status.Valid() {
		return StatusFail, newCheckExecutionError(c.Name, newErrInvalidStatus(o.status))
	}

	return o.status, nil
}
