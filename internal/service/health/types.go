package health

import (
	"context"
	"time"
)

// Status 헬스체크 결과 상태
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Valid 정의된 상태 값인지 확인합니다.
func (s Status) Valid() bool {
	switch s {
	case StatusPass, StatusWarn, StatusFail:
		return true
	}
	return false
}

// Category Check가 속하는 프로브 카테고리
type Category string

const (
	// CategoryLiveness 프로세스 자체의 응답 가능 여부. 의존성 I/O를 수행하지 않습니다.
	CategoryLiveness Category = "liveness"

	// CategoryReadiness 트래픽을 받을 수 있는지 판단하는 의존성 연결 상태
	CategoryReadiness Category = "readiness"

	// CategoryDetailed 진단 목적의 부가 정보 (메모리, 고루틴 등)
	CategoryDetailed Category = "detailed"
)

// Valid 정의된 카테고리 값인지 확인합니다.
func (c Category) Valid() bool {
	switch c {
	case CategoryLiveness, CategoryReadiness, CategoryDetailed:
		return true
	}
	return false
}

// Checker 외부 의존성이 자신의 상태를 보고하기 위해 구현하는 인터페이스입니다.
//
// 구현체는 ctx의 취소/데드라인을 존중해야 합니다. 다만 Aggregator는 구현체의 동작과 무관하게
// 타임아웃을 강제하므로, ctx를 무시하는 Checker도 집계 시간을 늘릴 수 없습니다.
type Checker interface {
	Check(ctx context.Context) (Status, error)
}

// CheckerFunc 일반 함수를 Checker로 사용하기 위한 어댑터입니다.
type CheckerFunc func(ctx context.Context) (Status, error)

func (f CheckerFunc) Check(ctx context.Context) (Status, error) {
	return f(ctx)
}

// Check 이름이 부여된 하나의 진단 단위입니다. 등록 이후에는 변경되지 않습니다.
type Check struct {
	Name     string
	Category Category
	Critical bool

	// Timeout 0이면 Registry의 카테고리별 기본 타임아웃을 사용합니다.
	Timeout time.Duration

	Checker Checker
}

// Result 한 번의 집계 실행에서 생성된 개별 Check의 결과입니다.
type Result struct {
	Name      string
	Status    Status
	Critical  bool
	Latency   time.Duration
	Err       error
	Timestamp time.Time
}

// Report 한 번의 집계 실행 결과 스냅샷입니다.
type Report struct {
	Status Status

	// Results 등록 순서를 따릅니다.
	Results []Result

	GeneratedAt time.Time
	Uptime      time.Duration

	// Latency 병렬 실행이므로 개별 결과 중 가장 긴 지연 시간입니다.
	Latency time.Duration
}

// Fold 개별 결과를 하나의 상태로 집계합니다.
func Fold(results []Result) Status {
	overall := StatusPass
	for _, r := range results {
		switch {
		case r.Status == StatusFail && r.Critical:
			return StatusFail
		case r.Status == StatusFail || r.Status == StatusWarn:
			overall = StatusWarn
		}
	}

	return overall
}
