package health

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	applog "github.com/darkkaiser/momo-server/pkg/log"
)

const component = "health.registry"

// 카테고리별 기본 타임아웃 (RegistryConfig에 지정되지 않은 경우)
const (
	DefaultReadinessTimeout = 2 * time.Second
	DefaultDetailedTimeout  = 5 * time.Second
)

// RegistryConfig Registry 생성 옵션
type RegistryConfig struct {
	// Timeouts 타임아웃이 지정되지 않은 Check에 적용할 카테고리별 기본값
	Timeouts map[Category]time.Duration
}

// Registry 헬스체크 목록을 보관합니다.
//
// 애플리케이션 시작 시점에 Register로 채우고 Seal로 봉인합니다.
// 봉인 이후에는 변경되지 않으므로 List는 잠금 없이 읽습니다.
type Registry struct {
	mu sync.Mutex

	checks []Check
	names  map[string]struct{}

	timeouts map[Category]time.Duration

	sealed atomic.Bool
}

// NewRegistry 새로운 Registry를 생성합니다.
func NewRegistry(cfg RegistryConfig) *Registry {
	timeouts := map[Category]time.Duration{
		CategoryReadiness: DefaultReadinessTimeout,
		CategoryDetailed:  DefaultDetailedTimeout,
		CategoryLiveness:  DefaultReadinessTimeout,
	}
	for c, d := range cfg.Timeouts {
		if d > 0 {
			timeouts[c] = d
		}
	}

	return &Registry{
		names:    make(map[string]struct{}),
		timeouts: timeouts,
	}
}

// Register Check를 등록합니다.
//
// 이름이 중복되거나 정의가 올바르지 않으면 Registry를 변경하지 않고 에러를 반환합니다.
// Timeout이 0이면 카테고리별 기본 타임아웃이 적용됩니다.
func (r *Registry) Register(check Check) error {
	check.Name = strings.TrimSpace(check.Name)
	if err := r.validate(check); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return ErrRegistrySealed
	}
	if _, exists := r.names[check.Name]; exists {
		return NewErrDuplicateCheck(check.Name)
	}

	if check.Timeout == 0 {
		check.Timeout = r.timeouts[check.Category]
	}

	r.checks = append(r.checks, check)
	r.names[check.Name] = struct{}{}

	applog.WithComponentAndFields(component, applog.Fields{
		"check":    check.Name,
		"category": check.Category,
		"critical": check.Critical,
		"timeout":  check.Timeout.String(),
	}).Debug("헬스체크 등록 완료")

	return nil
}

func (r *Registry) validate(check Check) error {
	switch {
	case check.Name == "":
		return NewErrInvalidCheck(check.Name, "이름이 비어 있습니다")
	case !check.Category.Valid():
		return NewErrInvalidCheck(check.Name, "알 수 없는 카테고리입니다: "+string(check.Category))
	case check.Checker == nil:
		return NewErrInvalidCheck(check.Name, "Checker가 지정되지 않았습니다")
	case check.Timeout < 0:
		return NewErrInvalidCheck(check.Name, "타임아웃은 0 이상이어야 합니다")
	}
	return nil
}

// Seal Registry를 봉인합니다. 이후의 Register 호출은 ErrRegistrySealed를 반환합니다.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Swap(true) {
		return
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"count": len(r.checks),
	}).Info("헬스체크 레지스트리 봉인 완료")
}

// List 주어진 카테고리에 속하는 Check를 등록 순서대로 반환합니다.
// 카테고리를 지정하지 않으면 빈 목록을 반환합니다.
func (r *Registry) List(categories ...Category) []Check {
	if !r.sealed.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	var result []Check
	for _, c := range r.checks {
		for _, want := range categories {
			if c.Category == want {
				result = append(result, c)
				break
			}
		}
	}

	return result
}

// Len 등록된 Check의 개수를 반환합니다.
func (r *Registry) Len() int {
	if !r.sealed.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	return len(r.checks)
}
