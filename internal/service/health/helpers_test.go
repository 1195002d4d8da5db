package health

import (
	"context"
	"errors"
	"testing"
	"time"
)

// ===== Test Helpers =====

var errConnRefused = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

func passing() Checker {
	return CheckerFunc(func(context.Context) (Status, error) { return StatusPass, nil })
}

func warning() Checker {
	return CheckerFunc(func(context.Context) (Status, error) { return StatusWarn, nil })
}

func failing() Checker {
	return CheckerFunc(func(context.Context) (Status, error) { return StatusFail, errConnRefused })
}

// blocking ctx를 무시하고 테스트가 끝날 때까지 반환하지 않는 Checker를 생성합니다.
func blocking(t *testing.T) Checker {
	t.Helper()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	return CheckerFunc(func(context.Context) (Status, error) {
		<-release
		return StatusPass, nil
	})
}

// sleeping d만큼 걸리지만 ctx 취소에는 반응하는 Checker를 생성합니다.
func sleeping(d time.Duration) Checker {
	return CheckerFunc(func(ctx context.Context) (Status, error) {
		select {
		case <-time.After(d):
			return StatusPass, nil
		case <-ctx.Done():
			return StatusFail, ctx.Err()
		}
	})
}

func newTestRegistry(t *testing.T, checks ...Check) *Registry {
	t.Helper()

	r := NewRegistry(RegistryConfig{})
	for _, c := range checks {
		if err := r.Register(c); err != nil {
			t.Fatalf("헬스체크 등록 실패: %v", err)
		}
	}
	r.Seal()

	return r
}

func newTestAggregator(t *testing.T, checks ...Check) *Aggregator {
	t.Helper()

	a, err := NewAggregator(newTestRegistry(t, checks...))
	if err != nil {
		t.Fatalf("Aggregator 생성 실패: %v", err)
	}

	return a
}

func resultByName(report Report, name string) (Result, bool) {
	for _, r := range report.Results {
		if r.Name == name {
			return r, true
		}
	}
	return Result{}, false
}
