package health

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/momo-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// timeoutSlack 타임아웃 이후 결과가 반환되기까지 허용하는 여유 시간
const timeoutSlack = 500 * time.Millisecond

func TestNewAggregator_NilRegistry(t *testing.T) {
	t.Parallel()

	_, err := NewAggregator(nil)
	assert.ErrorIs(t, err, ErrNilRegistry)
}

func TestFold(t *testing.T) {
	t.Parallel()

	statuses := []Status{StatusPass, StatusWarn, StatusFail}

	// 길이 0~3의 모든 (상태, critical) 조합에 대해 집계 규칙을 검증합니다.
	var combos [][]Result
	var build func(prefix []Result, depth int)
	build = func(prefix []Result, depth int) {
		combos = append(combos, append([]Result(nil), prefix...))
		if depth == 3 {
			return
		}
		for _, s := range statuses {
			for _, critical := range []bool{false, true} {
				build(append(prefix, Result{Status: s, Critical: critical}), depth+1)
			}
		}
	}
	build(nil, 0)

	for _, results := range combos {
		criticalFail, degraded := false, false
		for _, r := range results {
			if r.Critical && r.Status == StatusFail {
				criticalFail = true
			}
			if r.Status == StatusWarn || r.Status == StatusFail {
				degraded = true
			}
		}

		expected := StatusPass
		switch {
		case criticalFail:
			expected = StatusFail
		case degraded:
			expected = StatusWarn
		}

		assert.Equal(t, expected, Fold(results), "results=%+v", results)
	}
}

func TestFold_CriticalWarn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		results  []Result
		expected Status
	}{
		{
			name:     "critical warn은 warn",
			results:  []Result{{Name: "datastore", Critical: true, Status: StatusWarn}},
			expected: StatusWarn,
		},
		{
			name: "critical warn과 non-critical pass",
			results: []Result{
				{Name: "datastore", Critical: true, Status: StatusWarn},
				{Name: "cache", Status: StatusPass},
			},
			expected: StatusWarn,
		},
		{
			name: "critical fail이 우선",
			results: []Result{
				{Name: "datastore", Critical: true, Status: StatusWarn},
				{Name: "payment-backend", Critical: true, Status: StatusFail},
			},
			expected: StatusFail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Fold(tt.results))
		})
	}
}

func TestAggregator_Run_Statuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		checks   []Check
		expected Status
	}{
		{
			name:     "모두 pass",
			checks:   []Check{{Name: "a", Category: CategoryReadiness, Critical: true, Checker: passing()}, {Name: "b", Category: CategoryReadiness, Checker: passing()}},
			expected: StatusPass,
		},
		{
			name:     "non-critical fail은 warn",
			checks:   []Check{{Name: "a", Category: CategoryReadiness, Critical: true, Checker: passing()}, {Name: "b", Category: CategoryReadiness, Checker: failing()}},
			expected: StatusWarn,
		},
		{
			name:     "non-critical warn은 warn",
			checks:   []Check{{Name: "a", Category: CategoryReadiness, Checker: warning()}},
			expected: StatusWarn,
		},
		{
			name:     "critical warn은 warn",
			checks:   []Check{{Name: "a", Category: CategoryReadiness, Critical: true, Checker: warning()}},
			expected: StatusWarn,
		},
		{
			name:     "critical fail은 fail",
			checks:   []Check{{Name: "a", Category: CategoryReadiness, Critical: true, Checker: failing()}, {Name: "b", Category: CategoryReadiness, Checker: warning()}},
			expected: StatusFail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := newTestAggregator(t, tt.checks...).Run(context.Background(), CategoryReadiness)

			assert.Equal(t, tt.expected, report.Status)
			assert.Len(t, report.Results, len(tt.checks))
		})
	}
}

func TestAggregator_Run_Empty(t *testing.T) {
	t.Parallel()

	report := newTestAggregator(t).Run(context.Background(), CategoryReadiness)

	assert.Equal(t, StatusPass, report.Status)
	assert.NotNil(t, report.Results)
	assert.Empty(t, report.Results)
	assert.Zero(t, report.Latency)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestAggregator_Run_OrderAndCompleteness(t *testing.T) {
	t.Parallel()

	var checks []Check
	for i := 0; i < 10; i++ {
		category := CategoryReadiness
		if i%2 == 1 {
			category = CategoryDetailed
		}
		// 뒤에 등록된 Check일수록 먼저 끝나도록 지연 시간을 역순으로 설정합니다.
		checks = append(checks, Check{
			Name:     fmt.Sprintf("check-%d", i),
			Category: category,
			Checker:  sleeping(time.Duration(10-i) * 5 * time.Millisecond),
		})
	}
	checks = append(checks, Check{Name: "liveness-only", Category: CategoryLiveness, Checker: passing()})

	report := newTestAggregator(t, checks...).Run(context.Background(), CategoryReadiness, CategoryDetailed)

	require.Len(t, report.Results, 10)
	seen := make(map[string]int)
	for i, r := range report.Results {
		assert.Equal(t, fmt.Sprintf("check-%d", i), r.Name)
		seen[r.Name]++
	}
	for name, n := range seen {
		assert.Equal(t, 1, n, name)
	}
	_, found := resultByName(report, "liveness-only")
	assert.False(t, found)
}

func TestAggregator_Run_Timeout(t *testing.T) {
	t.Parallel()

	const timeout = 200 * time.Millisecond

	a := newTestAggregator(t,
		Check{Name: "stuck", Category: CategoryReadiness, Critical: true, Timeout: timeout, Checker: blocking(t)},
		Check{Name: "fast", Category: CategoryReadiness, Checker: passing()},
	)

	start := time.Now()
	report := a.Run(context.Background(), CategoryReadiness)
	elapsed := time.Since(start)

	assert.Less(t, elapsed, timeout+timeoutSlack)
	assert.Equal(t, StatusFail, report.Status)

	stuck, ok := resultByName(report, "stuck")
	require.True(t, ok)
	assert.Equal(t, StatusFail, stuck.Status)
	assert.True(t, IsCheckTimeout(stuck.Err))
	assert.True(t, errors.Is(stuck.Err, context.DeadlineExceeded))
	assert.GreaterOrEqual(t, stuck.Latency, timeout)
	assert.GreaterOrEqual(t, report.Latency, stuck.Latency)

	fast, ok := resultByName(report, "fast")
	require.True(t, ok)
	assert.Equal(t, StatusPass, fast.Status)
	assert.NoError(t, fast.Err)
}

func TestAggregator_Run_ChecksRunConcurrently(t *testing.T) {
	t.Parallel()

	const each = 150 * time.Millisecond

	var checks []Check
	for i := 0; i < 5; i++ {
		checks = append(checks, Check{Name: fmt.Sprintf("slow-%d", i), Category: CategoryReadiness, Checker: sleeping(each)})
	}

	start := time.Now()
	report := newTestAggregator(t, checks...).Run(context.Background(), CategoryReadiness)
	elapsed := time.Since(start)

	assert.Equal(t, StatusPass, report.Status)
	assert.Less(t, elapsed, 3*each, "순차 실행이라면 5배의 시간이 걸립니다")
	assert.GreaterOrEqual(t, report.Latency, each)
}

func TestAggregator_Run_ExecutionErrors(t *testing.T) {
	t.Parallel()

	a := newTestAggregator(t,
		Check{Name: "refused", Category: CategoryReadiness, Checker: failing()},
		Check{Name: "panics", Category: CategoryReadiness, Checker: CheckerFunc(func(context.Context) (Status, error) {
			panic("nil map write")
		})},
		Check{Name: "malformed", Category: CategoryReadiness, Checker: CheckerFunc(func(context.Context) (Status, error) {
			return Status("green"), nil
		})},
		Check{Name: "pass-with-error", Category: CategoryReadiness, Checker: CheckerFunc(func(context.Context) (Status, error) {
			return StatusPass, errConnRefused
		})},
		Check{Name: "degraded", Category: CategoryReadiness, Checker: CheckerFunc(func(context.Context) (Status, error) {
			return StatusWarn, errors.New("replica lag 12s")
		})},
		Check{Name: "deadline-from-checker", Category: CategoryReadiness, Checker: CheckerFunc(func(context.Context) (Status, error) {
			return StatusFail, fmt.Errorf("query: %w", context.DeadlineExceeded)
		})},
	)

	report := a.Run(context.Background(), CategoryReadiness)

	assert.Equal(t, StatusWarn, report.Status, "non-critical 실패는 전체를 fail로 만들지 않습니다")

	for _, name := range []string{"refused", "panics", "malformed", "pass-with-error"} {
		r, ok := resultByName(report, name)
		require.True(t, ok, name)
		assert.Equal(t, StatusFail, r.Status, name)
		assert.True(t, apperrors.Is(r.Err, apperrors.ExecutionFailed), name)
	}

	panics, _ := resultByName(report, "panics")
	assert.Contains(t, panics.Err.Error(), "nil map write")
	assert.Equal(t, apperrors.Internal, apperrors.UnderlyingType(panics.Err))

	malformed, _ := resultByName(report, "malformed")
	assert.Equal(t, apperrors.Internal, apperrors.UnderlyingType(malformed.Err))

	degraded, _ := resultByName(report, "degraded")
	assert.Equal(t, StatusWarn, degraded.Status)
	assert.ErrorContains(t, degraded.Err, "replica lag")

	deadline, _ := resultByName(report, "deadline-from-checker")
	assert.Equal(t, StatusFail, deadline.Status)
	assert.True(t, IsCheckTimeout(deadline.Err))
}

func TestResultLogFields(t *testing.T) {
	t.Parallel()

	t.Run("타임아웃과 원인 분류", func(t *testing.T) {
		cause := apperrors.Wrap(context.DeadlineExceeded, apperrors.System, "데이터베이스 ping 실패")
		r := Result{
			Name:     "datastore",
			Status:   StatusFail,
			Critical: true,
			Latency:  2 * time.Second,
			Err:      newCheckTimeoutError("datastore", 2*time.Second, cause),
		}

		fields := resultLogFields(r)

		assert.Equal(t, "datastore", fields["check"])
		assert.Equal(t, int64(2000), fields["latency_ms"])
		assert.Equal(t, apperrors.Timeout, fields["error_type"])
		assert.Equal(t, apperrors.System, fields["cause_type"])
		assert.Equal(t, context.DeadlineExceeded.Error(), fields["root_cause"])
		assert.Equal(t, true, fields["timed_out"])
	})

	t.Run("실행 실패", func(t *testing.T) {
		r := Result{Name: "cache", Status: StatusFail, Err: newCheckExecutionError("cache", errConnRefused)}

		fields := resultLogFields(r)

		assert.Equal(t, apperrors.ExecutionFailed, fields["error_type"])
		assert.Equal(t, apperrors.ExecutionFailed, fields["cause_type"])
		assert.Equal(t, errConnRefused.Error(), fields["root_cause"])
		assert.Equal(t, false, fields["timed_out"])
	})

	t.Run("에러 없는 warn", func(t *testing.T) {
		fields := resultLogFields(Result{Name: "memory", Status: StatusWarn})

		assert.NotContains(t, fields, "error")
		assert.NotContains(t, fields, "error_type")
	})
}

func TestAggregator_Run_ParentContextCanceled(t *testing.T) {
	t.Parallel()

	a := newTestAggregator(t,
		Check{Name: "stuck", Category: CategoryReadiness, Timeout: 10 * time.Second, Checker: blocking(t)},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	report := a.Run(ctx, CategoryReadiness)

	assert.Less(t, time.Since(start), timeoutSlack)
	require.Len(t, report.Results, 1)
	assert.Equal(t, StatusFail, report.Results[0].Status)
	assert.ErrorIs(t, report.Results[0].Err, context.Canceled)
	assert.False(t, IsCheckTimeout(report.Results[0].Err))
}

func TestAggregator_Run_ScenarioA(t *testing.T) {
	t.Parallel()

	a := newTestAggregator(t,
		Check{Name: "datastore", Category: CategoryReadiness, Critical: true, Checker: failing()},
		Check{Name: "cache", Category: CategoryReadiness, Checker: passing()},
	)

	report := a.Run(context.Background(), CategoryReadiness)

	assert.Equal(t, StatusFail, report.Status)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "datastore", report.Results[0].Name)
	assert.Equal(t, StatusFail, report.Results[0].Status)
	assert.Equal(t, "cache", report.Results[1].Name)
	assert.Equal(t, StatusPass, report.Results[1].Status)
}

func TestAggregator_Uptime(t *testing.T) {
	t.Parallel()

	a := newTestAggregator(t)
	time.Sleep(10 * time.Millisecond)

	assert.GreaterOrEqual(t, a.Uptime(), 10*time.Millisecond)
	report := a.Run(context.Background())
	assert.GreaterOrEqual(t, report.Uptime, 10*time.Millisecond)
}
