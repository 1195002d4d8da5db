package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/momo-server/internal/pkg/errors"
	"github.com/darkkaiser/momo-server/internal/service/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ===== Test Helpers =====

type mockReportRunner struct {
	mock.Mock
}

func (m *mockReportRunner) Run(ctx context.Context, categories ...health.Category) health.Report {
	args := m.Called(ctx, categories)
	return args.Get(0).(health.Report)
}

func newMockRunner(report health.Report) *mockReportRunner {
	m := &mockReportRunner{}
	m.On("Run", mock.Anything, []health.Category{health.CategoryReadiness, health.CategoryDetailed}).Return(report)
	return m
}

// ===== Tests =====

func TestNewService(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "ReportRunner는 필수입니다", func() {
		NewService("@every 1s", nil)
	})

	s := NewService("@every 1s", newMockRunner(health.Report{}))
	assert.Equal(t, "@every 1s", s.timeSpec)
}

func TestScheduler_Start_EmptySpec(t *testing.T) {
	t.Parallel()

	s := NewService("", newMockRunner(health.Report{}))

	var wg sync.WaitGroup
	wg.Add(1)
	require.NoError(t, s.Start(context.Background(), &wg))
	wg.Wait()

	assert.False(t, s.running)
	assert.Nil(t, s.cron)
}

func TestScheduler_Start_InvalidSpec(t *testing.T) {
	t.Parallel()

	s := NewService("*/5 * * * *", newMockRunner(health.Report{}))

	var wg sync.WaitGroup
	wg.Add(1)
	err := s.Start(context.Background(), &wg)
	wg.Wait()

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	assert.False(t, s.running)
}

func TestScheduler_Lifecycle(t *testing.T) {
	t.Parallel()

	runner := newMockRunner(health.Report{Status: health.StatusPass})
	s := NewService("* * * * * *", runner)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	wg.Add(1)
	require.NoError(t, s.Start(ctx, &wg))
	assert.True(t, s.running)

	// 중복 호출은 무시하고 WaitGroup을 정리합니다.
	wg.Add(1)
	require.NoError(t, s.Start(ctx, &wg))

	assert.Eventually(t, func() bool {
		_, ok := s.LastReport()
		return ok
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	wg.Wait()

	assert.False(t, s.running)
	runner.AssertCalled(t, "Run", mock.Anything, []health.Category{health.CategoryReadiness, health.CategoryDetailed})
}

func TestScheduler_Report(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		report health.Report
	}{
		{name: "pass", report: health.Report{Status: health.StatusPass}},
		{name: "warn", report: health.Report{Status: health.StatusWarn, Results: []health.Result{{Name: "cache", Status: health.StatusFail}}}},
		{name: "fail", report: health.Report{Status: health.StatusFail, Results: []health.Result{{Name: "datastore", Status: health.StatusFail, Critical: true}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			runner := newMockRunner(tt.report)
			s := NewService("@every 1h", runner)

			_, ok := s.LastReport()
			assert.False(t, ok)

			s.report()

			got, ok := s.LastReport()
			require.True(t, ok)
			assert.Equal(t, tt.report.Status, got.Status)
			runner.AssertNumberOfCalls(t, "Run", 1)
		})
	}
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyStatusChange(previous health.Status, report health.Report) error {
	args := m.Called(previous, report.Status)
	return args.Error(0)
}

func TestScheduler_NotifyOnStatusChange(t *testing.T) {
	t.Parallel()

	t.Run("상태가 바뀔 때만 알림", func(t *testing.T) {
		t.Parallel()

		runner := &mockReportRunner{}
		categories := []health.Category{health.CategoryReadiness, health.CategoryDetailed}
		for _, status := range []health.Status{health.StatusPass, health.StatusPass, health.StatusFail, health.StatusFail, health.StatusWarn} {
			runner.On("Run", mock.Anything, categories).Return(health.Report{Status: status}).Once()
		}

		notifier := &mockNotifier{}
		notifier.On("NotifyStatusChange", health.StatusPass, health.StatusFail).Return(nil).Once()
		notifier.On("NotifyStatusChange", health.StatusFail, health.StatusWarn).Return(nil).Once()

		s := NewService("@every 1h", runner)
		s.SetNotifier(notifier)

		for i := 0; i < 5; i++ {
			s.report()
		}

		notifier.AssertExpectations(t)
		notifier.AssertNumberOfCalls(t, "NotifyStatusChange", 2)
	})

	t.Run("첫 리포트가 pass가 아니면 알림", func(t *testing.T) {
		t.Parallel()

		notifier := &mockNotifier{}
		notifier.On("NotifyStatusChange", health.Status(""), health.StatusFail).Return(errors.New("queue full")).Once()

		s := NewService("@every 1h", newMockRunner(health.Report{Status: health.StatusFail}))
		s.SetNotifier(notifier)

		s.report()

		notifier.AssertExpectations(t)
	})

	t.Run("Notifier가 없으면 무시", func(t *testing.T) {
		t.Parallel()

		s := NewService("@every 1h", newMockRunner(health.Report{Status: health.StatusFail}))
		assert.NotPanics(t, s.report)
	})
}
