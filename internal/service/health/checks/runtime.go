package checks

import (
	"context"
	"math"
	"runtime"
	"runtime/debug"

	"github.com/darkkaiser/momo-server/internal/service/health"
)

// Memory 힙 사용 비율이 임계값을 넘으면 warn을 보고하는 Checker입니다.
//
// 기준 용량은 GOMEMLIMIT(debug.SetMemoryLimit)입니다. 제한이 없으면 항상 pass를 보고합니다.
// Sys나 HeapSys는 GC 직전 HeapAlloc과 거의 같아질 수 있어 기준으로 삼지 않습니다.
type Memory struct {
	warnRatio float64

	readMemStats func(*runtime.MemStats)
	memoryLimit  func() int64
}

// NewMemory 새로운 Memory Checker를 생성합니다. warnRatio는 0보다 크고 1 이하여야 합니다.
func NewMemory(warnRatio float64) *Memory {
	if warnRatio <= 0 || warnRatio > 1 {
		warnRatio = 0.9
	}

	return &Memory{
		warnRatio:    warnRatio,
		readMemStats: runtime.ReadMemStats,
		memoryLimit:  func() int64 { return debug.SetMemoryLimit(-1) },
	}
}

var _ health.Checker = (*Memory)(nil)

func (m *Memory) Check(ctx context.Context) (health.Status, error) {
	if err := ctx.Err(); err != nil {
		return health.StatusFail, err
	}

	limit := m.memoryLimit()
	if limit <= 0 || limit == math.MaxInt64 {
		return health.StatusPass, nil
	}

	var stats runtime.MemStats
	m.readMemStats(&stats)

	capacity := uint64(limit)
	ratio := float64(stats.HeapAlloc) / float64(capacity)
	if ratio >= m.warnRatio {
		return health.StatusWarn, newErrHeapThresholdExceeded(stats.HeapAlloc, capacity, ratio, m.warnRatio)
	}

	return health.StatusPass, nil
}

// Goroutines 고루틴 수가 임계값을 넘으면 warn을 보고하는 Checker입니다. 고루틴 누수 탐지에 사용합니다.
type Goroutines struct {
	threshold int

	count func() int
}

// NewGoroutines 새로운 Goroutines Checker를 생성합니다.
func NewGoroutines(threshold int) *Goroutines {
	return &Goroutines{
		threshold: threshold,
		count:     runtime.NumGoroutine,
	}
}

var _ health.Checker = (*Goroutines)(nil)

func (g *Goroutines) Check(ctx context.Context) (health.Status, error) {
	if err := ctx.Err(); err != nil {
		return health.StatusFail, err
	}

	if n := g.count(); g.threshold > 0 && n > g.threshold {
		return health.StatusWarn, newErrGoroutineThresholdExceeded(n, g.threshold)
	}

	return health.StatusPass, nil
}
