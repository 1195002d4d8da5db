package checks

import (
	apperrors "github.com/darkkaiser/momo-server/internal/pkg/errors"
)

var (
	// ErrDatabaseNotInitialized Postgres Checker에 연결 풀이 주어지지 않았을 때 반환됩니다.
	ErrDatabaseNotInitialized = apperrors.New(apperrors.Internal, "데이터베이스 연결이 초기화되지 않았습니다")

	// ErrRedisNotInitialized Redis Checker에 클라이언트가 주어지지 않았을 때 반환됩니다.
	ErrRedisNotInitialized = apperrors.New(apperrors.Internal, "Redis 클라이언트가 초기화되지 않았습니다")
)

func newErrOpenPostgres(cause error) error {
	return apperrors.Wrap(cause, apperrors.System, "PostgreSQL 연결 풀 생성 실패")
}

func newErrDatabasePing(cause error) error {
	return apperrors.Wrap(cause, apperrors.System, "데이터베이스 ping 실패")
}

func newErrDatabaseQuery(cause error) error {
	return apperrors.Wrap(cause, apperrors.System, "데이터베이스 쿼리 실패")
}

func newErrDatabaseUnexpectedResult(result int) error {
	return apperrors.Newf(apperrors.ExecutionFailed, "데이터베이스 쿼리가 예상하지 못한 결과를 반환했습니다: %d", result)
}

func newErrRedisPing(cause error) error {
	return apperrors.Wrap(cause, apperrors.System, "Redis ping 실패")
}

func newErrRedisUnexpectedReply(reply string) error {
	return apperrors.Newf(apperrors.ExecutionFailed, "Redis가 예상하지 못한 응답을 반환했습니다: %q", reply)
}

func newErrHeapThresholdExceeded(heapAlloc, capacity uint64, ratio, threshold float64) error {
	return apperrors.Newf(apperrors.ExecutionFailed, "힙 사용량이 임계값을 초과했습니다 (heap_alloc=%d, capacity=%d, ratio=%.2f, threshold=%.2f)", heapAlloc, capacity, ratio, threshold)
}

func newErrGoroutineThresholdExceeded(count, threshold int) error {
	return apperrors.Newf(apperrors.ExecutionFailed, "고루틴 수가 임계값을 초과했습니다 (count=%d, threshold=%d)", count, threshold)
}
