package health

import (
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/momo-server/internal/pkg/errors"
)

var (
	// ErrRegistrySealed Seal() 이후에 Check를 등록하려고 할 때 반환됩니다.
	ErrRegistrySealed = apperrors.New(apperrors.Conflict, "헬스체크 레지스트리가 이미 봉인되어 더 이상 등록할 수 없습니다")

	// ErrNilRegistry Aggregator 생성 시 Registry가 nil인 경우 반환됩니다.
	ErrNilRegistry = apperrors.New(apperrors.InvalidInput, "헬스체크 레지스트리는 필수입니다")
)

// NewErrDuplicateCheck 이미 등록된 이름으로 Check를 등록하려고 할 때 반환되는 에러를 생성합니다.
func NewErrDuplicateCheck(name string) error {
	return apperrors.New(apperrors.Conflict, fmt.Sprintf("이미 등록된 헬스체크입니다 (name=%s)", name))
}

// NewErrInvalidCheck 등록하려는 Check의 정의가 올바르지 않을 때 반환되는 에러를 생성합니다.
func NewErrInvalidCheck(name, reason string) error {
	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("헬스체크 정의가 올바르지 않습니다 (name=%q): %s", name, reason))
}

// newCheckTimeoutError Check가 제한 시간 내에 완료되지 않았을 때의 에러를 생성합니다.
func newCheckTimeoutError(name string, timeout time.Duration, cause error) error {
	return apperrors.Wrap(cause, apperrors.Timeout, fmt.Sprintf("헬스체크 '%s'이(가) 제한 시간(%s) 내에 완료되지 않았습니다", name, timeout))
}

// newCheckExecutionError Checker가 에러를 반환했거나 패닉, 잘못된 상태 값을 반환했을 때의 에러를 생성합니다.
func newCheckExecutionError(name string, cause error) error {
	return apperrors.Wrap(cause, apperrors.ExecutionFailed, fmt.Sprintf("헬스체크 '%s' 실행 실패", name))
}

// newErrInvalidStatus Checker가 pass/warn/fail 이외의 상태 값을 반환했을 때의 에러를 생성합니다.
func newErrInvalidStatus(status Status) error {
	return apperrors.Newf(apperrors.Internal, "정의되지 않은 상태 값을 반환했습니다: %q", status)
}

// IsCheckTimeout 에러가 헬스체크 타임아웃에 의한 것인지 확인합니다.
func IsCheckTimeout(err error) bool {
	return apperrors.Is(err, apperrors.Timeout)
}
