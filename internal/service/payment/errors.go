package payment

import (
	apperrors "github.com/darkkaiser/momo-server/internal/pkg/errors"
)

var (
	// ErrBaseURLRequired 결제 백엔드 주소가 설정되지 않았을 때 반환됩니다.
	ErrBaseURLRequired = apperrors.New(apperrors.InvalidInput, "결제 백엔드 주소(payment.base_url)가 설정되지 않았습니다")
)

func newErrInvalidBaseURL(baseURL string, cause error) error {
	if cause == nil {
		return apperrors.Newf(apperrors.InvalidInput, "결제 백엔드 주소가 올바르지 않습니다: '%s' (형식: http(s)://host[:port])", baseURL)
	}
	return apperrors.Wrapf(cause, apperrors.InvalidInput, "결제 백엔드 주소가 올바르지 않습니다: '%s'", baseURL)
}

func newErrRequestFailed(cause error) error {
	return apperrors.Wrap(cause, apperrors.Unavailable, "결제 백엔드 헬스 엔드포인트 호출에 실패했습니다")
}

func newErrUnexpectedStatusCode(status string, snippet string) error {
	if snippet == "" {
		return apperrors.Newf(apperrors.Unavailable, "결제 백엔드가 비정상 응답을 반환했습니다: %s", status)
	}
	return apperrors.Newf(apperrors.Unavailable, "결제 백엔드가 비정상 응답을 반환했습니다: %s, Body: %s", status, snippet)
}

func newErrReportedStatus(reported string) error {
	return apperrors.Newf(apperrors.ExecutionFailed, "결제 백엔드가 상태를 '%s'(으)로 보고했습니다", reported)
}
