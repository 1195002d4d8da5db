package alert

import (
	apperrors "github.com/darkkaiser/momo-server/internal/pkg/errors"
)

var (
	// ErrServiceStopped 서비스가 시작되지 않았거나 종료된 후 알림을 요청했을 때 반환됩니다.
	ErrServiceStopped = apperrors.New(apperrors.Unavailable, "알림 서비스가 실행 중이 아닙니다")

	// ErrQueueFull 발송 대기열이 가득 차 알림을 등록하지 못했을 때 반환됩니다.
	ErrQueueFull = apperrors.New(apperrors.Unavailable, "알림 발송 대기열이 가득 찼습니다")

	// ErrBotTokenRequired 텔레그램 봇 토큰이 비어 있을 때 반환됩니다.
	ErrBotTokenRequired = apperrors.New(apperrors.InvalidInput, "텔레그램 봇 토큰은 필수입니다")
)

func newErrBotInitFailed(cause error) error {
	return apperrors.Wrap(cause, apperrors.Unavailable, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. BotToken이 올바른지 확인해주세요")
}
