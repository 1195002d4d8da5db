package alert

import (
	"context"
	"errors"
	"net/http"
	"time"

	applog "github.com/darkkaiser/momo-server/pkg/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const maxRetries = 3

// sendWithRetry 메시지 1건을 텔레그램 API로 전송합니다.
//
//   - 429: Retry-After 만큼 대기 후 재시도
//   - 400 (HTML 모드): HTML 파싱 오류로 보고 PlainText로 전환하여 재시도
//   - 그 외 4xx: 즉시 중단
//   - 5xx, 네트워크 오류: retryDelay 후 재시도
func (s *Service) sendWithRetry(ctx context.Context, message string, useHTML bool) error {
	msg := tgbotapi.NewMessage(s.chatID, message)
	if useHTML {
		msg.ParseMode = tgbotapi.ModeHTML
	}
	msg.DisableWebPagePreview = true

	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, err := s.client.Send(msg)
		if err == nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"chat_id":        s.chatID,
				"attempt":        attempt,
				"html":           useHTML,
				"message_length": len(message),
			}).Info("발송 성공: 텔레그램 API로 메시지가 정상 전송되었습니다")
			return nil
		}

		lastErr = err
		code, retryAfter := parseTelegramError(err)

		applog.WithComponentAndFields(component, applog.Fields{
			"chat_id": s.chatID,
			"attempt": attempt,
			"code":    code,
			"error":   err,
		}).Warn("발송 실패: 텔레그램 API 호출에서 오류가 발생했습니다")

		if useHTML && code == http.StatusBadRequest {
			return s.sendWithRetry(ctx, message, false)
		}
		if !shouldRetry(code) || attempt == maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.delayForRetry(retryAfter)):
		}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"chat_id": s.chatID,
		"error":   lastErr,
	}).Error("전송 최종 실패: 알림이 발송되지 않았습니다")

	return lastErr
}

func (s *Service) delayForRetry(retryAfter int) time.Duration {
	if retryAfter > 0 {
		return time.Duration(retryAfter) * time.Second
	}
	return s.retryDelay
}

// parseTelegramError 텔레그램 API 에러에서 응답 코드와 Retry-After(초)를 추출합니다.
// API 에러가 아니면(네트워크 오류 등) 0을 반환합니다.
func parseTelegramError(err error) (code int, retryAfter int) {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.RetryAfter
	}

	var apiErrVal tgbotapi.Error
	if errors.As(err, &apiErrVal) {
		return apiErrVal.Code, apiErrVal.RetryAfter
	}

	return 0, 0
}

// shouldRetry 4xx 중에서는 429만 재시도합니다.
func shouldRetry(code int) bool {
	if code >= 400 && code < 500 {
		return code == http.StatusTooManyRequests
	}
	return true
}
