package httputil

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/momo-server/internal/service/api/constants"
	"github.com/darkkaiser/momo-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/momo-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 HTTP 에러를 가로채서 표준 ErrorResponse JSON 형식으로 변환하여 반환합니다.
// 에러 발생 시 적절한 로그 레벨(Error/Warn)로 상세 정보를 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		// HTTP 에러가 아닌 내부 에러의 메시지는 응답에 노출하지 않습니다.
		he = NewInternalServerError(constants.ErrMsgInternalServer).(*echo.HTTPError)
	}

	code := he.Code
	resp := response.ErrorResponse{ResultCode: code}
	switch msg := he.Message.(type) {
	case response.ErrorResponse:
		resp.Message = msg.Message
	case string:
		resp.Message = msg
	}

	// 404 응답은 요청 경로를 함께 돌려줍니다.
	// 라우터가 만든 404(echo.ErrNotFound)는 표준 메시지로 통일합니다.
	if code == http.StatusNotFound {
		if _, custom := he.Message.(response.ErrorResponse); !custom {
			resp.Message = constants.ErrMsgNotFound
		}
		resp.Path = c.Request().URL.RequestURI()
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest && code != http.StatusNotFound {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이중 응답 방지
	if c.Response().Committed {
		return
	}

	// HEAD 요청은 본문 없이 응답
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, resp)
}
