package payment

import (
	"strings"

	"github.com/darkkaiser/momo-server/internal/service/health"
	"github.com/tidwall/gjson"
)

// reportedStatuses 결제 백엔드가 응답 본문의 status 필드로 보고하는 값과 헬스 상태의 대응표입니다.
var reportedStatuses = map[string]health.Status{
	"pass":    health.StatusPass,
	"ok":      health.StatusPass,
	"up":      health.StatusPass,
	"healthy": health.StatusPass,

	"warn":     health.StatusWarn,
	"degraded": health.StatusWarn,

	"fail":      health.StatusFail,
	"down":      health.StatusFail,
	"unhealthy": health.StatusFail,
}

// parseBody 2xx 응답 본문을 해석합니다.
//
// 본문이 JSON이 아니거나 status 필드가 없으면 응답한 것 자체를 정상으로 봅니다.
// 알 수 없는 status 값은 warn으로 처리합니다.
func parseBody(body []byte) (health.Status, error) {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return health.StatusPass, nil
	}

	field := gjson.GetBytes(body, "status")
	if !field.Exists() || field.Type != gjson.String {
		return health.StatusPass, nil
	}

	reported := strings.ToLower(strings.TrimSpace(field.String()))
	status, ok := reportedStatuses[reported]
	if !ok {
		return health.StatusWarn, newErrReportedStatus(field.String())
	}
	if status != health.StatusPass {
		return status, newErrReportedStatus(reported)
	}

	return health.StatusPass, nil
}
