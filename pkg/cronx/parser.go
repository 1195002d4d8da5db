// Package cronx 애플리케이션 전반에서 사용하는 Cron 표현식 파서를 제공합니다.
package cronx

import "github.com/robfig/cron/v3"

// StandardParser 초 단위를 포함하는 6필드 Cron 표현식 파서를 반환합니다.
// 표준 5필드 형식은 지원하지 않습니다.
//
//   - 필드 순서: [초] [분] [시] [일] [월] [요일]
//   - Descriptor: @hourly, @every <duration> 등
//
// 예: "0 */5 * * * *" (매 5분 0초), "@every 30s"
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}
