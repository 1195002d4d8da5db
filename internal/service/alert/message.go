package alert

import (
	"fmt"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/darkkaiser/momo-server/internal/service/health"
)

const (
	// messageMaxLength 텔레그램 메시지 최대 길이(4096)에서 HTML 태그 여유분을 뺀 값
	messageMaxLength = 3900

	// maxErrorLength 체크별 에러 메시지 최대 길이
	maxErrorLength = 300
)

var statusEmoji = map[health.Status]string{
	health.StatusPass: "✅",
	health.StatusWarn: "⚠️",
	health.StatusFail: "🚨",
}

// buildStatusChangeMessage 상태 변화 알림 본문(HTML)을 생성합니다.
// pass가 아닌 체크만 나열하며, 외부 입력(체크 이름, 에러)은 이스케이프합니다.
func buildStatusChangeMessage(appName string, previous health.Status, r health.Report) string {
	var sb strings.Builder

	if previous == "" {
		fmt.Fprintf(&sb, "%s <b>[%s] 헬스 상태: %s</b>\n", statusEmoji[r.Status], html.EscapeString(appName), r.Status)
	} else {
		fmt.Fprintf(&sb, "%s <b>[%s] 헬스 상태 변경: %s → %s</b>\n", statusEmoji[r.Status], html.EscapeString(appName), previous, r.Status)
	}
	fmt.Fprintf(&sb, "시각: %s\n", r.GeneratedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&sb, "지연: %dms", r.Latency.Milliseconds())

	var degraded []health.Result
	for _, res := range r.Results {
		if res.Status != health.StatusPass {
			degraded = append(degraded, res)
		}
	}

	if len(degraded) == 0 {
		sb.WriteString("\n\n모든 체크가 정상입니다.")
		return sb.String()
	}

	sb.WriteString("\n")
	for _, res := range degraded {
		critical := ""
		if res.Critical {
			critical = " (critical)"
		}
		fmt.Fprintf(&sb, "\n• <b>%s</b>%s: %s", html.EscapeString(res.Name), critical, res.Status)
		if res.Err != nil {
			fmt.Fprintf(&sb, "\n  └ %s", html.EscapeString(truncate(res.Err.Error(), maxErrorLength)))
		}
	}

	return sb.String()
}

// truncate UTF-8 문자 경계를 지키며 최대 limit 바이트로 자릅니다.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// splitMessage 메시지를 줄 단위로 묶어 limit 바이트 이하의 조각으로 나눕니다.
// 한 줄이 limit를 넘으면 UTF-8 문자 경계에서 강제로 자릅니다.
func splitMessage(message string, limit int) []string {
	if len(message) <= limit {
		return []string{message}
	}

	var chunks []string
	var sb strings.Builder

	flush := func() {
		if sb.Len() > 0 {
			chunks = append(chunks, sb.String())
			sb.Reset()
		}
	}

	for line := range strings.SplitSeq(message, "\n") {
		needed := len(line)
		if sb.Len() > 0 {
			needed++
		}

		if sb.Len()+needed > limit {
			flush()

			for len(line) > limit {
				cut := limit
				for cut > 0 && !utf8.RuneStart(line[cut]) {
					cut--
				}
				chunks = append(chunks, line[:cut])
				line = line[cut:]
			}
		}

		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
	}
	flush()

	return chunks
}
