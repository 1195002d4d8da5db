// Package strutil 문자열 처리를 위한 유틸리티 함수를 제공합니다.
package strutil

import (
	"strings"
)

// SplitAndTrim 구분자로 문자열을 분리한 후 각 항목의 앞뒤 공백을 제거하고 빈 항목을 제외합니다.
// 결과가 없으면 nil을 반환합니다.
// 예: "a, , b,c" (구분자 ",") -> ["a", "b", "c"]
func SplitAndTrim(s, sep string) []string {
	var result []string
	for _, token := range strings.Split(s, sep) {
		if token = strings.TrimSpace(token); token != "" {
			result = append(result, token)
		}
	}

	return result
}

// Mask 토큰, 비밀번호 등 민감한 값을 로그에 남기기 위해 마스킹합니다.
//   - 3자 이하: 전체 마스킹
//   - 12자 이하: 앞 4자만 표시
//   - 그 외: 앞 4자 + 뒤 4자 표시
func Mask(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 3:
		return "***"
	case len(data) <= 12:
		return data[:4] + "***"
	default:
		return data[:4] + "***" + data[len(data)-4:]
	}
}
