// Package validation 설정 파일과 환경 변수로 입력된 값의 유효성을 검사합니다.
//
// 모든 함수는 상태를 갖지 않으며 동시에 호출해도 안전합니다.
package validation
