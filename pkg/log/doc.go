// Package log logrus 기반의 전역 로깅 설정을 제공합니다.
//
// Setup은 lumberjack 로테이션 파일(main / critical / verbose)과 콘솔 출력을
// 레벨 기반 Hook으로 구성합니다. 각 패키지는 WithComponent 계열 함수로
// component 필드가 붙은 Entry를 얻어 사용합니다.
package log
