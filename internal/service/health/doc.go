// Package health 의존성 헬스체크를 등록하고 동시에 실행하여 하나의 상태로 집계합니다.
//
// 구성 요소:
//   - Checker: 각 의존성(결제 백엔드, 데이터스토어 등)이 구현하는 상태 확인 인터페이스
//   - Registry: 시작 시점에 Check를 등록하고 Seal 이후에는 읽기 전용으로 사용
//   - Aggregator: 요청된 카테고리의 Check를 병렬로 실행하고 타임아웃을 강제한 뒤 Report로 집계
//
// 집계 규칙:
//   - critical Check 중 하나라도 fail이면 fail
//   - 그 외에 warn 또는 fail 결과가 하나라도 있으면 warn
//   - 나머지(빈 결과 포함)는 pass
package health
