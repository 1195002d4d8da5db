// Package payment 결제(MoMo) 백엔드와의 연동 지점을 제공합니다.
//
// 이 서버는 결제 백엔드의 내부 동작을 알지 못하며, 두 가지만 다룹니다.
//   - 헬스체크: 백엔드의 헬스 엔드포인트를 호출해 readiness 판단에 사용할 Checker를 제공합니다.
//   - 프록시 대상: /api/momo 경로로 들어온 요청을 그대로 전달할 백엔드 주소를 제공합니다.
package payment
