// Package alert 헬스 상태 변화를 텔레그램으로 알리는 서비스를 제공합니다.
//
// 정기 헬스 리포트(scheduler)의 전체 상태가 바뀔 때(예: pass -> fail) 호출되며,
// 발송은 큐와 별도의 Sender 고루틴을 통해 비동기로 처리되므로 리포트 생성을 지연시키지 않습니다.
package alert
