// Package checks 외부 의존성과 런타임 상태에 대한 health.Checker 구현체를 제공합니다.
//
//   - Postgres: database/sql + lib/pq, PingContext 후 SELECT 1
//   - Redis: go-redis PING
//   - Memory: GOMEMLIMIT 대비 힙 사용 비율
//   - Goroutines: 고루틴 수
package checks
