package checks

import (
	"context"
	"database/sql"
	"time"

	"github.com/darkkaiser/momo-server/internal/service/health"
	_ "github.com/lib/pq"
)

// OpenPostgres DSN으로 PostgreSQL 연결 풀을 생성합니다.
// sql.Open은 실제로 연결하지 않으므로, 연결 가능 여부는 헬스체크에서 확인합니다.
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, newErrOpenPostgres(err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

// Postgres 데이터스토어 연결 상태를 확인하는 Checker입니다.
type Postgres struct {
	db *sql.DB
}

// NewPostgres 새로운 Postgres Checker를 생성합니다.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

var _ health.Checker = (*Postgres)(nil)

// Check 연결을 확인하고 간단한 쿼리가 실행되는지 검증합니다.
func (p *Postgres) Check(ctx context.Context) (health.Status, error) {
	if p.db == nil {
		return health.StatusFail, ErrDatabaseNotInitialized
	}

	if err := p.db.PingContext(ctx); err != nil {
		return health.StatusFail, newErrDatabasePing(err)
	}

	var result int
	if err := p.db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return health.StatusFail, newErrDatabaseQuery(err)
	}
	if result != 1 {
		return health.StatusFail, newErrDatabaseUnexpectedResult(result)
	}

	return health.StatusPass, nil
}
