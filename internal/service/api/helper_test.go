package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/darkkaiser/momo-server/internal/pkg/version"
	"github.com/darkkaiser/momo-server/internal/service/api/handler/system"
	"github.com/darkkaiser/momo-server/internal/service/health"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// countingChecker 호출 횟수를 기록하는 Checker입니다.
type countingChecker struct {
	calls  atomic.Int32
	status health.Status
	err    error

	// delay 0보다 크면 ctx가 취소되거나 delay가 지날 때까지 대기합니다.
	delay time.Duration
}

func (c *countingChecker) Check(ctx context.Context) (health.Status, error) {
	c.calls.Add(1)

	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return health.StatusFail, ctx.Err()
		}
	}

	return c.status, c.err
}

func passing() *countingChecker {
	return &countingChecker{status: health.StatusPass}
}

// newTestAggregator 주어진 Check로 봉인된 Registry와 Aggregator를 생성합니다.
func newTestAggregator(t *testing.T, checks ...health.Check) *health.Aggregator {
	t.Helper()

	registry := health.NewRegistry(health.RegistryConfig{})
	for _, c := range checks {
		require.NoError(t, registry.Register(c))
	}
	registry.Seal()

	aggregator, err := health.NewAggregator(registry)
	require.NoError(t, err)

	return aggregator
}

// newTestServer 미들웨어와 라우트가 모두 설정된 Echo 인스턴스를 생성합니다.
func newTestServer(t *testing.T, runner system.HealthRunner, opts RouteOptions) *echo.Echo {
	t.Helper()

	e := NewHTTPServer(HTTPServerConfig{
		AllowOrigins: []string{"http://localhost:3000"},
	})
	RegisterRoutes(e, system.NewHandler("momo-server", runner, version.Info{Version: "v1.2.3"}), opts)

	return e
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "본문: %s", rec.Body.String())
	return body
}

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()

	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}
