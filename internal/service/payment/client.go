package payment

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/darkkaiser/momo-server/internal/pkg/version"
	"github.com/darkkaiser/momo-server/internal/service/health"
)

const (
	// CheckName 결제 백엔드 헬스체크의 등록 이름입니다.
	CheckName = "payment-backend"

	// maxBodyBytes 헬스 응답 본문에서 읽는 최대 크기입니다.
	maxBodyBytes = 64 * 1024

	// maxSnippetLen 에러 메시지에 포함할 응답 본문의 최대 길이입니다.
	maxSnippetLen = 256
)

// Client 결제 백엔드 연동 클라이언트입니다.
type Client struct {
	baseURL           *url.URL
	healthURL         string
	redactedHealthURL string

	httpClient *http.Client
	userAgent  string
}

// NewClient 새로운 Client를 생성합니다.
//
// 요청별 타임아웃은 헬스체크 컨텍스트가 결정하므로 http.Client에는 타임아웃을 두지 않습니다.
func NewClient(baseURL, healthPath string) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, newErrInvalidBaseURL(baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, newErrInvalidBaseURL(baseURL, nil)
	}

	if healthPath == "" {
		healthPath = "/health"
	}

	appVersion := version.Get().Version
	if appVersion == "" {
		appVersion = "dev"
	}

	healthURL := u.JoinPath(healthPath)

	return &Client{
		baseURL:           u,
		healthURL:         healthURL.String(),
		redactedHealthURL: healthURL.Redacted(),

		httpClient: &http.Client{
			Transport: http.DefaultTransport,
			// 리다이렉트는 따라가지 않고 응답 그대로 판정합니다.
			CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		},
		userAgent: "momo-server/" + appVersion,
	}, nil
}

// ProxyTarget /api/momo 요청을 전달할 결제 백엔드 주소를 반환합니다.
func (c *Client) ProxyTarget() *url.URL {
	u := *c.baseURL
	return &u
}

// HealthURL 헬스체크 요청 주소를 로그에 남길 수 있는 형태로 반환합니다. 비밀번호는 가려집니다.
func (c *Client) HealthURL() string {
	return c.redactedHealthURL
}

// HealthCheck 결제 백엔드 헬스체크 등록 정보를 반환합니다. readiness 카테고리에 속합니다.
func (c *Client) HealthCheck(critical bool, timeout time.Duration) health.Check {
	return health.Check{
		Name:     CheckName,
		Category: health.CategoryReadiness,
		Critical: critical,
		Timeout:  timeout,
		Checker:  c,
	}
}

var _ health.Checker = (*Client)(nil)

// Check 결제 백엔드의 헬스 엔드포인트를 호출해 상태를 판정합니다.
//
//   - 연결 실패 또는 2xx가 아닌 응답: fail
//   - 2xx 응답: 본문의 status 필드에 따름
func (c *Client) Check(ctx context.Context) (health.Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.healthURL, nil)
	if err != nil {
		return health.StatusFail, newErrRequestFailed(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return health.StatusFail, newErrRequestFailed(err)
	}
	defer drainAndClose(resp.Body)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return health.StatusFail, newErrRequestFailed(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return health.StatusFail, newErrUnexpectedStatusCode(resp.Status, snippet(body))
	}

	return parseBody(body)
}

// drainAndClose 커넥션을 재사용할 수 있도록 남은 본문을 버리고 닫습니다.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxBodyBytes))
	_ = body.Close()
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxSnippetLen {
		s = s[:maxSnippetLen] + "..."
	}
	return s
}
