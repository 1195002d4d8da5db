package system

// BasicHealthResponse 기본 헬스체크(/health, /health/live) 응답
type BasicHealthResponse struct {
	// 항상 pass
	Status string `json:"status" example:"pass"`
}

// CheckResponse 개별 헬스체크 결과
type CheckResponse struct {
	Name      string `json:"name" example:"payment-backend"`
	Status    string `json:"status" example:"pass"`
	Critical  bool   `json:"critical" example:"true"`
	LatencyMs int64  `json:"latencyMs" example:"12"`
	Timestamp string `json:"timestamp" example:"2025-12-01T14:00:00Z"`
	// 실패 또는 경고 사유 (정상인 경우 생략)
	Error string `json:"error,omitempty" example:"check 'datastore' timed out after 2s"`
}

// ReportResponse 헬스 리포트 응답 (/health/ready)
type ReportResponse struct {
	// 전체 상태: pass, warn, fail
	Status      string `json:"status" example:"pass"`
	GeneratedAt string `json:"generatedAt" example:"2025-12-01T14:00:00Z"`
	// 서버 가동 시간(초)
	Uptime float64 `json:"uptime" example:"3600.5"`
	// 가장 오래 걸린 체크의 지연 시간(ms)
	LatencyMs int64           `json:"latencyMs" example:"12"`
	Checks    []CheckResponse `json:"checks"`
}

// RuntimeInfo Go 런타임 진단 정보
type RuntimeInfo struct {
	GoVersion    string `json:"goVersion" example:"go1.24.0"`
	Goroutines   int    `json:"goroutines" example:"12"`
	NumCPU       int    `json:"numCPU" example:"4"`
	HeapAllocMiB uint64 `json:"heapAllocMiB" example:"8"`
	OS           string `json:"os" example:"linux"`
	Arch         string `json:"arch" example:"amd64"`
}

// DetailedHealthResponse 상세 헬스 리포트 응답 (/health/detailed)
type DetailedHealthResponse struct {
	ReportResponse

	Version   VersionResponse `json:"version"`
	Timestamp string          `json:"timestamp" example:"2025-12-01T14:00:00Z"`
	Runtime   RuntimeInfo     `json:"runtime"`
}
