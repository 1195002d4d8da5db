package system

import (
	"runtime"
	"time"

	"github.com/darkkaiser/momo-server/internal/pkg/version"
	"github.com/darkkaiser/momo-server/internal/service/api/model/system"
	"github.com/darkkaiser/momo-server/internal/service/health"
)

func newReportResponse(report health.Report) system.ReportResponse {
	checks := make([]system.CheckResponse, 0, len(report.Results))
	for _, r := range report.Results {
		cr := system.CheckResponse{
			Name:      r.Name,
			Status:    string(r.Status),
			Critical:  r.Critical,
			LatencyMs: r.Latency.Milliseconds(),
			Timestamp: formatTime(r.Timestamp),
		}
		if r.Err != nil {
			cr.Error = r.Err.Error()
		}
		checks = append(checks, cr)
	}

	return system.ReportResponse{
		Status:      string(report.Status),
		GeneratedAt: formatTime(report.GeneratedAt),
		Uptime:      report.Uptime.Seconds(),
		LatencyMs:   report.Latency.Milliseconds(),
		Checks:      checks,
	}
}

func newVersionResponse(info version.Info) system.VersionResponse {
	goVersion := info.GoVersion
	if goVersion == "" {
		goVersion = runtime.Version()
	}

	return system.VersionResponse{
		Version:     info.Version,
		Commit:      info.Commit,
		BuildDate:   info.BuildDate,
		BuildNumber: info.BuildNumber,
		GoVersion:   goVersion,
	}
}

func failedChecks(report health.Report) []string {
	var names []string
	for _, r := range report.Results {
		if r.Status == health.StatusFail {
			names = append(names, r.Name)
		}
	}
	return names
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
