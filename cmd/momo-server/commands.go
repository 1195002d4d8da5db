package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/darkkaiser/momo-server/internal/config"
	"github.com/darkkaiser/momo-server/internal/pkg/version"
	"github.com/darkkaiser/momo-server/internal/service/health"
	"github.com/spf13/cobra"
)

// checkTimeout check 명령의 전체 실행 제한 시간
const checkTimeout = 30 * time.Second

func newRootCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "MoMo 결제 백엔드 헬스 모니터링 및 게이트웨이 서버",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := loadConfig(configFile)
			if err != nil {
				return fmt.Errorf("환경설정 로드 실패: %w", err)
			}

			closeLog, err := setupLogging(appConfig)
			if err != nil {
				return err
			}
			defer closeLog()

			fmt.Fprintf(cmd.OutOrStdout(), banner, version.Get().Version)

			return run(cmd.Context(), appConfig)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", fmt.Sprintf("설정 파일 경로 (기본값: ./%s, 없으면 기본 설정 사용)", config.DefaultFilename))

	cmd.AddCommand(newVersionCommand(), newCheckCommand(&configFile))

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "빌드 정보를 출력합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
			return nil
		},
	}
}

// newCheckCommand 서버를 띄우지 않고 헬스체크를 한 번 실행합니다.
// 전체 상태가 fail이면 0이 아닌 종료 코드로 끝나므로 컨테이너 HEALTHCHECK에 사용할 수 있습니다.
func newCheckCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "readiness/detailed 헬스체크를 한 번 실행하고 결과를 출력합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := loadConfig(*configFile)
			if err != nil {
				return fmt.Errorf("환경설정 로드 실패: %w", err)
			}

			deps, err := buildDependencies(appConfig)
			if err != nil {
				return err
			}
			defer deps.Close()

			aggregator, err := health.NewAggregator(deps.registry)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
			defer cancel()

			report := aggregator.Run(ctx, health.CategoryReadiness, health.CategoryDetailed)
			printReport(cmd.OutOrStdout(), report)

			if report.Status == health.StatusFail {
				return fmt.Errorf("헬스체크 실패 (status: %s)", report.Status)
			}
			return nil
		},
	}
}

func printReport(w io.Writer, r health.Report) {
	fmt.Fprintf(w, "status: %s (latency: %s)\n", r.Status, r.Latency)
	for _, res := range r.Results {
		critical := ""
		if res.Critical {
			critical = " [critical]"
		}

		line := fmt.Sprintf("  - %s%s: %s (%s)", res.Name, critical, res.Status, res.Latency.Round(time.Millisecond))
		if res.Err != nil {
			line += fmt.Sprintf(" error=%v", res.Err)
		}
		fmt.Fprintln(w, line)
	}
}
