package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/darkkaiser/momo-server/internal/config"
	applog "github.com/darkkaiser/momo-server/pkg/log"
)

// @title MoMo Server API
// @version 1.0
// @description MoMo 결제 백엔드 앞단의 헬스 모니터링 및 게이트웨이 서버입니다.
// @description
// @description ## 주요 기능
// @description - Kubernetes 스타일 헬스 프로브 (/health/live, /health/ready)
// @description - 의존성별 상세 헬스 리포트 (/health/detailed)
// @description - 결제 백엔드 API 프록시 (/api/momo/*)
// @description
// @description critical 의존성이 실패하면 /health/ready가 503을 반환하여 인스턴스가 트래픽에서 제외됩니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @BasePath /

const (
	banner = `
  __  __         __  __            ____
 |  \/  |  ___  |  \/  |  ___     / ___|   ___  _ __ __   __  ___  _ __
 | |\/| | / _ \ | |\/| | / _ \    \___ \  / _ \| '__|\ \ / / / _ \| '__|
 | |  | || (_) || |  | || (_) |    ___) ||  __/| |    \ V / |  __/| |
 |_|  |_| \___/ |_|  |_| \___/    |____/  \___||_|     \_/   \___||_|
                                                                  %s
--------------------------------------------------------------------------------
`
)

func main() {
	// SIGINT, SIGTERM 수신 시 Context가 취소되어 모든 서비스가 종료 절차에 들어갑니다.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig 설정 파일 경로가 지정되면 해당 파일을, 아니면 기본 설정 파일(없어도 됨)을 읽습니다.
func loadConfig(configFile string) (*config.AppConfig, error) {
	if configFile == "" {
		return config.Load()
	}
	return config.LoadWithFile(configFile)
}

// setupLogging 설정에 맞는 로그 프로파일로 로깅 시스템을 초기화합니다.
func setupLogging(appConfig *config.AppConfig) (func(), error) {
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	closer, err := applog.Setup(logOpts)
	if err != nil {
		return nil, fmt.Errorf("로그 시스템 초기화 실패: %w", err)
	}

	applog.SetDebugMode(appConfig.Debug)

	for _, w := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(w)
	}

	return func() { _ = closer.Close() }, nil
}
