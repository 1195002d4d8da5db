package service

import (
	"context"
	"sync"
)

// Service main에서 생명주기를 관리하는 백그라운드 서비스의 공통 인터페이스입니다.
type Service interface {
	// Start 서비스를 시작하고 즉시 반환합니다.
	// 서비스가 완전히 종료되면 serviceStopWG.Done()을 호출해야 합니다.
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
