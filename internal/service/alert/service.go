package alert

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/darkkaiser/momo-server/internal/service/health"
	applog "github.com/darkkaiser/momo-server/pkg/log"
	"github.com/darkkaiser/momo-server/pkg/strutil"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const component = "alert.service"

const (
	// queueSize 발송 대기열 크기. 상태 변화 알림은 드물게 발생하므로 작게 유지합니다.
	queueSize = 32

	// httpClientTimeout 텔레그램 API 호출 1건의 최대 대기 시간
	httpClientTimeout = 10 * time.Second

	// sendTimeout 메시지 1건(분할 전송 및 재시도 포함)의 최대 처리 시간
	sendTimeout = 30 * time.Second

	// drainTimeout 종료 시 대기열에 남은 메시지를 처리하는 최대 시간
	drainTimeout = 10 * time.Second

	// 텔레그램 API 정책(채팅방당 초당 1건 수준)에 맞춘 발송 속도
	rateLimit = 1
	rateBurst = 3

	defaultRetryDelay = 2 * time.Second
)

// sender 텔레그램 봇 API의 메시지 전송 기능을 추상화합니다. (*tgbotapi.BotAPI)
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Service 헬스 상태 변화 알림을 텔레그램 채팅방으로 발송하는 서비스입니다.
type Service struct {
	appName string
	chatID  int64

	client sender

	limiter    *rate.Limiter
	retryDelay time.Duration

	queue   chan string
	stopped atomic.Bool

	running   bool
	runningMu sync.Mutex
}

// NewTelegramService 봇 토큰으로 텔레그램 클라이언트를 초기화하여 Service를 생성합니다.
// 토큰 검증을 위해 텔레그램 API(getMe)를 한 번 호출합니다.
func NewTelegramService(appName, botToken string, chatID int64, debug bool) (*Service, error) {
	if botToken == "" {
		return nil, ErrBotTokenRequired
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"bot_token": strutil.Mask(botToken),
		"chat_id":   chatID,
	}).Debug("텔레그램 봇 API 클라이언트 초기화")

	botAPI, err := tgbotapi.NewBotAPIWithClient(botToken, tgbotapi.APIEndpoint, &http.Client{Timeout: httpClientTimeout})
	if err != nil {
		return nil, newErrBotInitFailed(err)
	}
	botAPI.Debug = debug

	return newService(appName, botAPI, chatID), nil
}

func newService(appName string, client sender, chatID int64) *Service {
	s := &Service{
		appName: appName,
		chatID:  chatID,

		client: client,

		limiter:    rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		retryDelay: defaultRetryDelay,

		queue: make(chan string, queueSize),
	}
	s.stopped.Store(true)

	return s
}

// Start Sender 고루틴을 시작합니다.
// serviceStopCtx가 취소되면 대기열에 남은 메시지를 처리한 뒤 serviceStopWG.Done()을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Alert 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	s.running = true
	s.stopped.Store(false)

	go func() {
		defer serviceStopWG.Done()
		s.run(serviceStopCtx)
	}()

	applog.WithComponentAndFields(component, applog.Fields{
		"chat_id": s.chatID,
	}).Info("서비스 시작 완료: Alert 서비스가 정상적으로 초기화되었습니다")

	return nil
}

// NotifyStatusChange 전체 헬스 상태 변화를 알림 대기열에 등록합니다. 발송 완료를 기다리지 않습니다.
// previous가 빈 값이면 서버 시작 후 첫 리포트로 간주합니다.
func (s *Service) NotifyStatusChange(previous health.Status, report health.Report) error {
	return s.enqueue(buildStatusChangeMessage(s.appName, previous, report))
}

func (s *Service) enqueue(message string) error {
	if s.stopped.Load() {
		return ErrServiceStopped
	}

	select {
	case s.queue <- message:
		return nil
	default:
		applog.WithComponentAndFields(component, applog.Fields{
			"queue_size": queueSize,
		}).Warn("알림 유실: 발송 대기열이 가득 찼습니다")
		return ErrQueueFull
	}
}

// run Sender 루프입니다. 종료 신호를 받으면 남은 메시지를 drainTimeout 동안 처리합니다.
func (s *Service) run(serviceStopCtx context.Context) {
	defer func() {
		s.runningMu.Lock()
		s.running = false
		s.runningMu.Unlock()

		applog.WithComponent(component).Info("Alert 서비스 종료 완료")
	}()

	for {
		select {
		case message := <-s.queue:
			// 발송 중에 종료 신호가 와도 현재 메시지는 끝까지 보냅니다.
			s.sendSafely(context.Background(), message)

		case <-serviceStopCtx.Done():
			s.stopped.Store(true)
			s.drain()
			return
		}
	}
}

func (s *Service) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case message := <-s.queue:
			s.sendSafely(ctx, message)
		default:
			return
		}

		if ctx.Err() != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"remaining": len(s.queue),
			}).Warn("Drain 타임아웃: 남은 알림은 발송되지 않습니다")
			return
		}
	}
}

// sendSafely 메시지 1건을 발송합니다. 발송 중 패닉이 발생해도 Sender 루프는 유지됩니다.
func (s *Service) sendSafely(parent context.Context, message string) {
	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"chat_id": s.chatID,
				"panic":   r,
			}).Error("메시지 처리 실패: 발송 중 패닉 발생 (해당 건 스킵)")
		}
	}()

	ctx, cancel := context.WithTimeout(parent, sendTimeout)
	defer cancel()

	for _, chunk := range splitMessage(message, messageMaxLength) {
		if err := s.sendWithRetry(ctx, chunk, true); err != nil {
			return
		}
	}
}
