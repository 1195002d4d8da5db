package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// 404 Not Found
	ErrMsgNotFound = "Endpoint not found"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	// 502 Bad Gateway
	ErrMsgBadGateway = "결제 백엔드에 연결할 수 없습니다"

	// ErrMsgPaymentBackendNotConfigured 결제 백엔드 주소가 설정되지 않은 상태에서 /api/momo 요청 시 반환되는 메시지
	ErrMsgPaymentBackendNotConfigured = "결제 백엔드가 설정되지 않았습니다"
)
