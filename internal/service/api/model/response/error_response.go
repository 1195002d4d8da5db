package response

// ErrorResponse API 오류 응답
type ErrorResponse struct {
	// ResultCode HTTP 상태 코드 (예: 404, 429, 500)
	ResultCode int `json:"result_code" example:"404"`

	// Message 에러 메시지
	Message string `json:"message" example:"Endpoint not found"`

	// Path 요청 경로 (404 응답에만 포함)
	Path string `json:"path,omitempty" example:"/unknown"`
}
