package system

// ServiceDescriptorResponse 루트(/) 엔드포인트의 서비스 소개 응답
type ServiceDescriptorResponse struct {
	Name        string            `json:"name" example:"momo-server"`
	Version     string            `json:"version" example:"v1.0.0"`
	Description string            `json:"description" example:"Health monitoring and MoMo payment gateway"`
	Endpoints   map[string]string `json:"endpoints"`
	Features    map[string]string `json:"features"`
}
