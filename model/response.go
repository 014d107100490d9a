package model

import "time"

// QueryResponse 查询响应
type QueryResponse struct {
	Total   int          `json:"total" sonic:"total"`
	Handler string       `json:"handler" sonic:"handler"` // 命中的插件名
	Items   []LaunchItem `json:"items" sonic:"items"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string    `json:"token" sonic:"token"`
	ExpiresAt time.Time `json:"expires_at" sonic:"expires_at"`
}

// Response API通用响应
type Response struct {
	Code    int         `json:"code" sonic:"code"`
	Message string      `json:"message" sonic:"message"`
	Data    interface{} `json:"data,omitempty" sonic:"data,omitempty"`
}

// NewSuccessResponse 创建成功响应
func NewSuccessResponse(data interface{}) Response {
	return Response{
		Code:    0,
		Message: "success",
		Data:    data,
	}
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(code int, message string) Response {
	return Response{
		Code:    code,
		Message: message,
	}
}
